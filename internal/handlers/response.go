// Package handlers contains HTTP request handlers for the NextCourse API.
package handlers

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Response{Status: "success", Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Status: "error", Message: message, Data: gin.H{}})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ffauzan/nc-api/internal/middleware"
	"github.com/ffauzan/nc-api/internal/service"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles preference and interaction HTTP requests for the
// authenticated user.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// PreferencesRequest represents the onboarding preferences payload.
type PreferencesRequest struct {
	Preferences []service.PreferenceInput `json:"preferences" binding:"required,min=1,dive"`
}

// GetPreferences godoc
// @Summary Saved preferences
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response
// @Router /users/me/preferences [get]
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.profileService.GetPreferences(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load preferences")
		return
	}
	respondSuccess(c, http.StatusOK, "Preferences retrieved successfully", prefs)
}

// UpdatePreferences godoc
// @Summary Replace preferences
// @Description Replace the user's preference set and mark onboarding as done
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PreferencesRequest true "Preferences payload"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /users/me/preferences [put]
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	prefs, err := h.profileService.UpdatePreferences(c.Request.Context(), middleware.UserID(c), req.Preferences)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update preferences")
		return
	}

	respondSuccess(c, http.StatusOK, "Preferences updated successfully", prefs)
}

// RecordInteraction godoc
// @Summary Record a course interaction
// @Description Store a view, enroll or rating event for the given course
// @Tags courses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Course id"
// @Param request body service.InteractionInput true "Interaction payload"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /courses/{id}/interactions [post]
func (h *ProfileHandler) RecordInteraction(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid course id")
		return
	}

	var input service.InteractionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	interaction, err := h.profileService.RecordInteraction(c.Request.Context(), middleware.UserID(c), courseID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInteraction):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCourseNotFound):
			respondError(c, http.StatusNotFound, "course not found")
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "user not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to record interaction")
		}
		return
	}

	respondSuccess(c, http.StatusCreated, "Interaction recorded successfully", interaction)
}

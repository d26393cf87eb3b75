package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ffauzan/nc-api/internal/service"
	"github.com/gin-gonic/gin"
)

// CourseHandler handles catalog and recommendation HTTP requests.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a new CourseHandler instance.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {object} Response
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list courses")
		return
	}
	respondSuccess(c, http.StatusOK, "Courses retrieved successfully", courses)
}

// Featured godoc
// @Summary Random courses per subject
// @Description Return n random courses for each catalog subject
// @Tags courses
// @Produce json
// @Param n query int false "Courses per subject" default(2)
// @Success 200 {object} Response
// @Router /courses/random [get]
func (h *CourseHandler) Featured(c *gin.Context) {
	n := queryInt(c, "n", service.DefaultFeaturedPerSubject)

	courses, err := h.courseService.FeaturedCourses(c.Request.Context(), n)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to sample courses")
		return
	}
	respondSuccess(c, http.StatusOK, "Courses retrieved successfully", courses)
}

// Get godoc
// @Summary Course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.courseService.GetCourse(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			respondError(c, http.StatusNotFound, "course not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load course")
		return
	}

	respondSuccess(c, http.StatusOK, "Course retrieved successfully", course)
}

// GetBySlug godoc
// @Summary Course by slug
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /courses/slug/{slug} [get]
func (h *CourseHandler) GetBySlug(c *gin.Context) {
	course, err := h.courseService.GetCourseBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			respondError(c, http.StatusNotFound, "course not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load course")
		return
	}

	respondSuccess(c, http.StatusOK, "Course retrieved successfully", course)
}

// Recommendations godoc
// @Summary Recommended courses
// @Description Return up to n courses recommended for the given course
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Param n query int false "Number of recommendations" default(5)
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /courses/{id}/recommendations [get]
func (h *CourseHandler) Recommendations(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid course id")
		return
	}

	n := queryInt(c, "n", service.DefaultRecommendations)

	courses, err := h.courseService.Recommendations(c.Request.Context(), courseID, n)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			respondError(c, http.StatusNotFound, "course not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to recommend courses")
		return
	}

	respondSuccess(c, http.StatusOK, "Recommendations retrieved successfully", courses)
}

func queryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

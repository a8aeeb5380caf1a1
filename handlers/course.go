package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"course_leads_backend/models"
	"course_leads_backend/store"
)

type CourseHandler struct {
	store store.Store
}

func NewCourseHandler(s store.Store) *CourseHandler {
	return &CourseHandler{store: s}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req models.CreateCourseRequest
	if !bindBody(c, &req) {
		return
	}

	course, err := h.store.CreateCourse(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err, "", "Error creating course")
		return
	}

	c.JSON(http.StatusOK, course)
}

// UpdateCourse replaces name, max_seats and start_date of the course.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req models.UpdateCourseRequest
	if !bindBody(c, &req) {
		return
	}

	course, err := h.store.UpdateCourse(c.Request.Context(), pathID(c, "id"), req)
	if err != nil {
		respondStoreError(c, err, "Course", "Error updating course")
		return
	}

	c.JSON(http.StatusOK, course)
}

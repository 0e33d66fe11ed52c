package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursekey/internal/http/response"
	"github.com/yungbote/coursekey/internal/services"
)

type CourseHandler struct {
	courses services.CourseService
	content services.ContentService
}

func NewCourseHandler(courses services.CourseService, content services.ContentService) *CourseHandler {
	return &CourseHandler{courses: courses, content: content}
}

// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req services.CreateCourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "create_course_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"course": course})
}

// GET /api/courses?limit=50
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context(), queryLimit(c, 50))
	if err != nil {
		response.RespondServiceError(c, "list_courses_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"courses": courses})
}

// GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, "get_course_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"course": course})
}

// GET /api/courses/join/:code
func (h *CourseHandler) Join(c *gin.Context) {
	course, err := h.courses.Join(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.RespondServiceError(c, "join_course_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"course": course})
}

// GET /api/courses/:id/tree
func (h *CourseHandler) Tree(c *gin.Context) {
	tree, err := h.content.Tree(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, "course_tree_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"tree": tree})
}

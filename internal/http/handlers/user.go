package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursekey/internal/http/response"
	"github.com/yungbote/coursekey/internal/services"
)

type UserHandler struct {
	users services.UserService
}

func NewUserHandler(users services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// POST /api/users
func (h *UserHandler) Upsert(c *gin.Context) {
	var req services.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	u, err := h.users.Upsert(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "upsert_user_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"user": u})
}

// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, "get_user_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"user": u})
}

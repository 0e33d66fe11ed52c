package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursekey/internal/http/response"
	"github.com/yungbote/coursekey/internal/services"
)

type FlagHandler struct {
	flags services.FlagService
}

func NewFlagHandler(flags services.FlagService) *FlagHandler {
	return &FlagHandler{flags: flags}
}

// POST /api/flags
func (h *FlagHandler) Report(c *gin.Context) {
	var req services.ReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	flag, err := h.flags.Report(c.Request.Context(), req)
	if err != nil {
		response.RespondServiceError(c, "report_flag_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"flag": flag})
}

// GET /api/courses/:id/flags?status=unresolved
func (h *FlagHandler) List(c *gin.Context) {
	flags, err := h.flags.List(c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		response.RespondServiceError(c, "list_flags_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"flags": flags})
}

// POST /api/flags/:id/resolve
func (h *FlagHandler) Resolve(c *gin.Context) {
	flag, err := h.flags.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, "resolve_flag_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"flag": flag})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursekey/internal/http/response"
	"github.com/yungbote/coursekey/internal/services"
)

type ContentHandler struct {
	content services.ContentService
}

func NewContentHandler(content services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// POST /api/courses/:id/divisions
func (h *ContentHandler) AddDivision(c *gin.Context) {
	var req services.DivisionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	div, err := h.content.AddDivision(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.RespondServiceError(c, "add_division_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"division": div})
}

// POST /api/divisions/:id/items
func (h *ContentHandler) AddItem(c *gin.Context) {
	var req services.ItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	item, err := h.content.AddItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.RespondServiceError(c, "add_item_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"item": item})
}

// POST /api/items/:id/objectives
func (h *ContentHandler) AddObjective(c *gin.Context) {
	var req services.ObjectiveInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	obj, err := h.content.AddObjective(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.RespondServiceError(c, "add_objective_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"objective": obj})
}

// POST /api/items/:id/materials
func (h *ContentHandler) AddMaterial(c *gin.Context) {
	var req services.MaterialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	mat, err := h.content.AddMaterial(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.RespondServiceError(c, "add_material_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"material": mat})
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursekey/internal/http/response"
	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/services"
)

// maxBatchSpecs bounds one batch request body.
const maxBatchSpecs = 1000

type IDHandler struct {
	ids services.IDService
}

func NewIDHandler(ids services.IDService) *IDHandler {
	return &IDHandler{ids: ids}
}

type hashReq struct {
	Input string `json:"input"`
}

// POST /api/ids/hash
func (h *IDHandler) Hash(c *gin.Context) {
	var req hashReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	response.RespondOK(c, gin.H{"hash": h.ids.Hash(req.Input)})
}

// POST /api/ids/preview
func (h *IDHandler) Preview(c *gin.Context) {
	var spec idgen.Spec
	if err := c.ShouldBindJSON(&spec); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.ids.Preview(spec)
	if err != nil {
		response.RespondServiceError(c, "preview_failed", err)
		return
	}
	response.RespondOK(c, res)
}

type batchReq struct {
	Specs []idgen.Spec `json:"specs"`
}

// POST /api/ids/batch
func (h *IDHandler) Batch(c *gin.Context) {
	var req batchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if len(req.Specs) > maxBatchSpecs {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("at most %d specs per batch", maxBatchSpecs))
		return
	}
	results, err := h.ids.Batch(c.Request.Context(), req.Specs)
	if err != nil {
		response.RespondServiceError(c, "batch_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"results": results})
}

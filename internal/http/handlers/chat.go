package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursekey/internal/http/response"
	"github.com/yungbote/coursekey/internal/services"
)

type ChatHandler struct {
	chat services.ChatService
}

func NewChatHandler(chat services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type startChatReq struct {
	UserID   string `json:"user_id"`
	CourseID string `json:"course_id"`
}

// POST /api/chats
func (h *ChatHandler) Start(c *gin.Context) {
	var req startChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	chat, err := h.chat.Start(c.Request.Context(), req.UserID, req.CourseID)
	if err != nil {
		response.RespondServiceError(c, "start_chat_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"chat": chat})
}

type postMessageReq struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// POST /api/chats/:id/messages
func (h *ChatHandler) Post(c *gin.Context) {
	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	msg, err := h.chat.Post(c.Request.Context(), c.Param("id"), req.Role, req.Text)
	if err != nil {
		response.RespondServiceError(c, "post_message_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"message": msg})
}

// GET /api/chats/:id/messages?limit=50
func (h *ChatHandler) History(c *gin.Context) {
	msgs, err := h.chat.History(c.Request.Context(), c.Param("id"), queryLimit(c, 50))
	if err != nil {
		response.RespondServiceError(c, "chat_history_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"messages": msgs})
}

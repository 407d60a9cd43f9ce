package handlers

import (
	"net/http"

	"concierge/services/conversation"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking assistant.
type ChatHandler struct {
	Manager *conversation.Manager
	Logger  *zap.Logger
}

// NewChatHandler builds a chat handler.
func NewChatHandler(manager *conversation.Manager, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Manager: manager, Logger: logger}
}

// ProcessMessage handles one inbound chat message. An empty sessionId starts
// a new conversation; the response always carries the session id to continue
// with.
func (h *ChatHandler) ProcessMessage(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ValidationError", "message is required")
		return
	}

	sessionID, result, err := h.Manager.ProcessMessage(input.SessionID, input.Message)
	if err != nil {
		h.Logger.Error("failed to process message", zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "failed to process message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"success":   result.Success,
		"response":  result.Response,
		"state":     result.State,
	})
}

// EndSession drops a conversation explicitly.
func (h *ChatHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Manager.EndSession(sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "failed to end session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

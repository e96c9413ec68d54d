package handlers

import (
	"net/http"

	"venuely/middleware"
	"venuely/services/assistant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking assistant.
type ChatHandler struct {
	Service assistant.AssistantService
	Logger  *zap.Logger
}

func NewChatHandler(svc assistant.AssistantService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: svc, Logger: logger}
}

type chatMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Text           string `json:"text" binding:"required"`
}

// MessageHandler processes one user utterance. A missing conversationId
// starts a fresh conversation; the assigned ID comes back in the response so
// the client can continue it.
func (h *ChatHandler) MessageHandler(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.ConversationID == "" {
		req.ConversationID = uuid.NewString()
	}

	reply, err := h.Service.HandleMessage(
		c.Request.Context(),
		req.ConversationID,
		c.GetString(middleware.ContextUserIDKey),
		c.GetString(middleware.ContextUserNameKey),
		req.Text,
	)
	if err != nil {
		h.Logger.Error("chat message failed",
			zap.String("conversationId", req.ConversationID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversationId": req.ConversationID,
		"messages":       reply.Messages,
		"booking":        reply.Booking,
	})
}

// ResetHandler abandons a conversation's in-progress booking.
func (h *ChatHandler) ResetHandler(c *gin.Context) {
	conversationID := c.Param("conversationId")
	if err := h.Service.Reset(c.Request.Context(), conversationID); err != nil {
		h.Logger.Error("chat reset failed",
			zap.String("conversationId", conversationID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation reset"})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"propertychat/internal/model"
	"propertychat/internal/service"
)

// ChatHandler handles conversational requests
type ChatHandler struct {
	chatService   *service.ChatService
	defaultUserID string
	logger        *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, defaultUserID string, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:   chatService,
		defaultUserID: defaultUserID,
		logger:        logger,
	}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "message is required",
			"kind":  model.ErrValidation,
		})
		return
	}

	if req.UserID == "" {
		req.UserID = h.defaultUserID
	}

	response, err := h.chatService.Respond(c.Request.Context(), &req)
	if err != nil {
		var pipelineErr *model.PipelineError
		if errors.As(err, &pipelineErr) && pipelineErr.Kind == model.ErrValidation {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": pipelineErr.Message,
				"kind":  pipelineErr.Kind,
			})
			return
		}

		h.logger.Error("chat pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "something went wrong processing your message",
			"kind":  model.ErrInternal,
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

package handler

import (
	"net/http"
	"strings"

	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

const (
	invalidRequest = "Invalid request"
	invalidMessage = "Invalid message"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// AddMessage handles POST /message/addMessage. On success the stored
// record comes back in the response and goes out to real-time subscribers
// as one messageUpdate event.
func (h *MessageHandler) AddMessage(c *gin.Context) {
	var req httpdto.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, invalidRequest)
		return
	}
	if req.MessageToAdd == nil {
		c.String(http.StatusBadRequest, invalidRequest)
		return
	}
	if strings.TrimSpace(req.MessageToAdd.Msg) == "" || strings.TrimSpace(req.MessageToAdd.MsgFrom) == "" {
		c.String(http.StatusBadRequest, invalidMessage)
		return
	}

	stored, err := h.service.Create(c.Request.Context(), req.MessageToAdd.ToMessage())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, stored)
}

// GetMessages handles GET /message/getMessages. The array is ordered by
// msgDateTime ascending and may be empty.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

package http

import (
	"nexus-tube/domain/dto"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

type IMessageHandler interface {
	Send(c *gin.Context)
	Conversation(c *gin.Context)
	Inbox(c *gin.Context)
}

type MessageHandler struct {
	messaging usecase.IMessagingUsecase
}

func NewMessageHandler(messaging usecase.IMessagingUsecase) IMessageHandler {
	return &MessageHandler{messaging: messaging}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := h.messaging.SendMessage(req.ReceiverID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, msg)
}

// Conversation answers GET /api/messages/:userId. Opening a conversation
// marks the partner's messages as read; the returned thread shows them as
// they were before.
func (h *MessageHandler) Conversation(c *gin.Context) {
	other := c.Param("userId")
	thread := h.messaging.GetConversation(other)
	h.messaging.MarkConversationRead(other)
	ok(c, thread)
}

func (h *MessageHandler) Inbox(c *gin.Context) {
	ok(c, h.messaging.Inbox())
}

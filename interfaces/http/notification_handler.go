package http

import (
	"nexus-tube/infrastructure/pubsub"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

type INotificationHandler interface {
	List(c *gin.Context)
	MarkRead(c *gin.Context)
	Publish(c *gin.Context)
}

type NotificationHandler struct {
	notifications usecase.INotificationUsecase
	feed          pubsub.INotificationFeed
}

func NewNotificationHandler(notifications usecase.INotificationUsecase, feed pubsub.INotificationFeed) INotificationHandler {
	return &NotificationHandler{notifications: notifications, feed: feed}
}

func (h *NotificationHandler) List(c *gin.Context) {
	ok(c, gin.H{
		"notifications": h.notifications.Notifications(),
		"unread":        h.notifications.UnreadNotificationCount(),
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.notifications.MarkNotificationAsRead(c.Param("id"))
	ok(c, gin.H{"unread": h.notifications.UnreadNotificationCount()})
}

// Publish answers POST /api/admin/notifications. The notification travels
// through the topic and reaches the inbox once the subscriber picks it up.
func (h *NotificationHandler) Publish(c *gin.Context) {
	var payload pubsub.NotificationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.feed.Publish(c.Request.Context(), payload)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, gin.H{"id": id})
}

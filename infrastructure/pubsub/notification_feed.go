package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub"

	"nexus-tube/domain/model"
	"nexus-tube/infrastructure/logger"
)

// NotificationSink receives notifications for a user's inbox
type NotificationSink interface {
	PushNotification(userID string, notification model.Notification) (model.Notification, error)
}

// NotificationPayload is the wire form of a notification on the topic
type NotificationPayload struct {
	UserID   string `json:"userId"`
	Text     string `json:"text"`
	Avatar   string `json:"avatar,omitempty"`
	Type     string `json:"type"`
	TargetID string `json:"targetId,omitempty"`
}

type INotificationFeed interface {
	Publish(ctx context.Context, payload NotificationPayload) (string, error)
	Run(ctx context.Context) error
}

// NotificationFeed carries notifications from external producers into the
// store. Publish writes to the topic; Run consumes the subscription and hands
// each message to the sink. Without a client both sides short-circuit:
// Publish delivers straight to the sink and Run waits for cancellation.
type NotificationFeed struct {
	client       *pubsub.Client
	topic        string
	subscription string
	sink         NotificationSink
}

func NewNotificationFeed(client *pubsub.Client, topic, subscription string, sink NotificationSink) INotificationFeed {
	return &NotificationFeed{client: client, topic: topic, subscription: subscription, sink: sink}
}

func (f *NotificationFeed) Publish(ctx context.Context, payload NotificationPayload) (string, error) {
	if err := payload.validate(); err != nil {
		return "", err
	}
	if f.client == nil {
		n, err := f.sink.PushNotification(payload.UserID, payload.notification())
		return n.ID, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	topic := f.client.Topic(f.topic)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return "", err
	}
	if !exists {
		logger.GetLogger().WithField("topic", f.topic).Info("Topic doesn't exist - creating it")
		if topic, err = f.client.CreateTopic(ctx, f.topic); err != nil {
			return "", err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: data}).Get(ctx)
	if err != nil {
		return "", err
	}
	logger.GetLogger().WithField("server ID", serverID).Info("Notification published")
	return serverID, nil
}

func (f *NotificationFeed) Run(ctx context.Context) error {
	if f.client == nil {
		<-ctx.Done()
		return nil
	}
	logger.GetLogger().WithField("subID", f.subscription).Info("Notification feed starting...")
	err := f.client.Subscription(f.subscription).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if err := f.Handle(msg.Data); err != nil {
			logger.GetLogger().WithField("error", err).WithField("messageID", msg.ID).Warn("Dropping notification")
		}
		// undeliverable payloads are acked too, redelivery cannot fix them
		msg.Ack()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Handle decodes one message and delivers it to the sink
func (f *NotificationFeed) Handle(data []byte) error {
	var payload NotificationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	if err := payload.validate(); err != nil {
		return err
	}
	_, err := f.sink.PushNotification(payload.UserID, payload.notification())
	return err
}

func (p NotificationPayload) validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	switch model.NotificationType(p.Type) {
	case model.NotificationVideo, model.NotificationChannel, model.NotificationPost:
		return nil
	}
	return fmt.Errorf("%w: unknown notification type %q", model.ErrValidation, p.Type)
}

func (p NotificationPayload) notification() model.Notification {
	return model.Notification{
		Text:     p.Text,
		Avatar:   p.Avatar,
		Type:     model.NotificationType(p.Type),
		TargetID: p.TargetID,
	}
}

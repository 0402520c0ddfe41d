package servicebus

import (
	"context"
	"encoding/json"
	"time"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

type sender interface {
	SendMessage(ctx context.Context, message *azservicebus.Message, options *azservicebus.SendMessageOptions) error
	Close(ctx context.Context) error
}

// ModerationOutbox forwards moderation decisions (reports filed and
// dismissed, videos removed, channels banned) to a Service Bus queue.
type ModerationOutbox struct {
	newSender func() (sender, error)
	now       func() time.Time
	pending   chan model.StoreEvent
}

// outboxBacklog bounds the events waiting for Run; further events are dropped
const outboxBacklog = 256

// moderationRecord is the queue message body
type moderationRecord struct {
	Kind       model.EventKind `json:"kind"`
	ActorID    string          `json:"actorId"`
	SubjectID  string          `json:"subjectId"`
	Message    string          `json:"message,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

func NewModerationOutbox(client *azservicebus.Client, queue string) *ModerationOutbox {
	var newSender func() (sender, error)
	if client != nil {
		newSender = func() (sender, error) { return client.NewSender(queue, nil) }
	}
	return newOutbox(newSender, time.Now)
}

func newOutbox(newSender func() (sender, error), now func() time.Time) *ModerationOutbox {
	return &ModerationOutbox{
		newSender: newSender,
		now:       now,
		pending:   make(chan model.StoreEvent, outboxBacklog),
	}
}

var _ repository.IModerationOutbox = (*ModerationOutbox)(nil)

func (o *ModerationOutbox) Publish(ctx context.Context, event model.StoreEvent) error {
	body, err := json.Marshal(moderationRecord{
		Kind:       event.Kind,
		ActorID:    event.UserID,
		SubjectID:  event.SubjectID,
		Message:    event.Message,
		OccurredAt: o.now().UTC(),
	})
	if err != nil {
		return err
	}
	if o.newSender == nil {
		logger.GetLogger().WithField("event", string(body)).Debug("Service Bus not configured - moderation event not forwarded")
		return nil
	}

	s, err := o.newSender()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while making new sender service bus.")
		return err
	}
	defer func() {
		if err := s.Close(context.Background()); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing sender.")
		}
	}()

	subject := string(event.Kind)
	err = s.SendMessage(ctx, &azservicebus.Message{Body: body, Subject: &subject}, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}
	return nil
}

// Record queues event for Run when it is a moderation decision. It is meant
// to be subscribed to the store and never blocks it.
func (o *ModerationOutbox) Record(event model.StoreEvent) {
	if !IsModerationEvent(event.Kind) {
		return
	}
	select {
	case o.pending <- event:
	default:
		logger.GetLogger().WithField("kind", event.Kind).WithField("subject", event.SubjectID).Warn("Moderation outbox full - event dropped")
	}
}

// Run publishes queued events one at a time, in the order they were recorded,
// until ctx is cancelled.
func (o *ModerationOutbox) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-o.pending:
			sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			_ = o.Publish(sendCtx, event)
			cancel()
		}
	}
}

func IsModerationEvent(kind model.EventKind) bool {
	switch kind {
	case model.EventReportAdded, model.EventReportDismissed, model.EventVideoDeleted, model.EventUserDeleted:
		return true
	}
	return false
}

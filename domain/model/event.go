package model

// EventKind identifies which mutation produced a StoreEvent
type EventKind string

const (
	EventSessionChanged   EventKind = "session_changed"
	EventUserUpdated      EventKind = "user_updated"
	EventUserDeleted      EventKind = "user_deleted"
	EventVideoAdded       EventKind = "video_added"
	EventVideoDeleted     EventKind = "video_deleted"
	EventPostAdded        EventKind = "post_added"
	EventPostDeleted      EventKind = "post_deleted"
	EventCommentAdded     EventKind = "comment_added"
	EventLikeToggled      EventKind = "like_toggled"
	EventSubscription     EventKind = "subscription_toggled"
	EventChannelNotify    EventKind = "channel_notification_toggled"
	EventPinToggled       EventKind = "pin_toggled"
	EventHistoryChanged   EventKind = "history_changed"
	EventDownloadAdded    EventKind = "download_added"
	EventReportAdded      EventKind = "report_added"
	EventReportDismissed  EventKind = "report_dismissed"
	EventMessageSent      EventKind = "message_sent"
	EventMessagesRead     EventKind = "messages_read"
	EventNotificationRead EventKind = "notification_read"
	EventNotificationNew  EventKind = "notification_received"
)

// StoreEvent is emitted after every successful store mutation. Message carries
// the user-facing notice text and is empty for silent changes.
type StoreEvent struct {
	Kind      EventKind `json:"kind"`
	UserID    string    `json:"userId"`
	SubjectID string    `json:"subjectId,omitempty"`
	Message   string    `json:"message,omitempty"`
}

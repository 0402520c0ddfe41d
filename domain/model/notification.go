package model

// NotificationType names what a notification links to
type NotificationType string

const (
	NotificationVideo   NotificationType = "video"
	NotificationChannel NotificationType = "channel"
	NotificationPost    NotificationType = "post"
)

// Notification is a per-user inbox entry
type Notification struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	Time     string           `json:"time"`
	Read     bool             `json:"read"`
	Avatar   string           `json:"avatar"`
	Type     NotificationType `json:"type,omitempty"`
	TargetID string           `json:"targetId,omitempty"`
}

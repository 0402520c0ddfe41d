package model

// Message is a directed two-party chat message. Timestamp is unix milliseconds.
type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	Timestamp  int64  `json:"timestamp"`
	Read       bool   `json:"read"`
}

// Between reports whether the message belongs to the conversation of a and b
func (m Message) Between(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}

// InboxEntry summarises one conversation partner for the director inbox
type InboxEntry struct {
	User          User    `json:"user"`
	LastMessage   Message `json:"lastMessage"`
	UnreadCount   int     `json:"unreadCount"`
	TotalMessages int     `json:"totalMessages"`
}

package model

// TargetType names the kind of entity a comment is attached to
type TargetType string

const (
	TargetVideo   TargetType = "video"
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment" // likes only, comments do not nest
)

// Comment belongs to exactly one video or post
type Comment struct {
	ID           string     `json:"id"`
	TargetID     string     `json:"targetId"`
	TargetType   TargetType `json:"targetType"`
	Content      string     `json:"content"`
	AuthorName   string     `json:"authorName"`
	AuthorAvatar string     `json:"authorAvatar"`
	Timestamp    string     `json:"timestamp"`
	Likes        int        `json:"likes"`
}

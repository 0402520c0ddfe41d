package model

// Post represents a community status update. Comments is a counter kept in step
// with the Comment list by the store, not a back reference.
type Post struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	AuthorName   string `json:"authorName"`
	AuthorAvatar string `json:"authorAvatar"`
	Timestamp    string `json:"timestamp"`
	Likes        int    `json:"likes"`
	Comments     int    `json:"comments"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

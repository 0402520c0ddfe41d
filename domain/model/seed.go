package model

// Seed is the initial catalog a store starts from
type Seed struct {
	Users    []User
	Videos   []Video
	Posts    []Post
	Comments []Comment
	Reports  []Report
	Messages []Message
	// UserData pre-populates derived state for selected users, keyed by user id.
	UserData map[string]*UserData
}

package dto

// AddVideoRequest uploads a video under the active user's channel
type AddVideoRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	VideoURL     string `json:"videoUrl" binding:"required"`
	Duration     string `json:"duration"`
	Type         string `json:"type"` // long, short
}

// AddPostRequest publishes a community post as the active user
type AddPostRequest struct {
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// AddCommentRequest attaches a comment to a video or post
type AddCommentRequest struct {
	TargetID   string `json:"targetId" binding:"required"`
	TargetType string `json:"targetType" binding:"required"` // video, post
	Content    string `json:"content" binding:"required"`
}

// ToggleLikeRequest flips the active user's like on a video, post or comment
type ToggleLikeRequest struct {
	ID   string `json:"id" binding:"required"`
	Type string `json:"type" binding:"required"` // video, post, comment
}

// ChannelRequest names a channel for subscribe and notification toggles
type ChannelRequest struct {
	Channel string `json:"channel" binding:"required"`
}

// VideoRefRequest points at a catalog video by id
type VideoRefRequest struct {
	VideoID string `json:"videoId" binding:"required"`
}

// FeedQuery is bound from the query string of the feed endpoint
type FeedQuery struct {
	Q        string `form:"q"`
	Category string `form:"category"`
}

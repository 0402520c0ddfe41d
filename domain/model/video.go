package model

// VideoType distinguishes regular uploads from shorts
type VideoType string

const (
	VideoTypeLong  VideoType = "long"
	VideoTypeShort VideoType = "short"
)

// Video represents a catalog video. ChannelName is free text and identifies the
// owning channel by exact string match against User.Name.
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	VideoURL      string    `json:"videoUrl"`
	ChannelName   string    `json:"channelName"`
	ChannelAvatar string    `json:"channelAvatar"`
	Views         string    `json:"views"`      // display string, e.g. "1.2M"
	UploadedAt    string    `json:"uploadedAt"` // display string, e.g. "2 days ago"
	Duration      string    `json:"duration"`
	Type          VideoType `json:"type"`
	Likes         int       `json:"likes"`
}

// IsShort reports whether the video belongs to the shorts feed
func (v Video) IsShort() bool {
	return v.Type == VideoTypeShort
}

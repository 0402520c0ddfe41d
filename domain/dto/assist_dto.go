package dto

// DescriptionRequest asks for a generated video description
type DescriptionRequest struct {
	Title string `json:"title" binding:"required"`
}

// PolishRequest asks for a rewritten community status
type PolishRequest struct {
	Text string `json:"text" binding:"required"`
}

// GenerateVideoRequest asks for a generated clip
type GenerateVideoRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	Resolution  string `json:"resolution"`  // 720p, 1080p
	AspectRatio string `json:"aspectRatio"` // 16:9, 9:16
}

// AssistRes wraps generated text or a media URL
type AssistRes struct {
	Text     string `json:"text,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

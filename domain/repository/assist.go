package repository

import "context"

// VideoOptions are the generation parameters accepted by IContentAssist
type VideoOptions struct {
	Resolution  string
	AspectRatio string
}

// IContentAssist is the generative text/video collaborator. Implementations
// return raw results and errors; fallbacks are applied by the caller.
type IContentAssist interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateVideo returns the media URL of the first generated sample, or
	// an empty string when the operation finished without one.
	GenerateVideo(ctx context.Context, prompt string, opts VideoOptions) (string, error)
}

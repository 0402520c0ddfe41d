package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"nexus-tube/domain/model"
	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/logger"
)

const (
	DescriptionFallback = "Could not generate description."
	DescriptionEmpty    = "No description generated."

	Resolution720p  = "720p"
	Resolution1080p = "1080p"
	AspectLandscape = "16:9"
	AspectPortrait  = "9:16"
)

type IAssistUsecase interface {
	GenerateDescription(ctx context.Context, title string) (string, error)
	PolishStatus(ctx context.Context, text string) (string, error)
	GenerateVideo(ctx context.Context, prompt string, opts repository.VideoOptions) (string, error)
}

// assistUsecase wraps the generative collaborator with fallbacks. Each
// operation admits one call at a time; a second call while one is running is
// rejected with ErrGenerationInProgress.
type assistUsecase struct {
	assist repository.IContentAssist

	describing atomic.Bool
	polishing  atomic.Bool
	rendering  atomic.Bool
}

func NewAssistUsecase(assist repository.IContentAssist) IAssistUsecase {
	return &assistUsecase{assist: assist}
}

// GenerateDescription never fails on collaborator errors; it substitutes the
// fallback text instead.
func (u *assistUsecase) GenerateDescription(ctx context.Context, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: title is required", model.ErrValidation)
	}
	if !u.describing.CompareAndSwap(false, true) {
		return "", model.ErrGenerationInProgress
	}
	defer u.describing.Store(false)

	if u.assist == nil {
		return DescriptionFallback, nil
	}
	prompt := fmt.Sprintf("Write a catchy, short YouTube video description for a video titled: %q. Include hashtags.", title)
	text, err := u.assist.GenerateText(ctx, prompt)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error generating description")
		return DescriptionFallback, nil
	}
	if strings.TrimSpace(text) == "" {
		return DescriptionEmpty, nil
	}
	return text, nil
}

// PolishStatus returns the rewritten status, or text unchanged when the
// collaborator fails or returns nothing.
func (u *assistUsecase) PolishStatus(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is required", model.ErrValidation)
	}
	if !u.polishing.CompareAndSwap(false, true) {
		return "", model.ErrGenerationInProgress
	}
	defer u.polishing.Store(false)

	if u.assist == nil {
		return text, nil
	}
	prompt := fmt.Sprintf("Rewrite the following social media status to be more engaging and viral: %q", text)
	polished, err := u.assist.GenerateText(ctx, prompt)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error polishing status")
		return text, nil
	}
	if strings.TrimSpace(polished) == "" {
		return text, nil
	}
	return polished, nil
}

// GenerateVideo surfaces failures to the caller: a collaborator error or an
// operation without media both yield ErrAssistUnavailable.
func (u *assistUsecase) GenerateVideo(ctx context.Context, prompt string, opts repository.VideoOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is required", model.ErrValidation)
	}
	if opts.Resolution == "" {
		opts.Resolution = Resolution720p
	}
	if opts.AspectRatio == "" {
		opts.AspectRatio = AspectLandscape
	}
	if opts.Resolution != Resolution720p && opts.Resolution != Resolution1080p {
		return "", fmt.Errorf("%w: resolution must be 720p or 1080p", model.ErrValidation)
	}
	if opts.AspectRatio != AspectLandscape && opts.AspectRatio != AspectPortrait {
		return "", fmt.Errorf("%w: aspect ratio must be 16:9 or 9:16", model.ErrValidation)
	}
	if !u.rendering.CompareAndSwap(false, true) {
		return "", model.ErrGenerationInProgress
	}
	defer u.rendering.Store(false)

	if u.assist == nil {
		return "", fmt.Errorf("%w: no video model configured", model.ErrAssistUnavailable)
	}
	uri, err := u.assist.GenerateVideo(ctx, prompt, opts)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Video generation failed")
		return "", fmt.Errorf("%w: %v", model.ErrAssistUnavailable, err)
	}
	if uri == "" {
		return "", fmt.Errorf("%w: no video returned", model.ErrAssistUnavailable)
	}
	return uri, nil
}

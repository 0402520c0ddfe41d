package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/configuration"
	"nexus-tube/infrastructure/logger"

	"github.com/google/go-querystring/query"
	genaisdk "google.golang.org/genai"
)

// DefaultEndpoint is the public Gemini API
const DefaultEndpoint = "https://generativelanguage.googleapis.com/"

// Client talks to Gemini for text and to Veo for video. It implements the
// content assist collaborator.
type Client struct {
	apiKey     string
	textModel  string
	videoModel string
	poll       time.Duration
	sdk        *genaisdk.Client
}

var _ repository.IContentAssist = (*Client)(nil)

type keyParam struct {
	Key string `url:"key"`
}

// NewClient builds a client for cfg against endpoint
func NewClient(ctx context.Context, cfg configuration.Gemini, endpoint string) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key not configured")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	sdk, err := genaisdk.NewClient(ctx, &genaisdk.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genaisdk.BackendGeminiAPI,
		HTTPOptions: genaisdk.HTTPOptions{BaseURL: endpoint},
	})
	if err != nil {
		return nil, err
	}
	poll := time.Duration(cfg.PollSeconds) * time.Second
	if poll <= 0 {
		poll = 5 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		textModel:  cfg.TextModel,
		videoModel: cfg.VideoModel,
		poll:       poll,
		sdk:        sdk,
	}, nil
}

// WithPollInterval changes how often a running video operation is checked
func (c *Client) WithPollInterval(d time.Duration) *Client {
	c.poll = d
	return c
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.sdk.Models.GenerateContent(ctx, c.textModel, genaisdk.Text(prompt), nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("model", c.textModel).Error("Error while generating text")
		return "", err
	}
	return resp.Text(), nil
}

func (c *Client) GenerateVideo(ctx context.Context, prompt string, opts repository.VideoOptions) (string, error) {
	op, err := c.sdk.Models.GenerateVideos(ctx, c.videoModel, prompt, nil, &genaisdk.GenerateVideosConfig{
		NumberOfVideos: 1,
		AspectRatio:    opts.AspectRatio,
		Resolution:     opts.Resolution,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while starting video generation")
		return "", err
	}
	logger.GetLogger().WithField("operation", op.Name).Info("Video generation started")

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()
	for !op.Done {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
		op, err = c.sdk.Operations.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return "", err
		}
	}

	if op.Error != nil {
		if msg, ok := op.Error["message"].(string); ok && msg != "" {
			return "", errors.New(msg)
		}
		return "", fmt.Errorf("video operation %s failed", op.Name)
	}
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 || op.Response.GeneratedVideos[0].Video == nil {
		return "", nil
	}
	uri := op.Response.GeneratedVideos[0].Video.URI
	if uri == "" {
		return "", nil
	}
	return c.withKey(uri), nil
}

// withKey appends the api key so the media link can be played directly
func (c *Client) withKey(uri string) string {
	values, err := query.Values(keyParam{Key: c.apiKey})
	if err != nil {
		return uri
	}
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + values.Encode()
}

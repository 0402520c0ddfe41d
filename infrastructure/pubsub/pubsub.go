package pubsub

import (
	"context"
	"errors"

	"nexus-tube/infrastructure/configuration"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// NewPubSub creates a Google Cloud Pub/Sub client for the configured project
func NewPubSub(ctx context.Context, cfg configuration.Pubsub) (*pubsub.Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("pubsub project id not configured")
	}
	return pubsub.NewClient(ctx, cfg.ProjectID, clientOptions(cfg)...)
}

func clientOptions(cfg configuration.Pubsub) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	return opts
}

package repository

import (
	"context"

	"nexus-tube/domain/model"
)

// IModerationOutbox publishes moderation decisions for downstream consumers
type IModerationOutbox interface {
	Publish(ctx context.Context, event model.StoreEvent) error
}

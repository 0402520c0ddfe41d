package repository

import (
	"context"
	"time"
)

// IToastCache keeps transient success notices per user
type IToastCache interface {
	Push(ctx context.Context, userID, message string) error
	// Active returns the notices pushed within the last TTL, oldest first.
	Active(ctx context.Context, userID string) ([]string, error)
	TTL() time.Duration
}

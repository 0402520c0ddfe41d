package repository

import (
	"context"

	"nexus-tube/domain/model"
)

// ISeed loads the catalog the store starts from
type ISeed interface {
	Load(ctx context.Context) (*model.Seed, error)
}

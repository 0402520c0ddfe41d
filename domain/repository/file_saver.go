package repository

import "context"

// IFileSaver stores the media of a downloaded video under a suggested name
type IFileSaver interface {
	Save(ctx context.Context, url, filename string) error
}

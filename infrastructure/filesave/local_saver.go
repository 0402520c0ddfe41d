package filesave

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/logger"
)

// LocalSaver writes downloaded media under a directory on disk
type LocalSaver struct {
	dir    string
	client *http.Client
}

var _ repository.IFileSaver = (*LocalSaver)(nil)

func NewLocalSaver(dir string) *LocalSaver {
	return &LocalSaver{dir: dir, client: defaultHTTPClient()}
}

func (s *LocalSaver) Save(ctx context.Context, url, filename string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	resp, err := fetch(ctx, s.client, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	target := filepath.Join(s.dir, fileName(filename, url))
	// write to a temp file first so a broken transfer leaves nothing behind
	tmp, err := os.CreateTemp(s.dir, ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return err
	}
	logger.GetLogger().WithField("path", target).Debug("Download written")
	return nil
}

package filesave

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"nexus-tube/domain/repository"
	"nexus-tube/infrastructure/configuration"
	"nexus-tube/infrastructure/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioSaver streams downloaded media into an object storage bucket
type MinioSaver struct {
	client *minio.Client
	bucket string
	http   *http.Client
}

var _ repository.IFileSaver = (*MinioSaver)(nil)

func NewMinioSaver(cfg configuration.Minio) (*MinioSaver, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("minio endpoint not configured")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	logger.GetLogger().WithField("endpoint", cfg.Endpoint).WithField("bucket", cfg.Bucket).Info("Minio download saver initialized")
	return &MinioSaver{client: client, bucket: cfg.Bucket, http: defaultHTTPClient()}, nil
}

func (s *MinioSaver) Save(ctx context.Context, url, filename string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}

	resp, err := fetch(ctx, s.http, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}
	object := "downloads/" + fileName(filename, url)
	info, err := s.client.PutObject(ctx, s.bucket, object, resp.Body, resp.ContentLength, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	logger.GetLogger().WithField("object", object).WithField("size", info.Size).Debug("Download uploaded")
	return nil
}

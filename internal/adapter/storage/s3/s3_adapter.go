package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/platform/logger"
)

// ImageStorage uploads listing images to a MinIO/S3 bucket and hands back
// public URLs. The service only ever consumes those URLs afterwards.
type ImageStorage struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

func NewImageStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool, log *logger.Logger) (*ImageStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for %s: %w", endpoint, err)
	}

	err = client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, existsErr := client.BucketExists(context.Background(), bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make or verify bucket %s: %w", bucket, err)
		}
	}

	log.Info("image storage ready",
		zap.String("endpoint", endpoint), zap.String("bucket", bucket), zap.Bool("use_ssl", useSSL))
	return &ImageStorage{client: client, bucket: bucket, logger: log}, nil
}

func (s *ImageStorage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	// Object keys are random so concurrent uploads of same-named files never
	// collide; the original extension is kept for content-type inference.
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("images/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Error("image upload failed",
			zap.String("bucket", s.bucket), zap.String("key", objectKey), zap.Error(err))
		return "", fmt.Errorf("failed to upload object %s: %w", objectKey, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
	s.logger.Debug("image uploaded",
		zap.String("key", objectKey), zap.Int("size_bytes", len(data)), zap.String("url", url))
	return url, nil
}

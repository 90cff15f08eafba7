package storage

import (
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"sync"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client

	mu            sync.Mutex
	checkedBucket map[string]bool
}

func NewMinioStorage(minioClient *minio.Client) contracts.ObjectStorage {
	return &minioStorage{
		MinioClient:   minioClient,
		checkedBucket: make(map[string]bool),
	}
}

func (m *minioStorage) PutObject(ctx context.Context, bucketName, objectKey string, body []byte, contentType string) error {
	err := m.ensureBucket(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}

	_, err = m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectKey,
		bytes.NewReader(body),
		int64(len(body)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return nil
}

func (m *minioStorage) ensureBucket(ctx context.Context, bucketName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.checkedBucket[bucketName] {
		return nil
	}

	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if !exists {
		err = m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	m.checkedBucket[bucketName] = true
	return nil
}

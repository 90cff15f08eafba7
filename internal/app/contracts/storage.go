package contracts

import "context"

type ObjectStorage interface {
	PutObject(ctx context.Context, bucketName, objectKey string, body []byte, contentType string) error
}

package storage

import (
	"bytes"
	"context"
	"io"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
)

// Buckets used by the service
const (
	AvatarBucket = "avatars"
	AudioBucket  = "tts-expire"
)

// ObjectStore reads and writes whole objects in one bucket
type ObjectStore struct {
	client *minio.Client
	bucket string
}

func NewObjectStore(client *minio.Client, bucket string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket}
}

// Put stores data under name
func (o *ObjectStore) Put(ctx context.Context, name, contentType string, data []byte) error {
	_, err := o.client.PutObject(ctx, o.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// Get returns the object and its content type, or ErrNotFound
func (o *ObjectStore) Get(ctx context.Context, name string) ([]byte, string, error) {
	object, err := o.client.GetObject(ctx, o.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", notFound(err)
	}
	defer object.Close()

	info, err := object.Stat()
	if err != nil {
		return nil, "", notFound(err)
	}

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, "", notFound(err)
	}
	return data, info.ContentType, nil
}

func notFound(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrNotFound
	}
	return err
}

// EnsureBucket creates bucket when missing. expireDays > 0 installs a
// lifecycle rule expiring every object after that many days.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket, region string, expireDays int) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return err
	}
	if expireDays <= 0 {
		return nil
	}

	config := lifecycle.NewConfiguration()
	config.Rules = []lifecycle.Rule{
		{
			ID:     bucket,
			Status: "Enabled",
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(expireDays),
			},
		},
	}
	return client.SetBucketLifecycle(ctx, bucket, config)
}

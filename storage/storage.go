// Package storage wraps the object-storage gateway the worker fetches
// source XML from, grounded on original_source/src/minio_client.rs's
// singleton client plus download_object, reimplemented over
// github.com/minio/minio-go/v7 instead of the minio-rs SDK.
package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/biel-despair/fiscal-doc-worker/common"
	"github.com/biel-despair/fiscal-doc-worker/errors"
)

// Client fetches documents from a single configured bucket.
type Client struct {
	mc     *minio.Client
	bucket string
}

// New builds a Client from cfg, establishing the underlying minio-go
// client once at process startup.
func New(cfg common.StorageConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.NewConfigError("could not build storage client", "MINIO_ENDPOINT", cfg.Endpoint)
	}
	return &Client{mc: mc, bucket: cfg.Bucket}, nil
}

// Fetch retrieves objectKey from the configured bucket in full. Any
// transport or non-2xx failure is reported as ErrStorageFetch.
func (c *Client) Fetch(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := c.mc.GetObject(ctx, c.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.NewStorageFetchError(objectKey, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.NewStorageFetchError(objectKey, err)
	}
	return data, nil
}

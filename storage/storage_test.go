package storage

import (
	"context"
	"testing"

	"github.com/biel-despair/fiscal-doc-worker/common"
	"github.com/biel-despair/fiscal-doc-worker/errors"
)

func TestNewBuildsClient(t *testing.T) {
	cfg := common.StorageConfig{
		Endpoint:  "127.0.0.1:9000",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "nfe-docs",
		UseSSL:    false,
	}

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.bucket != "nfe-docs" {
		t.Errorf("bucket = %q, want nfe-docs", client.bucket)
	}
}

// TestFetchMissingObject exercises the storage-miss scenario: fetching
// against a gateway with nothing listening wraps the transport
// failure as ErrStorageFetch rather than surfacing the raw minio-go
// error, matching the reject-without-requeue contract the worker
// relies on.
func TestFetchMissingObject(t *testing.T) {
	cfg := common.StorageConfig{
		Endpoint:  "127.0.0.1:1",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "nfe-docs",
		UseSSL:    false,
	}
	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.Fetch(context.Background(), "invoices/missing.xml")
	if err == nil {
		t.Fatal("Fetch() error = nil, want ErrStorageFetch")
	}
	nfe, ok := err.(*errors.NFError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.NFError", err)
	}
	if nfe.Type != errors.ErrStorageFetch {
		t.Errorf("error Type = %v, want ErrStorageFetch", nfe.Type)
	}
	if nfe.Value != "invoices/missing.xml" {
		t.Errorf("error Value = %v, want invoices/missing.xml", nfe.Value)
	}
}

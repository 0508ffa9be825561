// Package export serializes result sets and writes them to namespaced,
// timestamped locations in object storage. Supported formats: Parquet
// (schema-on-write, batch job), JSON (on-demand handler), CSV, and plain
// text (Athena DDL metadata).
//
// Keys are namespaced by subject and run timestamp, so distinct runs can
// never collide; re-exporting within the same run overwrites that run's own
// objects and nothing else.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"shopetl/pkg/records"
)

// ObjectPutter writes one object to storage. S3Sink is the production
// implementation; tests substitute an in-memory fake.
type ObjectPutter interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
}

// SerializationError wraps a failure to encode a result set. Isolated to one
// subject's export; the run continues.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string { return fmt.Sprintf("serialize %s: %v", e.Key, e.Err) }
func (e *SerializationError) Unwrap() error { return e.Err }

// StorageError wraps a failure to write an encoded object. Isolated to one
// subject's export; the run continues.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("store %s: %v", e.Key, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// S3Sink uploads objects to a single S3 bucket via the s3manager uploader.
type S3Sink struct {
	uploader *s3manager.Uploader
	bucket   string
}

// NewS3Sink builds a sink for bucket using the given session.
func NewS3Sink(sess *session.Session, bucket string) *S3Sink {
	return &S3Sink{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
	}
}

// Put uploads one object. Existing objects at the same key are overwritten,
// which is what makes re-export within a run idempotent.
func (s *S3Sink) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return nil
}

// PutJSON encodes v as an indented JSON document and uploads it.
// Non-serializable values inside record maps are stringified, matching the
// handler's export contract.
func PutJSON(ctx context.Context, p ObjectPutter, key string, v any) error {
	b, err := encodeJSON(v)
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}
	return p.Put(ctx, key, "application/json", bytes.NewReader(b))
}

// PutCSV encodes rows as a header-plus-records CSV document and uploads it.
// See EncodeCSV for the empty-input representation.
func PutCSV(ctx context.Context, p ObjectPutter, key string, columns []string, rows []records.Record) error {
	b, err := EncodeCSV(columns, rows)
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}
	return p.Put(ctx, key, "text/csv", bytes.NewReader(b))
}

// PutText uploads a plain-text body, used for Athena table definitions.
func PutText(ctx context.Context, p ObjectPutter, key, body string) error {
	return p.Put(ctx, key, "text/plain", bytes.NewReader([]byte(body)))
}

// Package store persists schema snapshots in a blob bucket. Buckets are
// opened by URL: mem:// keeps snapshots in memory, file:///dir writes them
// under dir.
package store

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const SchemaKey = "schema.graphql"

type Store struct {
	bucket *blob.Bucket
}

func Open(ctx context.Context, url string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", url, err)
	}
	return &Store{bucket: bucket}, nil
}

// Load returns the saved schema text. A bucket without a snapshot yields
// an empty string.
func (s *Store) Load(ctx context.Context) (string, error) {
	data, err := s.bucket.ReadAll(ctx, SchemaKey)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store: read %s: %w", SchemaKey, err)
	}
	return string(data), nil
}

func (s *Store) Save(ctx context.Context, schema string) error {
	opts := &blob.WriterOptions{ContentType: "application/graphql"}
	if err := s.bucket.WriteAll(ctx, SchemaKey, []byte(schema), opts); err != nil {
		return fmt.Errorf("store: write %s: %w", SchemaKey, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.bucket.Close()
}

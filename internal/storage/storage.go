package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cfg "github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/config"
)

var ErrObjectNotFound = errors.New("object not found")

// Storage defines the interface for picture storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, file io.Reader) error

	// Load returns the content of the file at the given path
	Load(ctx context.Context, path string) ([]byte, error)

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error
}

// New creates the storage selected by STORAGE_DRIVER
func New(c *cfg.Config) (Storage, error) {
	switch c.StorageDriver {
	case "", "disk":
		slog.Info("initializing disk storage", "root", c.ImagesPath)
		return NewDiskStorage(c.ImagesPath), nil
	case "s3":
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}

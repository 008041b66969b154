package minio

import (
	"context"
	"net/http"
	"sync"
	"time"

	"autoexport-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// MinIO defines the interface for object storage operations used by the
// media upload flow.
type MinIO interface {
	// Connect establishes a connection and verifies it's working
	Connect(ctx context.Context) error

	// HealthCheck verifies the connection is still healthy
	HealthCheck(ctx context.Context) error

	// Close closes the connection and cleans up resources
	Close() error

	// BucketExists checks if a bucket exists
	BucketExists(ctx context.Context, bucketName string) (bool, error)

	// EnsureBucket creates the bucket if it does not exist yet
	EnsureBucket(ctx context.Context, bucketName string) error

	// GetPresignedUploadURL generates a presigned URL for direct upload
	GetPresignedUploadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)

	// GetPresignedDownloadURL generates a presigned URL for direct download
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)

	// FileExists checks if an object exists
	FileExists(ctx context.Context, bucketName, objectName string) (bool, error)

	// GetFileInfo retrieves metadata about an object
	GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error)

	// DeleteFile removes an object from storage
	DeleteFile(ctx context.Context, bucketName, objectName string) error
}

// implMinIO is the implementation of the MinIO interface.
type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	mu          sync.RWMutex
	connected   bool
}

// NewMinIO creates a new MinIO client with the provided configuration.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}

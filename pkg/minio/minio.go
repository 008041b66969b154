package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

// Connect establishes a connection to MinIO and verifies it's working by listing buckets.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}

	m.connected = true
	return nil
}

// HealthCheck verifies the connection is still healthy by listing buckets.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		return handleMinIOError(err, "health_check")
	}

	return nil
}

// Close marks the connection as disconnected. The MinIO client manages its
// own connection pool, so no explicit shutdown is required.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}

// BucketExists checks if a bucket exists.
func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if err := validateBucketName(bucketName); err != nil {
		return false, err
	}

	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, handleMinIOError(err, "check_bucket_exists")
	}
	return exists, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

// GetPresignedUploadURL generates a presigned URL for direct upload.
func (m *implMinIO) GetPresignedUploadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if err := validatePresignedURLRequest(req); err != nil {
		return nil, err
	}

	url, err := m.minioClient.PresignedPutObject(ctx, req.BucketName, req.ObjectName, req.Expiry)
	if err != nil {
		return nil, handleMinIOError(err, "get_presigned_upload_url")
	}

	return &PresignedURLResponse{
		URL:       url.String(),
		ExpiresAt: time.Now().Add(req.Expiry),
		Method:    "PUT",
	}, nil
}

// GetPresignedDownloadURL generates a presigned URL for direct download.
func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if err := validatePresignedURLRequest(req); err != nil {
		return nil, err
	}

	url, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, nil)
	if err != nil {
		return nil, handleMinIOError(err, "get_presigned_download_url")
	}

	return &PresignedURLResponse{
		URL:       url.String(),
		ExpiresAt: time.Now().Add(req.Expiry),
		Method:    "GET",
	}, nil
}

// FileExists checks if an object exists.
func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minioErr, ok := err.(minio.ErrorResponse); ok && minioErr.Code == "NoSuchKey" {
			return false, nil
		}
		return false, handleMinIOError(err, "check_file_exists")
	}
	return true, nil
}

// GetFileInfo retrieves metadata about an object.
func (m *implMinIO) GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error) {
	objInfo, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_file_info")
	}

	return &FileInfo{
		BucketName:   bucketName,
		ObjectName:   objectName,
		Size:         objInfo.Size,
		ContentType:  objInfo.ContentType,
		ETag:         objInfo.ETag,
		LastModified: objInfo.LastModified,
		Metadata:     objInfo.UserMetadata,
	}, nil
}

// DeleteFile removes an object from storage.
func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, "delete_file")
	}
	return nil
}

// handleMinIOError converts MinIO client errors into StorageError values.
func handleMinIOError(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}

	if minioErr, ok := err.(minio.ErrorResponse); ok {
		switch minioErr.Code {
		case "NoSuchBucket":
			return NewBucketNotFoundError("")
		case "NoSuchKey":
			return NewObjectNotFoundError("")
		case "AccessDenied":
			return &StorageError{
				Code:      ErrCodePermission,
				Message:   "Access denied",
				Operation: operation,
				Cause:     err,
			}
		default:
			return &StorageError{
				Code:      ErrCodeConnection,
				Message:   fmt.Sprintf("MinIO operation failed: %s", minioErr.Code),
				Operation: operation,
				Cause:     err,
			}
		}
	}

	return NewConnectionError(err)
}

package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"autoexport-srv/config"
	miniopkg "autoexport-srv/pkg/minio"
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
)

var (
	instance miniopkg.MinIO
	once     sync.Once
	mu       sync.RWMutex
	initErr  error // Stores the last initialization error to allow retry
)

// Connect initializes and connects to MinIO using a singleton pattern.
// If connection fails, it can be retried by calling Connect() again.
// Returns the existing instance if already connected.
func Connect(ctx context.Context, cfg config.MinIOConfig) (miniopkg.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	// Reset sync.Once if previous initialization failed to allow retry
	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		impl, implErr := miniopkg.NewMinIO(&cfg)
		if implErr != nil {
			err = fmt.Errorf("failed to create MinIO implementation: %w", implErr)
			initErr = err
			return
		}

		if connectErr := impl.Connect(connectCtx); connectErr != nil {
			err = fmt.Errorf("failed to connect to MinIO: %w", connectErr)
			initErr = err
			return
		}

		if bucketErr := impl.EnsureBucket(connectCtx, cfg.Bucket); bucketErr != nil {
			err = fmt.Errorf("failed to ensure bucket %q: %w", cfg.Bucket, bucketErr)
			initErr = err
			return
		}

		instance = impl
	})

	return instance, err
}

// GetClient returns the singleton MinIO client instance.
// Panics if the client has not been initialized by calling Connect() first.
func GetClient() miniopkg.MinIO {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("MinIO client not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the MinIO connection and resets the singleton instance.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return fmt.Errorf("failed to close MinIO connection: %w", err)
		}

		instance = nil
		initErr = nil
		once = sync.Once{} // Reset to allow reconnection
	}
	return nil
}

// HealthCheck performs a health check on the MinIO connection.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MinIO client not initialized")
	}

	return instance.HealthCheck(ctx)
}

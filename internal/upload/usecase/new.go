package usecase

import (
	"time"

	"autoexport-srv/config"
	"autoexport-srv/internal/upload"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/minio"
)

type usecase struct {
	l           pkgLog.Logger
	storage     minio.MinIO
	bucket      string
	maxSize     int64
	presignTTL  time.Duration
	newObjectID func() string
}

func New(l pkgLog.Logger, storage minio.MinIO, minioCfg config.MinIOConfig, uploadCfg config.UploadConfig, newObjectID func() string) upload.UseCase {
	return &usecase{
		l:           l,
		storage:     storage,
		bucket:      minioCfg.Bucket,
		maxSize:     int64(uploadCfg.MaxFileSizeMB) << 20,
		presignTTL:  time.Duration(uploadCfg.PresignTTLMins) * time.Minute,
		newObjectID: newObjectID,
	}
}

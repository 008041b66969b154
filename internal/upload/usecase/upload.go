package usecase

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"autoexport-srv/internal/model"
	"autoexport-srv/internal/upload"
	"autoexport-srv/pkg/minio"
	"autoexport-srv/pkg/session"
)

// allowedContentTypes maps each upload kind to the content types the
// public site is willing to serve back.
var allowedContentTypes = map[string]map[string]bool{
	upload.KindImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	},
	upload.KindDocument: {
		"application/pdf": true,
	},
	upload.KindResume: {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	},
}

func (uc *usecase) Presign(ctx context.Context, sc model.Scope, ip upload.PresignInput) (upload.PresignOutput, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return upload.PresignOutput{}, err
	}

	types, ok := allowedContentTypes[ip.Kind]
	if !ok {
		return upload.PresignOutput{}, upload.ErrInvalidKind
	}
	if !types[ip.ContentType] {
		return upload.PresignOutput{}, upload.ErrInvalidContentType
	}
	if ip.FileName == "" {
		return upload.PresignOutput{}, upload.ErrFileNameRequired
	}
	if ip.SizeBytes > uc.maxSize {
		return upload.PresignOutput{}, upload.ErrFileTooLarge
	}

	objectKey := fmt.Sprintf("%ss/%s%s", ip.Kind, uc.newObjectID(), strings.ToLower(path.Ext(ip.FileName)))

	resp, err := uc.storage.GetPresignedUploadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.bucket,
		ObjectName: objectKey,
		Method:     http.MethodPut,
		Expiry:     uc.presignTTL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.upload.usecase.Presign.GetPresignedUploadURL: %v", err)
		return upload.PresignOutput{}, err
	}

	return upload.PresignOutput{
		URL:       resp.URL,
		ObjectKey: objectKey,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, objectKey string) error {
	if err := session.Require(sc.Role, session.RoleAdmin); err != nil {
		return err
	}

	exists, err := uc.storage.FileExists(ctx, uc.bucket, objectKey)
	if err != nil {
		uc.l.Errorf(ctx, "internal.upload.usecase.Delete.FileExists: %v", err)
		return err
	}
	if !exists {
		return upload.ErrObjectNotFound
	}

	if err := uc.storage.DeleteFile(ctx, uc.bucket, objectKey); err != nil {
		uc.l.Errorf(ctx, "internal.upload.usecase.Delete.DeleteFile: %v", err)
		return err
	}

	return nil
}

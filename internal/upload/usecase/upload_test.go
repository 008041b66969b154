package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"autoexport-srv/config"
	"autoexport-srv/internal/model"
	"autoexport-srv/internal/upload"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/minio"
	"autoexport-srv/pkg/session"
)

// fakeStorage only answers the presign and delete paths; the embedded
// interface panics on anything else.
type fakeStorage struct {
	minio.MinIO

	lastRequest *minio.PresignedURLRequest
	objects     map[string]bool
	deleted     []string
}

func (f *fakeStorage) GetPresignedUploadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	f.lastRequest = req
	return &minio.PresignedURLResponse{
		URL:       "https://storage.example/" + req.ObjectName,
		Method:    req.Method,
		ExpiresAt: time.Now().Add(req.Expiry),
	}, nil
}

func (f *fakeStorage) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	return f.objects[objectName], nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	return nil
}

func newTestUsecase(storage *fakeStorage) upload.UseCase {
	return New(
		pkgLog.NewNopLogger(),
		storage,
		config.MinIOConfig{Bucket: "media"},
		config.UploadConfig{MaxFileSizeMB: 25, PresignTTLMins: 15},
		func() string { return "fixed-object-id" },
	)
}

func editorScope() model.Scope {
	return model.Scope{Role: session.RoleEditor}
}

func TestPresign_Validation(t *testing.T) {
	tests := []struct {
		name    string
		role    session.Role
		input   upload.PresignInput
		wantErr error
	}{
		{
			name:    "viewer denied",
			role:    session.RoleViewer,
			input:   upload.PresignInput{Kind: upload.KindImage, FileName: "a.jpg", ContentType: "image/jpeg"},
			wantErr: session.ErrForbidden,
		},
		{
			name:    "unknown kind",
			role:    session.RoleEditor,
			input:   upload.PresignInput{Kind: "archive", FileName: "a.zip", ContentType: "application/zip"},
			wantErr: upload.ErrInvalidKind,
		},
		{
			name:    "content type not allowed for kind",
			role:    session.RoleEditor,
			input:   upload.PresignInput{Kind: upload.KindImage, FileName: "a.pdf", ContentType: "application/pdf"},
			wantErr: upload.ErrInvalidContentType,
		},
		{
			name:    "missing file name",
			role:    session.RoleEditor,
			input:   upload.PresignInput{Kind: upload.KindImage, ContentType: "image/jpeg"},
			wantErr: upload.ErrFileNameRequired,
		},
		{
			name:    "file too large",
			role:    session.RoleEditor,
			input:   upload.PresignInput{Kind: upload.KindImage, FileName: "a.jpg", ContentType: "image/jpeg", SizeBytes: 26 << 20},
			wantErr: upload.ErrFileTooLarge,
		},
		{
			name:  "valid image",
			role:  session.RoleEditor,
			input: upload.PresignInput{Kind: upload.KindImage, FileName: "a.JPG", ContentType: "image/jpeg", SizeBytes: 1 << 20},
		},
		{
			name:  "valid resume",
			role:  session.RoleEditor,
			input: upload.PresignInput{Kind: upload.KindResume, FileName: "cv.pdf", ContentType: "application/pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &fakeStorage{}
			uc := newTestUsecase(storage)

			out, err := uc.Presign(context.Background(), model.Scope{Role: tt.role}, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Presign err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if storage.lastRequest != nil {
					t.Error("storage should not be called on rejected input")
				}
				return
			}
			if out.URL == "" {
				t.Error("URL should be set")
			}
			if !strings.HasPrefix(out.ObjectKey, tt.input.Kind+"s/fixed-object-id") {
				t.Errorf("ObjectKey = %q, want %q prefix", out.ObjectKey, tt.input.Kind+"s/fixed-object-id")
			}
			if ext := out.ObjectKey[strings.LastIndex(out.ObjectKey, "."):]; ext != strings.ToLower(ext) {
				t.Errorf("ObjectKey extension should be lowercased, got %q", out.ObjectKey)
			}
			if storage.lastRequest.Expiry != 15*time.Minute {
				t.Errorf("Expiry = %v, want 15m", storage.lastRequest.Expiry)
			}
			if storage.lastRequest.BucketName != "media" {
				t.Errorf("BucketName = %q, want media", storage.lastRequest.BucketName)
			}
		})
	}
}

func TestDelete_Gate(t *testing.T) {
	storage := &fakeStorage{objects: map[string]bool{"images/x.jpg": true}}
	uc := newTestUsecase(storage)

	if err := uc.Delete(context.Background(), editorScope(), "images/x.jpg"); !errors.Is(err, session.ErrForbidden) {
		t.Fatalf("editor Delete err = %v, want %v", err, session.ErrForbidden)
	}

	if err := uc.Delete(context.Background(), model.Scope{Role: session.RoleAdmin}, "images/missing.jpg"); !errors.Is(err, upload.ErrObjectNotFound) {
		t.Fatalf("missing object err = %v, want %v", err, upload.ErrObjectNotFound)
	}

	if err := uc.Delete(context.Background(), model.Scope{Role: session.RoleAdmin}, "images/x.jpg"); err != nil {
		t.Fatalf("admin Delete err = %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "images/x.jpg" {
		t.Errorf("deleted = %v", storage.deleted)
	}
}

package upload

import "time"

// Upload kinds. Each kind carries its own content type whitelist and
// storage prefix.
const (
	KindImage    = "image"
	KindDocument = "document"
	KindResume   = "resume"
)

type PresignInput struct {
	Kind        string
	FileName    string
	ContentType string
	SizeBytes   int64
}

type PresignOutput struct {
	URL       string    `json:"url"`
	ObjectKey string    `json:"object_key"`
	ExpiresAt time.Time `json:"expires_at"`
}

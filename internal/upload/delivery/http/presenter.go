package http

import "autoexport-srv/internal/upload"

type presignRequest struct {
	Kind        string `json:"kind" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	SizeBytes   int64  `json:"size_bytes"`
}

func (req presignRequest) toInput() upload.PresignInput {
	return upload.PresignInput{
		Kind:        req.Kind,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	}
}

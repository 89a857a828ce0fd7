package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"studio_api/internal/infrastructure/storage"
	"studio_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrUploadTooLarge       = errors.New("upload exceeds the size limit")
	ErrUploadEmpty          = errors.New("upload is empty")
	ErrUploadTypeNotAllowed = errors.New("file type not allowed")
)

// allowedUploadTypes are the briefing formats accepted from the site.
var allowedUploadTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/gif":       true,
	"image/webp":      true,
	"application/zip": true,
	"text/plain":      true,
}

type UploadedFile struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type IUploadUseCase interface {
	Upload(ctx context.Context, fileName string, r io.Reader) (UploadedFile, error)
}

type UploadUseCase struct {
	storage  interfaces.IObjectStorage
	maxBytes int64
	log      *zap.Logger
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(objects interfaces.IObjectStorage, maxBytes int64, log *zap.Logger) *UploadUseCase {
	return &UploadUseCase{storage: objects, maxBytes: maxBytes, log: log.Named("upload.usecase")}
}

// Upload sniffs the content type from the bytes; the client-declared type is ignored.
func (u *UploadUseCase) Upload(ctx context.Context, fileName string, r io.Reader) (UploadedFile, error) {
	body, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return UploadedFile{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(body)) > u.maxBytes {
		return UploadedFile{}, ErrUploadTooLarge
	}
	if len(body) == 0 {
		return UploadedFile{}, ErrUploadEmpty
	}

	ct := http.DetectContentType(body)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	if !allowedUploadTypes[ct] {
		u.log.Info("upload rejected", zap.String("content_type", ct), zap.String("file_name", fileName))
		return UploadedFile{}, ErrUploadTypeNotAllowed
	}

	key := storage.UploadKey(fileName)
	url, err := u.storage.Put(ctx, key, ct, bytes.NewReader(body))
	if err != nil {
		u.log.Error("upload store failed", zap.String("key", key), zap.Error(err))
		return UploadedFile{}, fmt.Errorf("store upload: %w", err)
	}
	u.log.Info("upload stored", zap.String("key", key), zap.Int("size", len(body)))
	return UploadedFile{
		Key:         key,
		URL:         url,
		FileName:    storage.SanitizeFileName(fileName),
		ContentType: ct,
		Size:        int64(len(body)),
	}, nil
}

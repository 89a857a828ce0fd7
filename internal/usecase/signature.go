package usecase

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

var ErrInvalidSignature = errors.New("signature must be a base64 encoded png or jpeg image")

// decodeSignature accepts a data URL (data:image/png;base64,...) or raw base64.
func decodeSignature(raw string) ([]byte, string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "data:") {
		_, payload, ok := strings.Cut(raw, ",")
		if !ok {
			return nil, "", ErrInvalidSignature
		}
		raw = payload
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		if b, err = base64.RawStdEncoding.DecodeString(raw); err != nil {
			return nil, "", ErrInvalidSignature
		}
	}
	ct := http.DetectContentType(b)
	if ct != "image/png" && ct != "image/jpeg" {
		return nil, "", ErrInvalidSignature
	}
	return b, ct, nil
}

package storage

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/oklog/ulid/v2"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ContractKey returns a fresh, time-sortable key for a contract PDF version.
func ContractKey(onboardingID string) string {
	return fmt.Sprintf("contracts/%s/%s.pdf", onboardingID, ulid.Make().String())
}

// SignatureKey is where the signature image of an onboarding is kept. The
// extension follows the sniffed content type so static serving matches it.
func SignatureKey(onboardingID, contentType string) string {
	ext := ".png"
	if contentType == "image/jpeg" {
		ext = ".jpg"
	}
	return fmt.Sprintf("signatures/%s/%s%s", onboardingID, ulid.Make().String(), ext)
}

// UploadKey namespaces a briefing upload and strips unsafe characters from its name.
func UploadKey(fileName string) string {
	name := SanitizeFileName(fileName)
	return fmt.Sprintf("uploads/%s-%s", ulid.Make().String(), name)
}

func SanitizeFileName(fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	if len(name) > 100 {
		name = name[len(name)-100:]
	}
	return name
}

func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}
	clean := path.Clean(key)
	return clean == key && !strings.HasPrefix(clean, "..")
}

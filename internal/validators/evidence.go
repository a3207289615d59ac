package validators

import (
	"fmt"
	"mime"
	"strings"
)

// allowedEvidenceTypes is the exhaustive set of MIME types accepted for
// evidence uploads.
var allowedEvidenceTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"text/plain": {},
}

// EvidenceContentType normalizes a declared MIME type and checks it against
// the evidence allow-list. Parameters such as charset are dropped.
func EvidenceContentType(declared string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return "", NewFieldError(FieldFile, "Unsupported file type")
	}

	mediaType = strings.ToLower(mediaType)
	if _, ok := allowedEvidenceTypes[mediaType]; !ok {
		return "", NewFieldError(FieldFile, fmt.Sprintf("Unsupported file type %q", mediaType))
	}

	return mediaType, nil
}

// EvidenceFileName validates the client supplied display name.
func EvidenceFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewFieldError(FieldFile, "File name is required")
	}
	if len(name) > 255 {
		return NewFieldError(FieldFile, "File name is too long")
	}
	return nil
}

// FileTooLarge reports an upload that exceeded maxBytes.
func FileTooLarge(maxBytes int64) *ValidationError {
	return NewFieldError(FieldFile, fmt.Sprintf("File exceeds the %d MB limit", maxBytes>>20))
}

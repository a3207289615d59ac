package utils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// internalErrorBody is sent when a response value cannot be encoded.
var internalErrorBody = []byte(`{"message":"Internal server error"}`)

// WriteJSON encodes data and writes it with statusCode.
//
// When encoding fails nothing of data is sent: the client gets a 500 with
// the API's generic error body, and the caller gets the encoding error to
// log.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// AttachmentDisposition builds a Content-Disposition header value that makes
// browsers download the body under fileName.
//
// Path components and control characters are stripped; names that still
// contain non-ASCII characters are encoded per RFC 2231.
func AttachmentDisposition(fileName string) string {
	name := fileName
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	if strings.TrimSpace(name) == "" {
		name = "download"
	}

	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

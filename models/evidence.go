package models

import (
	"io"
	"time"
)

// EvidenceFile is the metadata of an uploaded document tied to one case.
//
// The blob itself lives in the evidence area under StoragePath, a name
// generated by the server. StoragePath is never serialized; clients address
// files by ID only.
type EvidenceFile struct {
	ID         string `json:"id"`
	CaseID     string `json:"caseId"`
	UploadedBy string `json:"uploadedBy"`

	// FileName is the original name, kept for display only.
	FileName string `json:"fileName"`

	// FileType is the normalized MIME type used as Content-Type on download.
	FileType string `json:"fileType"`

	// FileSize is the blob size in bytes.
	FileSize int64 `json:"fileSize"`

	StoragePath string `json:"-"`

	// Checksum is the hex BLAKE2b-256 digest of the blob.
	Checksum string `json:"checksum"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the EvidenceFile model.
func (e EvidenceFile) TableName() string {
	return "evidence_files"
}

// EvidenceUpload carries an incoming file as read from a multipart form.
type EvidenceUpload struct {
	// Content is read at most once.
	Content io.Reader

	// FileName is the client supplied name.
	FileName string

	// ContentType is the declared MIME type.
	ContentType string
}

// StoredBlob describes a blob written to the evidence area.
type StoredBlob struct {
	Name     string
	Size     int64
	Checksum string
}

// EvidenceDownload is an opened evidence blob ready to be streamed.
// The caller must close Content.
type EvidenceDownload struct {
	File    EvidenceFile
	Content io.ReadCloser
}

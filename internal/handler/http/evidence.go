// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/internal/validators"
	"github.com/civilci/intake-portal/models"
)

const evidenceFormField = "file"

// uploadEvidence streams the "file" part of a multipart form into the
// evidence service. The part is never buffered in memory or in a temp file
// by the transport layer; the size limit is enforced while the blob is
// written.
func (h *Handler) uploadEvidence(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	reader, err := r.MultipartReader()
	if err != nil {
		writeError(w, r, validators.NewFieldError(evidenceFormField, "Expected a multipart/form-data upload"))
		return
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			writeError(w, r, validators.NewFieldError(evidenceFormField, "No file uploaded"))
			return
		}
		if err != nil {
			writeError(w, r, uploadReadError(err, h.maxUploadBytes))
			return
		}
		if part.FormName() != evidenceFormField {
			_ = part.Close()
			continue
		}

		file, err := h.services.EvidenceService.Upload(r.Context(), actorFrom(r), chi.URLParam(r, "caseID"), models.EvidenceUpload{
			Content:     part,
			FileName:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
		})
		_ = part.Close()
		if err != nil {
			writeError(w, r, uploadReadError(err, h.maxUploadBytes))
			return
		}

		log.Info().
			Str("case_id", file.CaseID).
			Str("file_id", file.ID).
			Int64("file_size", file.FileSize).
			Msg("evidence uploaded")
		writeJSON(w, r, file, http.StatusCreated)
		return
	}
}

// uploadReadError reports a body that hit the transport limit as the same
// validation failure the blob store raises.
func uploadReadError(err error, maxBytes int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return validators.FileTooLarge(maxBytes)
	}
	return err
}

func (h *Handler) listEvidence(w http.ResponseWriter, r *http.Request) {
	files, err := h.services.EvidenceService.List(r.Context(), actorFrom(r), chi.URLParam(r, "caseID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, files, http.StatusOK)
}

func (h *Handler) downloadEvidence(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	download, err := h.services.EvidenceService.Download(r.Context(), actorFrom(r), chi.URLParam(r, "fileID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer download.Content.Close()

	header := w.Header()
	header.Set("Content-Type", download.File.FileType)
	header.Set("Content-Disposition", utils.AttachmentDisposition(download.File.FileName))
	header.Set("Content-Length", strconv.FormatInt(download.File.FileSize, 10))
	header.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, download.Content); err != nil {
		log.Err(err).
			Str("file_id", download.File.ID).
			Str("storage_path", download.File.StoragePath).
			Msg("error streaming evidence")
	}
}

func (h *Handler) deleteEvidence(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EvidenceService.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "fileID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

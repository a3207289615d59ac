// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/models"
)

// evidenceFileStorage is the filesystem implementation of
// [EvidenceBlobStore]. Every blob is a flat file directly inside dir.
type evidenceFileStorage struct {
	dir    string
	logger *logger.Logger

	now func() time.Time
}

// NewEvidenceFileStorage creates dir when missing and returns a blob store
// rooted at it.
func NewEvidenceFileStorage(dir string, logger *logger.Logger) (EvidenceBlobStore, error) {
	logger.Debug().Str("dir", dir).Msg("creating evidence file storage")

	if dir == "" {
		return nil, fmt.Errorf("%w: empty evidence directory", ErrWritingBlob)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingBlob, err)
	}

	return &evidenceFileStorage{
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Save writes r to a temporary file while hashing it and renames it into
// place once the whole stream fit under maxBytes.
func (s *evidenceFileStorage) Save(ctx context.Context, r io.Reader, ext string, maxBytes int64) (models.StoredBlob, error) {
	log := logger.FromContext(ctx)

	name, err := s.newName(ext)
	if err != nil {
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrWritingBlob, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*evidenceFileStorage.Save").Msg("error creating temp file")
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrWritingBlob, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	checksum := utils.NewChecksum()
	written, err := io.Copy(io.MultiWriter(tmp, checksum), io.LimitReader(&contextReader{ctx: ctx, r: r}, maxBytes+1))
	closeErr := tmp.Close()
	if err != nil {
		log.Err(err).Str("func", "*evidenceFileStorage.Save").Msg("error streaming blob")
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrWritingBlob, err)
	}
	if written > maxBytes {
		return models.StoredBlob{}, ErrBlobTooLarge
	}
	if closeErr != nil {
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrWritingBlob, closeErr)
	}

	if err = os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		log.Err(err).Str("func", "*evidenceFileStorage.Save").Msg("error moving blob into place")
		return models.StoredBlob{}, fmt.Errorf("%w: %w", ErrWritingBlob, err)
	}
	committed = true

	return models.StoredBlob{
		Name:     name,
		Size:     written,
		Checksum: utils.HexSum(checksum),
	}, nil
}

func (s *evidenceFileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*evidenceFileStorage.Open").Msg("error opening blob")
		return nil, err
	}
	return f, nil
}

// Remove deletes the blob. A blob that is already gone is not an error.
func (s *evidenceFileStorage) Remove(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*evidenceFileStorage.Remove").Msg("error removing blob")
		return err
	}
	return nil
}

// path resolves name inside the evidence area, rejecting anything that is
// not a plain file name.
func (s *evidenceFileStorage) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", ErrInvalidBlobName
	}
	return filepath.Join(s.dir, name), nil
}

// newName returns "<unix-millis>-<12 hex chars><ext>".
func (s *evidenceFileStorage) newName(ext string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + hex.EncodeToString(id[:6]) + cleanExtension(ext), nil
}

// cleanExtension keeps ext only when it is a short dot-prefixed
// alphanumeric suffix.
func cleanExtension(ext string) string {
	if len(ext) < 2 || len(ext) > 9 || ext[0] != '.' {
		return ""
	}
	for _, r := range ext[1:] {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return ""
		}
	}
	return strings.ToLower(ext)
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

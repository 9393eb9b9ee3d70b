// Package upload stores a single multipart file per request under the public
// upload directory with a generated unique filename.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// maxUploadSize bounds the in-memory portion of multipart parsing.
const maxUploadSize = 32 << 20 // 32 MB

// File describes a stored upload.
type File struct {
	// Filename is the generated name on disk, e.g. "6f1c...d2.jpg".
	Filename string
	// ContentType is the MIME type declared by the client, with a fallback
	// derived from the file extension.
	ContentType string
	// PublicPath is the URL path the file is served from, e.g. "/resources/6f1c...d2.jpg".
	PublicPath string
}

// IsVideo reports whether the upload's MIME major type is video.
func (f *File) IsVideo() bool {
	return strings.HasPrefix(f.ContentType, "video/")
}

// Saver writes uploads to a directory and maps them to a public URL prefix.
type Saver struct {
	dir       string
	urlPrefix string
}

// NewSaver creates a Saver. The directory is created if it does not exist.
func NewSaver(dir, urlPrefix string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// FromRequest stores the file sent under field, if any. It returns nil when
// the request is not multipart or carries no file under that field, so
// JSON-only requests and file-less updates pass through untouched.
func (s *Saver) FromRequest(r *http.Request, field string) (*File, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return nil, nil
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	src, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read form file %q: %w", field, err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}

	return &File{
		Filename:    name,
		ContentType: contentType,
		PublicPath:  path.Join(s.urlPrefix, name),
	}, nil
}

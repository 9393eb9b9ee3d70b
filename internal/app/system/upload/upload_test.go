package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("title", "no file here"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestFromRequestStoresFile(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir, "/resources/")
	require.NoError(t, err)

	req := multipartRequest(t, "photo", "portrait.JPG", []byte("image bytes"))
	file, err := saver.FromRequest(req, "photo")
	require.NoError(t, err)
	require.NotNil(t, file)

	// Generated name keeps the extension, lowercased, and never the
	// client-supplied basename.
	assert.True(t, strings.HasSuffix(file.Filename, ".jpg"))
	assert.NotContains(t, file.Filename, "portrait")
	assert.Equal(t, "/resources/"+file.Filename, file.PublicPath)

	stored, err := os.ReadFile(filepath.Join(dir, file.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), stored)
}

func TestFromRequestUniqueNames(t *testing.T) {
	saver, err := NewSaver(t.TempDir(), "/resources")
	require.NoError(t, err)

	first, err := saver.FromRequest(multipartRequest(t, "photo", "a.png", []byte("one")), "photo")
	require.NoError(t, err)
	second, err := saver.FromRequest(multipartRequest(t, "photo", "a.png", []byte("two")), "photo")
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestFromRequestNonMultipart(t *testing.T) {
	saver, err := NewSaver(t.TempDir(), "/resources")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	file, err := saver.FromRequest(req, "photo")
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestFromRequestMissingField(t *testing.T) {
	saver, err := NewSaver(t.TempDir(), "/resources")
	require.NoError(t, err)

	file, err := saver.FromRequest(multipartRequest(t, "photo", "", nil), "photo")
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestIsVideo(t *testing.T) {
	assert.True(t, (&File{ContentType: "video/mp4"}).IsVideo())
	assert.False(t, (&File{ContentType: "image/png"}).IsVideo())
	assert.False(t, (&File{ContentType: ""}).IsVideo())
}

func TestContentTypeFallsBackToExtension(t *testing.T) {
	saver, err := NewSaver(t.TempDir(), "/resources")
	require.NoError(t, err)

	// CreateFormFile declares application/octet-stream, so the saver keeps
	// the declared type rather than guessing.
	file, err := saver.FromRequest(multipartRequest(t, "photo", "clip.mp4", []byte("v")), "photo")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, "application/octet-stream", file.ContentType)
}

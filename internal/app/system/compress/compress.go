// Package compress negotiates response compression for API and static routes.
package compress

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// compressionLevel balances CPU cost against ratio for JSON payloads.
const compressionLevel = 5

// Middleware returns a middleware that negotiates the response encoding from
// Accept-Encoding. Gzip and deflate come from chi's compressor; brotli is
// registered as an additional encoder.
func Middleware() func(http.Handler) http.Handler {
	c := chimw.NewCompressor(compressionLevel)
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c.Handler
}

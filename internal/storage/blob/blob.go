// Package blob stores uploaded photo bytes under opaque server generated keys.
package blob

import (
	"context"
	"io"
	"regexp"
	"strings"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/pkg/token"
)

// Blob is an open stored file. Callers must close Body.
type Blob struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// Store persists and retrieves blobs.
type Store interface {
	// Put writes r under a fresh key ending in ext and reports bytes written.
	// A failed write may leave a partial blob behind.
	Put(ctx context.Context, ext, contentType string, r io.Reader) (key string, written int64, err error)
	// Open returns ErrBlobNotFound for unknown keys and ErrInvalidKey for
	// keys that could address anything outside the store.
	Open(ctx context.Context, key string) (*Blob, error)
}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,16}$`)

// NewKey returns a random key with ext appended when ext is a plain
// lowercase extension.
func NewKey(ext string) string {
	ext = strings.ToLower(ext)
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	return token.New() + ext
}

// ValidateKey rejects keys that are empty or carry path syntax.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, "/\\\x00") {
		return domainErrors.ErrInvalidKey
	}
	return nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

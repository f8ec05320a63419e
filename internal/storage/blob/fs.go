package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	cr "github.com/cockroachdb/errors"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/pkg/mediatype"
)

// FSStore keeps blobs as flat files in one directory.
type FSStore struct {
	root  string
	types *mediatype.Table
}

// NewFSStore creates dir if needed and anchors the store at its resolved path.
func NewFSStore(dir string, types *mediatype.Table) (*FSStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, cr.Wrap(err, "resolve upload dir")
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, cr.Wrap(err, "create upload dir")
	}
	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, cr.Wrap(err, "resolve upload dir")
	}
	return &FSStore{root: root, types: types}, nil
}

// Root is the directory holding the blobs.
func (s *FSStore) Root() string {
	return s.root
}

func (s *FSStore) Put(ctx context.Context, ext, _ string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	key := NewKey(ext)
	f, err := os.OpenFile(filepath.Join(s.root, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, cr.Wrap(err, "create blob")
	}
	written, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil {
		return key, written, cr.Wrap(copyErr, "write blob")
	}
	if closeErr != nil {
		return key, written, cr.Wrap(closeErr, "close blob")
	}
	return key, written, nil
}

func (s *FSStore) Open(ctx context.Context, key string) (*Blob, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved, err := filepath.EvalSymlinks(filepath.Join(s.root, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainErrors.ErrBlobNotFound
		}
		return nil, cr.Wrap(err, "resolve blob")
	}
	rel, err := filepath.Rel(s.root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, domainErrors.ErrInvalidKey
	}

	f, err := os.Open(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainErrors.ErrBlobNotFound
		}
		return nil, cr.Wrap(err, "open blob")
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, cr.Wrap(err, "stat blob")
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, domainErrors.ErrBlobNotFound
	}
	return &Blob{Body: f, Size: info.Size(), ContentType: s.types.TypeFor(key)}, nil
}

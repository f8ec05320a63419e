package blob

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	cr "github.com/cockroachdb/errors"
	storage "github.com/supabase-community/storage-go"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/pkg/mediatype"
)

type uploadFunc func(bucket, key string, r io.Reader, contentType string) error

type downloadFunc func(bucket, key string) ([]byte, error)

// SupabaseStore keeps blobs in a Supabase Storage bucket.
type SupabaseStore struct {
	bucket   string
	types    *mediatype.Table
	upload   uploadFunc
	download downloadFunc
}

// NewSupabaseStore talks to the storage API of the project at baseURL.
func NewSupabaseStore(baseURL, serviceKey, bucket string, types *mediatype.Table) *SupabaseStore {
	client := storage.NewClient(strings.TrimRight(baseURL, "/")+"/storage/v1", serviceKey, nil)
	return &SupabaseStore{
		bucket: bucket,
		types:  types,
		upload: func(bucket, key string, r io.Reader, contentType string) error {
			_, err := client.UploadFile(bucket, key, r, storage.FileOptions{ContentType: &contentType})
			return err
		},
		download: func(bucket, key string) ([]byte, error) {
			return client.DownloadFile(bucket, key)
		},
	}
}

func (s *SupabaseStore) Put(ctx context.Context, ext, contentType string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	if contentType == "" {
		contentType = mediatype.OctetStream
	}
	key := NewKey(ext)
	counter := &countingReader{r: r}
	if err := s.upload(s.bucket, key, counter, contentType); err != nil {
		return key, counter.n, cr.Wrapf(err, "upload blob %s", key)
	}
	return key, counter.n, nil
}

func (s *SupabaseStore) Open(ctx context.Context, key string) (*Blob, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.download(s.bucket, key)
	if err != nil {
		if isNotFound(err) {
			return nil, domainErrors.ErrBlobNotFound
		}
		return nil, cr.Wrapf(err, "download blob %s", key)
	}
	return &Blob{
		Body:        io.NopCloser(bytes.NewReader(data)),
		Size:        int64(len(data)),
		ContentType: s.types.TypeFor(key),
	}, nil
}

// isNotFound prefers the SDK status code. Supabase reports the code as
// statusCode in the body, which leaves Status unset, so the message is
// checked as well.
func isNotFound(err error) bool {
	var se *storage.StorageError
	if cr.As(err, &se) && se.Status != 0 {
		return se.Status == http.StatusNotFound
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "404")
}

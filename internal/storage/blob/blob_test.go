package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage "github.com/supabase-community/storage-go"

	"github.com/polkiloo/photokiosk/internal/config"
	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/pkg/mediatype"
)

func newTable() *mediatype.Table {
	return mediatype.NewTable(mediatype.DefaultExtensions())
}

func TestNewKey(t *testing.T) {
	assert.Regexp(t, `^[0-9a-f]{32}\.jpg$`, NewKey(".jpg"))
	assert.Regexp(t, `^[0-9a-f]{32}\.png$`, NewKey(".PNG"))
	assert.Regexp(t, `^[0-9a-f]{32}$`, NewKey(""))
	assert.Regexp(t, `^[0-9a-f]{32}$`, NewKey("./../x"))
	assert.Regexp(t, `^[0-9a-f]{32}$`, NewKey(".averyveryverylongext"))
	assert.NotEqual(t, NewKey(".jpg"), NewKey(".jpg"))
}

func TestValidateKey(t *testing.T) {
	for _, key := range []string{"", ".", "..", "../etc/passwd", "a/b", `a\b`, "a\x00b"} {
		assert.True(t, cr.Is(ValidateKey(key), domainErrors.ErrInvalidKey), "key %q", key)
	}
	assert.NoError(t, ValidateKey("0123abcd.jpg"))
}

func TestFSStorePutAndOpen(t *testing.T) {
	store, err := NewFSStore(filepath.Join(t.TempDir(), "uploads"), newTable())
	require.NoError(t, err)

	key, n, err := store.Put(context.Background(), ".jpg", "image/jpeg", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	b, err := store.Open(context.Background(), key)
	require.NoError(t, err)
	defer b.Body.Close()
	data, err := io.ReadAll(b.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, int64(5), b.Size)
	assert.Equal(t, "image/jpeg", b.ContentType)
}

func TestFSStoreOpenErrors(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFSStore(filepath.Join(dir, "uploads"), newTable())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "missing.jpg")
	assert.True(t, cr.Is(err, domainErrors.ErrBlobNotFound), "got %v", err)

	_, err = store.Open(context.Background(), "../secret.txt")
	assert.True(t, cr.Is(err, domainErrors.ErrInvalidKey), "got %v", err)

	require.NoError(t, os.Mkdir(filepath.Join(store.Root(), "subdir"), 0o755))
	_, err = store.Open(context.Background(), "subdir")
	assert.True(t, cr.Is(err, domainErrors.ErrBlobNotFound), "got %v", err)

	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))
	require.NoError(t, os.Symlink(outside, filepath.Join(store.Root(), "link.txt")))
	_, err = store.Open(context.Background(), "link.txt")
	assert.True(t, cr.Is(err, domainErrors.ErrInvalidKey), "got %v", err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestFSStorePutReadFailure(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), newTable())
	require.NoError(t, err)

	key, n, err := store.Put(context.Background(), ".png", "image/png", io.MultiReader(strings.NewReader("ab"), failingReader{}))
	require.Error(t, err)
	assert.Equal(t, int64(2), n)
	assert.NotEmpty(t, key)
}

func TestFSStoreHonorsCanceledContext(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), newTable())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = store.Put(ctx, ".jpg", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func newFakeSupabase(objects map[string][]byte) *SupabaseStore {
	return &SupabaseStore{
		bucket: "photos",
		types:  newTable(),
		upload: func(bucket, key string, r io.Reader, contentType string) error {
			if bucket != "photos" {
				return errors.New("wrong bucket")
			}
			data, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			objects[key] = data
			objects[key+"#type"] = []byte(contentType)
			return nil
		},
		download: func(bucket, key string) ([]byte, error) {
			data, ok := objects[key]
			if !ok {
				return nil, errors.New("Object not found")
			}
			return data, nil
		},
	}
}

func TestSupabaseStorePutAndOpen(t *testing.T) {
	objects := map[string][]byte{}
	store := newFakeSupabase(objects)

	key, n, err := store.Put(context.Background(), ".png", "", bytes.NewReader([]byte("pixels")))
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
	assert.Equal(t, mediatype.OctetStream, string(objects[key+"#type"]))

	b, err := store.Open(context.Background(), key)
	require.NoError(t, err)
	data, err := io.ReadAll(b.Body)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
	assert.Equal(t, "image/png", b.ContentType)
	assert.Equal(t, int64(6), b.Size)
}

func TestSupabaseStoreErrors(t *testing.T) {
	store := newFakeSupabase(map[string][]byte{})

	_, err := store.Open(context.Background(), "missing.jpg")
	assert.True(t, cr.Is(err, domainErrors.ErrBlobNotFound), "got %v", err)

	_, err = store.Open(context.Background(), "a/b.jpg")
	assert.True(t, cr.Is(err, domainErrors.ErrInvalidKey), "got %v", err)

	store.download = func(string, string) ([]byte, error) { return nil, errors.New("connection reset") }
	_, err = store.Open(context.Background(), "x.jpg")
	require.Error(t, err)
	assert.False(t, cr.Is(err, domainErrors.ErrNotFound))

	store.download = func(string, string) ([]byte, error) { return nil, &storage.StorageError{Status: http.StatusNotFound} }
	_, err = store.Open(context.Background(), "x.jpg")
	assert.True(t, cr.Is(err, domainErrors.ErrBlobNotFound), "got %v", err)

	store.download = func(string, string) ([]byte, error) { return nil, &storage.StorageError{Status: http.StatusForbidden} }
	_, err = store.Open(context.Background(), "x.jpg")
	require.Error(t, err)
	assert.False(t, cr.Is(err, domainErrors.ErrNotFound), "status wins over the message")

	store.upload = func(string, string, io.Reader, string) error { return errors.New("quota") }
	_, _, err = store.Put(context.Background(), ".jpg", "image/jpeg", strings.NewReader("x"))
	assert.ErrorContains(t, err, "quota")
}

func TestNewStoreSelectsBackend(t *testing.T) {
	types := newTable()

	fsStore, err := NewStore(&config.Config{BlobBackend: config.BlobBackendFS, UploadDir: t.TempDir()}, types)
	require.NoError(t, err)
	assert.IsType(t, &FSStore{}, fsStore)

	sbStore, err := NewStore(&config.Config{
		BlobBackend:    config.BlobBackendSupabase,
		SupabaseURL:    "https://project.supabase.co",
		SupabaseKey:    "key",
		SupabaseBucket: "photos",
	}, types)
	require.NoError(t, err)
	assert.IsType(t, &SupabaseStore{}, sbStore)
}

func TestNewMediaTable(t *testing.T) {
	table := NewMediaTable(&config.Config{})
	assert.Equal(t, ".jpg", table.ExtensionFor("image/jpeg"))

	table = NewMediaTable(&config.Config{MIMEExtensions: map[string]string{"image/avif": ".avif"}})
	assert.Equal(t, ".avif", table.ExtensionFor("image/avif"))
	assert.Equal(t, "", table.ExtensionFor("image/jpeg"))
}

package test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/storage/blob"
)

// BlobStoreStub keeps uploaded bytes in memory.
type BlobStoreStub struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Types   map[string]string
	// FailAt makes the n-th Put (1-based) fail; zero disables it.
	FailAt int
	calls  int
}

// NewBlobStoreStub constructs empty stub store.
func NewBlobStoreStub() *BlobStoreStub {
	return &BlobStoreStub{Objects: make(map[string][]byte), Types: make(map[string]string)}
}

// Put reads r fully and stores it under a sequential key.
func (s *BlobStoreStub) Put(ctx context.Context, ext, contentType string, r io.Reader) (string, int64, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()

	if s.FailAt > 0 && call == s.FailAt {
		return "", 0, fmt.Errorf("blob write %d failed", call)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", int64(len(data)), err
	}
	key := fmt.Sprintf("key%04d%s", call, ext)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = data
	s.Types[key] = contentType
	return key, int64(len(data)), nil
}

// Open serves a previously stored object.
func (s *BlobStoreStub) Open(ctx context.Context, key string) (*blob.Blob, error) {
	if err := blob.ValidateKey(key); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.Objects[key]
	if !ok {
		return nil, domainErrors.ErrBlobNotFound
	}
	return &blob.Blob{Body: io.NopCloser(bytes.NewReader(data)), Size: int64(len(data)), ContentType: s.Types[key]}, nil
}

// HealthCheckerStub returns Err from every check.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

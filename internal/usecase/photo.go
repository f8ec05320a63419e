package usecase

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	cr "github.com/cockroachdb/errors"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/domain/repository"
	"github.com/polkiloo/photokiosk/internal/pkg/clock"
	"github.com/polkiloo/photokiosk/internal/pkg/mediatype"
	"github.com/polkiloo/photokiosk/internal/pkg/token"
)

// fallbackFileName replaces names that reduce to nothing.
const fallbackFileName = "photo"

// BlobStore is where upload bytes go.
type BlobStore interface {
	Put(ctx context.Context, ext, contentType string, r io.Reader) (key string, written int64, err error)
}

// PhotoUseCase registers uploaded photos against live sessions.
type PhotoUseCase struct {
	sessions *SessionUseCase
	photos   repository.PhotoRepository
	blobs    BlobStore
	types    *mediatype.Table
	clock    clock.Clock
	logger   *slog.Logger
}

// NewPhotoUseCase constructs PhotoUseCase.
func NewPhotoUseCase(
	sessions *SessionUseCase,
	photos repository.PhotoRepository,
	blobs BlobStore,
	types *mediatype.Table,
	clk clock.Clock,
	logger *slog.Logger,
) *PhotoUseCase {
	return &PhotoUseCase{sessions: sessions, photos: photos, blobs: blobs, types: types, clock: clk, logger: logger}
}

// Upload stores files one by one. It is not atomic: when file k fails the
// photos stored before it stay persisted and are returned with the error.
func (u *PhotoUseCase) Upload(ctx context.Context, sessionID string, files []model.UploadFile) ([]model.Photo, error) {
	if _, err := u.sessions.GetLive(ctx, sessionID); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domainErrors.ErrEmptyUpload
	}

	created := make([]model.Photo, 0, len(files))
	for _, f := range files {
		photo, err := u.store(ctx, sessionID, f)
		if err != nil {
			u.logger.Error("photo upload aborted",
				slog.String("session_id", sessionID),
				slog.Int("stored", len(created)),
				slog.Any("error", err))
			return created, err
		}
		created = append(created, *photo)
	}

	u.logger.Info("photos uploaded", slog.String("session_id", sessionID), slog.Int("count", len(created)))
	return created, nil
}

func (u *PhotoUseCase) store(ctx context.Context, sessionID string, f model.UploadFile) (*model.Photo, error) {
	name := SafeFileName(f.Name)
	contentType := strings.TrimSpace(f.ContentType)
	if contentType == "" {
		contentType = mediatype.OctetStream
	}
	ext := strings.ToLower(path.Ext(name))
	if ext == "" || ext == "." {
		ext = u.types.ExtensionFor(contentType)
	}

	body, err := f.Open()
	if err != nil {
		return nil, cr.Wrapf(err, "open upload %q", name)
	}
	defer body.Close()

	key, written, err := u.blobs.Put(ctx, ext, contentType, body)
	if err != nil {
		return nil, cr.Wrapf(err, "store upload %q", name)
	}

	photo := model.Photo{
		ID:           token.New(),
		SessionID:    sessionID,
		StorageKey:   key,
		OriginalName: name,
		MimeType:     contentType,
		SizeBytes:    written,
		CreatedAt:    u.clock.Now(),
	}
	if err := u.photos.Create(ctx, photo); err != nil {
		return nil, cr.Wrapf(err, "register upload %q", name)
	}
	return &photo, nil
}

// List returns the photos of a live session in upload order.
func (u *PhotoUseCase) List(ctx context.Context, sessionID string) ([]model.Photo, error) {
	if _, err := u.sessions.GetLive(ctx, sessionID); err != nil {
		return nil, err
	}
	return u.photos.ListBySession(ctx, sessionID)
}

// SafeFileName drops any directory part of a client supplied name,
// treating both slash kinds as separators.
func SafeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	base = strings.TrimSpace(base)
	if base == "" || base == "." || base == "/" || base == ".." {
		return fallbackFileName
	}
	return base
}

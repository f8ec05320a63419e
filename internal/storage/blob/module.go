package blob

import (
	"go.uber.org/fx"

	"github.com/polkiloo/photokiosk/internal/config"
	"github.com/polkiloo/photokiosk/internal/pkg/mediatype"
)

// Module provides the media type table and the configured blob store.
var Module = fx.Provide(
	NewMediaTable,
	NewStore,
)

// NewMediaTable builds the content type table from configuration, falling
// back to the built-in image types.
func NewMediaTable(cfg *config.Config) *mediatype.Table {
	if len(cfg.MIMEExtensions) == 0 {
		return mediatype.NewTable(mediatype.DefaultExtensions())
	}
	return mediatype.NewTable(cfg.MIMEExtensions)
}

// NewStore selects the backend named by configuration.
func NewStore(cfg *config.Config, types *mediatype.Table) (Store, error) {
	if cfg.BlobBackend == config.BlobBackendSupabase {
		return NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket, types), nil
	}
	return NewFSStore(cfg.UploadDir, types)
}

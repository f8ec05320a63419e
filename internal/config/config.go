package config

import (
	"flag"
	"io"
	"os"
	"strings"
	"time"

	cr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Blob backends understood by the storage layer.
const (
	BlobBackendFS       = "fs"
	BlobBackendSupabase = "supabase"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string            `envconfig:"RUN_ADDRESS" default:":8080"`
	DatabaseURI     string            `envconfig:"DATABASE_URI"`
	SessionTTL      time.Duration     `envconfig:"SESSION_TTL" default:"2h"`
	ShutdownTimeout time.Duration     `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string            `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins     []string          `envconfig:"CORS_ORIGINS" default:"*"`
	MaxUploadMemory int64             `envconfig:"MAX_UPLOAD_MEMORY" default:"33554432"`
	OrderPrefix     string            `envconfig:"ORDER_PREFIX" default:"KSK"`
	MIMEExtensions  map[string]string `envconfig:"MIME_EXTENSIONS"`

	BlobBackend    string `envconfig:"BLOB_BACKEND" default:"fs"`
	UploadDir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
	SupabaseURL    string `envconfig:"SUPABASE_URL"`
	SupabaseKey    string `envconfig:"SUPABASE_SERVICE_KEY"`
	SupabaseBucket string `envconfig:"SUPABASE_BUCKET" default:"photos"`
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionTTL      = 2 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxUploadMemory = 32 << 20
	defaultOrderPrefix     = "KSK"
	defaultUploadDir       = "uploads"
)

// Load reads an optional .env file, then environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, cr.Wrap(err, "process env config")
	}

	fs := flag.NewFlagSet("kiosk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Lifetime of a kiosk session")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.BlobBackend, "blob-backend", cfg.BlobBackend, "Photo storage backend: fs or supabase")
	fs.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "Directory for the fs photo backend")

	if err := fs.Parse(args); err != nil {
		return nil, cr.Wrap(err, "parse flags")
	}

	cfg.normalize()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	if c.RunAddress == "" {
		c.RunAddress = defaultRunAddress
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = defaultSessionTTL
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.MaxUploadMemory <= 0 {
		c.MaxUploadMemory = defaultMaxUploadMemory
	}
	if strings.TrimSpace(c.OrderPrefix) == "" {
		c.OrderPrefix = defaultOrderPrefix
	}
	if c.UploadDir == "" {
		c.UploadDir = defaultUploadDir
	}
	c.BlobBackend = strings.ToLower(strings.TrimSpace(c.BlobBackend))
	if c.BlobBackend == "" {
		c.BlobBackend = BlobBackendFS
	}
	c.SupabaseURL = strings.TrimRight(c.SupabaseURL, "/")
}

func (c *Config) validate() error {
	if c.DatabaseURI == "" {
		return cr.New("database URI must be provided")
	}
	switch c.BlobBackend {
	case BlobBackendFS:
	case BlobBackendSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" || c.SupabaseBucket == "" {
			return cr.New("supabase backend requires SUPABASE_URL, SUPABASE_SERVICE_KEY and SUPABASE_BUCKET")
		}
	default:
		return cr.Newf("unknown blob backend %q", c.BlobBackend)
	}
	return nil
}

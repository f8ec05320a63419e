package postgres

import (
	"context"
	"log/slog"
	"time"

	cr "github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/photokiosk/internal/domain/errors"
	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/domain/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	settingsKey = "global"
)

// pgxPool is the subset of *pgxpool.Pool used by the storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type sessionRepository struct {
	storage *Storage
}

type photoRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type settingsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, cr.Wrap(err, "parse dsn")
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, cr.Wrap(err, "connect db")
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var _ repository.Factory = (*Storage)(nil)

// Factory methods for domain repositories.
func (s *Storage) Sessions() repository.SessionRepository {
	return &sessionRepository{storage: s}
}

func (s *Storage) Photos() repository.PhotoRepository {
	return &photoRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Settings() repository.SettingsRepository {
	return &settingsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            status TEXT NOT NULL DEFAULT 'active',
            created_at TIMESTAMPTZ NOT NULL,
            expires_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS photos (
            seq BIGSERIAL PRIMARY KEY,
            id TEXT UNIQUE NOT NULL,
            session_id TEXT NOT NULL REFERENCES sessions(id),
            storage_key TEXT UNIQUE NOT NULL,
            original_name TEXT NOT NULL,
            mime_type TEXT NOT NULL,
            size_bytes BIGINT NOT NULL CHECK (size_bytes >= 0),
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            order_number TEXT PRIMARY KEY,
            session_id TEXT NOT NULL REFERENCES sessions(id),
            photo_ids TEXT[] NOT NULL,
            photo_count INTEGER NOT NULL,
            store_name TEXT NOT NULL,
            currency TEXT NOT NULL,
            price_per_photo DOUBLE PRECISION NOT NULL,
            receipt_footer TEXT NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            printed_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            key TEXT PRIMARY KEY,
            store_name TEXT NOT NULL,
            currency TEXT NOT NULL,
            price_per_photo DOUBLE PRECISION NOT NULL,
            receipt_footer TEXT NOT NULL,
            admin_pin TEXT,
            updated_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_photos_session ON photos(session_id, created_at, seq)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_session ON orders(session_id, created_at DESC)`,
	}

	for i, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			s.logger.Error("schema statement failed", slog.Int("statement", i), slog.String("error", err.Error()))
			return cr.Wrap(err, "init schema")
		}
	}

	s.logger.Info("database schema ready", slog.Int("statements", len(statements)))
	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if cr.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// --- SessionRepository implementation ---

func (r *sessionRepository) Create(ctx context.Context, session model.Session) error {
	const query = `INSERT INTO sessions (id, status, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.storage.pool.Exec(ctx, query, session.ID, model.SessionStatusActive, session.CreatedAt, session.ExpiresAt); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*model.Session, error) {
	const query = `SELECT id, created_at, expires_at FROM sessions WHERE id=$1`
	var s model.Session
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if cr.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// --- PhotoRepository implementation ---

const photoColumns = `id, session_id, storage_key, original_name, mime_type, size_bytes, created_at`

func (r *photoRepository) Create(ctx context.Context, p model.Photo) error {
	const query = `INSERT INTO photos (` + photoColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.storage.pool.Exec(ctx, query, p.ID, p.SessionID, p.StorageKey, p.OriginalName, p.MimeType, p.SizeBytes, p.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return domainErrors.ErrSessionNotFound
		case pgUniqueViolation:
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *photoRepository) ListBySession(ctx context.Context, sessionID string) ([]model.Photo, error) {
	const query = `SELECT ` + photoColumns + ` FROM photos WHERE session_id=$1 ORDER BY created_at, seq`
	return r.list(ctx, query, sessionID)
}

func (r *photoRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Photo, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT ` + photoColumns + ` FROM photos WHERE id = ANY($1) ORDER BY created_at, seq`
	return r.list(ctx, query, ids)
}

func (r *photoRepository) list(ctx context.Context, query string, arg any) ([]model.Photo, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.SessionID, &p.StorageKey, &p.OriginalName, &p.MimeType, &p.SizeBytes, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

const orderColumns = `order_number, session_id, photo_ids, store_name, currency, price_per_photo,
                      receipt_footer, total_amount, status, created_at, printed_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.Number, &o.SessionID, &o.PhotoIDs, &o.Pricing.StoreName, &o.Pricing.Currency,
		&o.Pricing.PricePerPhoto, &o.Pricing.ReceiptFooter, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.PrintedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, o model.Order) error {
	const query = `INSERT INTO orders (order_number, session_id, photo_ids, photo_count, store_name, currency,
                   price_per_photo, receipt_footer, total_amount, status, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.storage.pool.Exec(ctx, query, o.Number, o.SessionID, o.PhotoIDs, o.PhotoCount(),
		o.Pricing.StoreName, o.Pricing.Currency, o.Pricing.PricePerPhoto, o.Pricing.ReceiptFooter,
		o.TotalAmount, o.Status, o.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return domainErrors.ErrAlreadyExists
		case pgForeignKeyViolation:
			return domainErrors.ErrSessionNotFound
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE order_number=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, number))
	if err != nil {
		if cr.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) MarkPrinted(ctx context.Context, number string, at time.Time) (*model.Order, error) {
	const query = `UPDATE orders SET status=$1, printed_at=$2 WHERE order_number=$3 RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, model.OrderStatusPrinted, at, number))
	if err != nil {
		if cr.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// --- SettingsRepository implementation ---

const settingsColumns = `store_name, currency, price_per_photo, receipt_footer, admin_pin, updated_at`

func scanSettings(row pgx.Row) (*model.Settings, error) {
	var s model.Settings
	if err := row.Scan(&s.StoreName, &s.Currency, &s.PricePerPhoto, &s.ReceiptFooter, &s.AdminPIN, &s.UpdatedAt); err != nil {
		if cr.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrSettingsNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	const query = `SELECT ` + settingsColumns + ` FROM settings WHERE key=$1`
	return scanSettings(r.storage.pool.QueryRow(ctx, query, settingsKey))
}

func (r *settingsRepository) InsertDefault(ctx context.Context, s model.Settings) error {
	const query = `INSERT INTO settings (key, ` + settingsColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   ON CONFLICT (key) DO NOTHING`
	_, err := r.storage.pool.Exec(ctx, query, settingsKey, s.StoreName, s.Currency, s.PricePerPhoto,
		s.ReceiptFooter, s.AdminPIN, s.UpdatedAt)
	return err
}

func (r *settingsRepository) BackfillPIN(ctx context.Context, pin string, at time.Time) error {
	const query = `UPDATE settings SET admin_pin=$1, updated_at=$2 WHERE key=$3 AND admin_pin IS NULL`
	_, err := r.storage.pool.Exec(ctx, query, pin, at, settingsKey)
	return err
}

func (r *settingsRepository) Update(ctx context.Context, patch model.SettingsPatch, at time.Time) (*model.Settings, error) {
	const query = `UPDATE settings SET
                       store_name = COALESCE($1, store_name),
                       currency = COALESCE($2, currency),
                       price_per_photo = COALESCE($3, price_per_photo),
                       receipt_footer = COALESCE($4, receipt_footer),
                       admin_pin = COALESCE($5, admin_pin),
                       updated_at = $6
                   WHERE key=$7
                   RETURNING ` + settingsColumns
	row := r.storage.pool.QueryRow(ctx, query, patch.StoreName, patch.Currency, patch.PricePerPhoto,
		patch.ReceiptFooter, patch.AdminPIN, at, settingsKey)
	return scanSettings(row)
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

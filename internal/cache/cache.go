package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"go-cms-app/internal/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Cache stores serialized responses in a SQLite file with per-entry expiry.
type Cache struct {
	db  *sqlx.DB
	ttl time.Duration
}

// New opens the SQLite cache at cfg.FilePath and ensures the cache table exists.
func New(cfg config.CacheConfig) (*Cache, error) {
	db, err := sqlx.Connect("sqlite", cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite cache: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA journal_mode=WAL;")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode on sqlite cache: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS cache (
		key TEXT PRIMARY KEY,
		value BLOB,
		expires_at INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_expires_at ON cache (expires_at);
	`
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	// Entries left behind by a previous process are stale.
	if _, err = db.Exec(`DELETE FROM cache`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to clear sqlite cache: %w", err)
	}

	ttl := cfg.TTL()
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Get retrieves an item from the cache. It returns nil if the item is not found or is expired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	var item struct {
		Value     []byte `db:"value"`
		ExpiresAt int64  `db:"expires_at"`
	}
	err := c.db.GetContext(ctx, &item, `SELECT value, expires_at FROM cache WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item from cache: %w", err)
	}

	if time.Now().UnixNano() > item.ExpiresAt {
		_ = c.Delete(ctx, key)
		return nil, nil
	}

	return item.Value, nil
}

// Set stores value under key for the cache's configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	expiresAt := time.Now().Add(c.ttl).UnixNano()
	query := `INSERT OR REPLACE INTO cache (key, value, expires_at) VALUES (?, ?, ?)`
	if _, err := c.db.ExecContext(ctx, query, key, value, expiresAt); err != nil {
		return fmt.Errorf("failed to set item in cache: %w", err)
	}
	return nil
}

// Delete removes the given keys from the cache.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM cache WHERE key IN (?)`, keys)
	if err != nil {
		return fmt.Errorf("failed to build cache delete: %w", err)
	}
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete item from cache: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	historyout "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/port/out"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/clock"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/tx"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// SQLKVStore keeps keys in a kv table. It is also a tx.Manager: Get and Set called inside
// Within share one transaction.
type SQLKVStore struct {
	db      *sql.DB
	dialect Dialect
	clock   clock.Clock
}

var (
	_ historyout.KVStore = (*SQLKVStore)(nil)
	_ tx.Manager         = (*SQLKVStore)(nil)
)

type txKey struct{}

type execQueryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func NewSQLiteKVStore(dbPath string) (*SQLKVStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite allows one writer; a single pooled connection avoids SQLITE_BUSY inside Within.
	db.SetMaxOpenConns(1)
	return newSQLKVStore(db, DialectSQLite)
}

func NewPostgresKVStore(dsn string) (*SQLKVStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return newSQLKVStore(db, DialectPostgres)
}

func newSQLKVStore(db *sql.DB, dialect Dialect) (*SQLKVStore, error) {
	store := &SQLKVStore{db: db, dialect: dialect, clock: clock.SystemClock{}}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLKVStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

func (s *SQLKVStore) Close() error {
	return s.db.Close()
}

func (s *SQLKVStore) Within(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(context.WithValue(ctx, txKey{}, sqlTx)); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *SQLKVStore) conn(ctx context.Context) execQueryer {
	if sqlTx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return sqlTx
	}
	return s.db
}

func (s *SQLKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.conn(ctx).QueryRowContext(ctx, s.rebind(`SELECT value FROM kv WHERE key = ?`), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLKVStore) Set(ctx context.Context, key, value string) error {
	const stmt = `
INSERT INTO kv (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	_, err := s.conn(ctx).ExecContext(ctx, s.rebind(stmt), key, value, s.clock.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// rebind turns ? placeholders into $n for postgres.
func (s *SQLKVStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

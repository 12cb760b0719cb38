package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// timestampResolution matches DATETIME(6).
const timestampResolution = time.Microsecond

// Store is the handle every request shares. It owns the connection pool and
// nothing else.
type Store struct {
	db     *sqlx.DB
	driver string
	now    func() time.Time
}

// Open connects to driver/dsn. MySQL DSNs are forced to parse times; SQLite
// connections get foreign keys and a single connection.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		cfg.Loc = time.UTC
		dsn = cfg.FormatDSN()
	case DriverSQLite:
		if !strings.Contains(dsn, "foreign_keys") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "_pragma=foreign_keys(1)"
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return New(conn, driver), nil
}

// New wraps an existing connection.
func New(conn *sqlx.DB, driver string) *Store {
	return &Store{db: conn, driver: driver, now: defaultNow}
}

func defaultNow() time.Time {
	return time.Now().UTC().Truncate(timestampResolution)
}

// SetClock replaces the time source used for created/updated timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the schema if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := sqliteSchema
	if s.driver == DriverMySQL {
		stmts = mysqlSchema
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Reset deletes every record. Children go before parents so the self
// reference on users never dangles.
func (s *Store) Reset(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		stmts := []string{
			"DELETE FROM notes",
			"DELETE FROM folders",
			"DELETE FROM users WHERE parent_id IS NOT NULL",
			"DELETE FROM users",
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func get(ctx context.Context, q sqlx.QueryerContext, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err := sqlx.GetContext(ctx, q, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func selectAll(ctx context.Context, q sqlx.QueryerContext, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlx.SelectContext(ctx, q, dest, query, args...)
}

func exec(ctx context.Context, e sqlx.ExecerContext, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return nil, err
	}
	return res, nil
}

func isDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var liteErr *msqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

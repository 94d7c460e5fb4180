package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"authors-api/internal/storage"
)

// driverName is go-sqlite3 with casefold(text) registered on every
// connection. The built-in LIKE and NOCASE fold ASCII only.
const driverName = "sqlite3_casefold"

//go:embed migrations/*.sql
var migrations embed.FS

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("casefold", casefold, true)
		},
	})
}

func casefold(s string) string {
	return strings.ToLower(s)
}

type Storage struct {
	db *sqlx.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", storagePath)

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func migrateUp(db *sqlx.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// uniqueViolation reports whether err is a unique constraint failure and,
// if so, the "table.column" it failed on.
func uniqueViolation(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return "", false
	}

	_, column, _ := strings.Cut(sqliteErr.Error(), "UNIQUE constraint failed: ")

	return column, true
}

func mapUserConflict(err error) error {
	column, ok := uniqueViolation(err)
	if !ok {
		return err
	}

	switch {
	case strings.Contains(column, "users.email"):
		return storage.ErrEmailExists
	case strings.Contains(column, "users.username"):
		return storage.ErrUsernameExists
	}

	return err
}

func now() time.Time {
	return time.Now().UTC()
}

// likePattern builds a substring LIKE pattern, escaping the wildcards in s.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// containsFold matches rows whose column contains s, ignoring case.
func containsFold(column, s string) sq.Sqlizer {
	return sq.Expr(`casefold(`+column+`) LIKE ? ESCAPE '\'`, likePattern(casefold(s)))
}

package entry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store persists entries in a SQL database through GORM
type Store struct {
	db *gorm.DB
}

// NewMySQLStore opens a store on a MySQL database
func NewMySQLStore(dsn string) (*Store, error) {
	return open(mysql.Open(dsn), &gorm.Config{})
}

// NewSQLiteStore opens a store on a SQLite file, creating its directory when
// needed. An empty path opens a private in-memory database.
func NewSQLiteStore(path string) (*Store, error) {
	dsn := "file::memory:"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	store, err := open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return nil, err
	}

	// A single connection keeps an in-memory database alive and serializes
	// SQLite writers
	if sqlDB, err := store.db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	return store, nil
}

func open(dialector gorm.Dialector, config *gorm.Config) (*Store, error) {
	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// migrate creates or updates the required database tables
func (s *Store) migrate() error {
	return s.db.AutoMigrate(&EntryModel{})
}

// CreateEntry appends a new entry, assigning its id and timestamp
func (s *Store) CreateEntry(ctx context.Context, in entry.NewEntry) (*entry.Entry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	model := &EntryModel{
		Question:    in.Question,
		Answer:      in.Answer,
		ChainID:     in.ChainID,
		BlockHeight: in.BlockHeight,
		CreatedAt:   now(),
	}
	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return model.toEntry(), nil
}

// GetEntry reads an entry by id
func (s *Store) GetEntry(ctx context.Context, id int64) (*entry.Entry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("entry %d: %w", id, entry.ErrNotFound)
	}

	var model EntryModel
	if err := s.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("entry %d: %w", id, entry.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get entry %d: %w", id, err)
	}

	return model.toEntry(), nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}

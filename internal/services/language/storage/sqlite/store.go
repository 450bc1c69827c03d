// Package sqlite provides a SQLite-backed language storage implementation.
package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	"github.com/itsHabib/grpc-translate-service/internal/platform/storage/sqlitemigrate"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/storage"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists language service state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// textHash keys cached translations by content so arbitrarily long source
// text never lands in an index.
func textHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Open opens a SQLite language store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutTranslation upserts one cached translation record.
func (s *Store) PutTranslation(ctx context.Context, record storage.TranslationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if record.SourceText == "" {
		return fmt.Errorf("source text is required")
	}
	if record.TranslatedText == "" {
		return fmt.Errorf("translated text is required")
	}
	createdAt := record.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO translations (
		   source_code,
		   target_code,
		   text_hash,
		   source_text,
		   translated_text,
		   created_at
		 ) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (source_code, target_code, text_hash) DO UPDATE SET
		   translated_text = excluded.translated_text,
		   created_at = excluded.created_at`,
		int32(record.Source),
		int32(record.Target),
		textHash(record.SourceText),
		record.SourceText,
		record.TranslatedText,
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put translation: %w", err)
	}
	return nil
}

// GetTranslation returns one cached translation for a language pair and
// source text.
func (s *Store) GetTranslation(ctx context.Context, source, target languagepb.LanguageCode, sourceText string) (storage.TranslationRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.TranslationRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.TranslationRecord{}, fmt.Errorf("storage is not configured")
	}
	if sourceText == "" {
		return storage.TranslationRecord{}, fmt.Errorf("source text is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT source_code, target_code, source_text, translated_text, created_at
		   FROM translations
		  WHERE source_code = ? AND target_code = ? AND text_hash = ?`,
		int32(source),
		int32(target),
		textHash(sourceText),
	)

	var record storage.TranslationRecord
	var sourceCode int32
	var targetCode int32
	var createdAt int64
	err := row.Scan(
		&sourceCode,
		&targetCode,
		&record.SourceText,
		&record.TranslatedText,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.TranslationRecord{}, storage.ErrNotFound
		}
		return storage.TranslationRecord{}, fmt.Errorf("get translation: %w", err)
	}

	record.Source = languagepb.LanguageCode(sourceCode)
	record.Target = languagepb.LanguageCode(targetCode)
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

var _ storage.TranslationStore = (*Store)(nil)

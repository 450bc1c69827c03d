// Package storage defines persistence contracts for language service state.
package storage

import (
	"context"
	"errors"
	"time"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
)

// ErrNotFound indicates a requested translation record is missing.
var ErrNotFound = errors.New("record not found")

// TranslationRecord stores one cached translation. Source may be UNKNOWN
// when the backend detected the source language.
type TranslationRecord struct {
	Source         languagepb.LanguageCode
	Target         languagepb.LanguageCode
	SourceText     string
	TranslatedText string
	CreatedAt      time.Time
}

// TranslationStore persists translation results between requests.
type TranslationStore interface {
	PutTranslation(ctx context.Context, record TranslationRecord) error
	GetTranslation(ctx context.Context, source, target languagepb.LanguageCode, sourceText string) (TranslationRecord, error)
}

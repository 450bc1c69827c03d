// Package translation defines the translation port and its backends.
package translation

import (
	"context"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
)

// Request describes one translation. An UNKNOWN source asks the backend to
// detect the input language.
type Request struct {
	Text   string
	Source languagepb.LanguageCode
	Target languagepb.LanguageCode
}

// Translator converts text between supported languages. Implementations
// classify failures with the fault package so the API layer can report them
// in-band.
type Translator interface {
	Translate(ctx context.Context, req Request) (string, error)
}

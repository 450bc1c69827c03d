// Package speech turns text into spoken audio. Adapters return the full
// encoded clip as MP3 bytes so callers can forward it without knowing
// which backend produced it.
package speech

import (
	"context"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
)

// Request describes a single synthesis call. Target selects the voice
// language and must be a known code.
type Request struct {
	Text   string
	Target languagepb.LanguageCode
}

// Synthesizer produces MP3 audio for a request.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

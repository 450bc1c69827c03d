package language

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/fault"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/langcode"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/speech"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/storage"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/translation"
)

// Service exposes the language gRPC operations.
//
// Domain failures travel in-band through the response error_type field so
// existing clients keep decoding the frozen wire contract. RPC status
// errors are reserved for malformed calls, server misconfiguration, and
// cancellation.
type Service struct {
	languagepb.UnimplementedLanguageServer
	translator translation.Translator
	synth      speech.Synthesizer
	store      storage.TranslationStore
	clock      func() time.Time
}

// NewService creates a language service over translation and synthesis
// backends. The store is optional and caches translations when present.
func NewService(translator translation.Translator, synth speech.Synthesizer, store storage.TranslationStore) *Service {
	return &Service{
		translator: translator,
		synth:      synth,
		store:      store,
		clock:      time.Now,
	}
}

// Translate translates request text into the target language. An UNKNOWN
// source asks the backend to detect the source language.
func (s *Service) Translate(ctx context.Context, in *languagepb.LanguageRequest) (*languagepb.TranslateResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "language request is required")
	}
	if s == nil || s.translator == nil {
		return nil, status.Error(codes.Internal, "translator is not configured")
	}

	text := strings.TrimSpace(in.GetText())
	source := in.GetSourceLanguageCode()
	target := in.GetTargetLanguageCode()
	if text == "" {
		return &languagepb.TranslateResponse{ErrorType: languagepb.ErrorType_User}, nil
	}
	if source != languagepb.LanguageCode_UNKNOWN && !langcode.Known(source) {
		return &languagepb.TranslateResponse{ErrorType: languagepb.ErrorType_User}, nil
	}
	if !langcode.Known(target) {
		return &languagepb.TranslateResponse{ErrorType: languagepb.ErrorType_User}, nil
	}

	translated, err := s.translateText(ctx, source, target, text)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, status.FromContextError(ctxErr).Err()
		}
		return &languagepb.TranslateResponse{ErrorType: errorTypeFor("translate text", err)}, nil
	}
	return &languagepb.TranslateResponse{TranslatedText: translated}, nil
}

// Synthesize translates request text and voices it in the target
// language, returning the clip as MP3 bytes.
func (s *Service) Synthesize(ctx context.Context, in *languagepb.LanguageRequest) (*languagepb.SynthesizeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "language request is required")
	}
	if s == nil || s.synth == nil {
		return nil, status.Error(codes.Internal, "synthesizer is not configured")
	}

	text := strings.TrimSpace(in.GetText())
	source := in.GetSourceLanguageCode()
	target := in.GetTargetLanguageCode()
	if text == "" || !langcode.Known(source) || !langcode.Known(target) {
		return &languagepb.SynthesizeResponse{ErrorType: languagepb.ErrorType_User}, nil
	}

	// Same-language requests voice the text as-is.
	speechText := text
	if source != target {
		if s.translator == nil {
			return nil, status.Error(codes.Internal, "translator is not configured")
		}
		translated, err := s.translateText(ctx, source, target, text)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, status.FromContextError(ctxErr).Err()
			}
			return &languagepb.SynthesizeResponse{ErrorType: errorTypeFor("translate text", err)}, nil
		}
		speechText = translated
	}

	audio, err := s.synth.Synthesize(ctx, speech.Request{Text: speechText, Target: target})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, status.FromContextError(ctxErr).Err()
		}
		return &languagepb.SynthesizeResponse{ErrorType: errorTypeFor("synthesize speech", err)}, nil
	}
	return &languagepb.SynthesizeResponse{AudioBytes: audio}, nil
}

// translateText resolves a translation through the cache when a store is
// configured, falling back to the translator backend. Cache failures are
// logged and never fail the request.
func (s *Service) translateText(ctx context.Context, source, target languagepb.LanguageCode, text string) (string, error) {
	if s.store != nil {
		record, err := s.store.GetTranslation(ctx, source, target, text)
		if err == nil {
			return record.TranslatedText, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("translation cache read: %v", err)
		}
	}

	translated, err := s.translator.Translate(ctx, translation.Request{
		Text:   text,
		Source: source,
		Target: target,
	})
	if err != nil {
		return "", err
	}

	if s.store != nil {
		now := time.Now().UTC()
		if s.clock != nil {
			now = s.clock().UTC()
		}
		if err := s.store.PutTranslation(ctx, storage.TranslationRecord{
			Source:         source,
			Target:         target,
			SourceText:     text,
			TranslatedText: translated,
			CreatedAt:      now,
		}); err != nil {
			log.Printf("translation cache write: %v", err)
		}
	}
	return translated, nil
}

// errorTypeFor logs internal faults and returns the wire error type for a
// failed operation. User faults are the caller's to fix and stay quiet.
func errorTypeFor(op string, err error) languagepb.ErrorType {
	wire := fault.WireType(err)
	if wire == languagepb.ErrorType_Internal {
		log.Printf("%s: %v", op, err)
	}
	return wire
}

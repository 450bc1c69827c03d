package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/itsHabib/grpc-translate-service/internal/platform/timeouts"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/fault"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/langcode"
)

const (
	defaultElevenLabsBaseURL = "https://api.elevenlabs.io"

	// elevenLabsModelID covers every language the service translates
	// between, so one voice serves all targets.
	elevenLabsModelID = "eleven_multilingual_v2"
)

// ElevenLabsConfig configures the ElevenLabs synthesis adapter. APIKey
// and VoiceID are required.
type ElevenLabsConfig struct {
	APIKey     string
	VoiceID    string
	BaseURL    string
	HTTPClient *http.Client
}

// ElevenLabsSynthesizer synthesizes speech through the ElevenLabs
// text-to-speech HTTP API.
type ElevenLabsSynthesizer struct {
	cfg ElevenLabsConfig
}

var _ Synthesizer = (*ElevenLabsSynthesizer)(nil)

// NewElevenLabsSynthesizer creates an adapter over the ElevenLabs API.
func NewElevenLabsSynthesizer(cfg ElevenLabsConfig) (*ElevenLabsSynthesizer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("elevenlabs api key is required")
	}
	if strings.TrimSpace(cfg.VoiceID) == "" {
		return nil, errors.New("elevenlabs voice id is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultElevenLabsBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: timeouts.SpeechRequest}
	}
	return &ElevenLabsSynthesizer{cfg: cfg}, nil
}

// Synthesize implements Synthesizer.
func (s *ElevenLabsSynthesizer) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if s == nil || s.cfg.HTTPClient == nil {
		return nil, fault.Internal("elevenlabs client is not configured", nil)
	}
	if !langcode.Known(req.Target) {
		return nil, fault.Userf("target language %s is not supported", req.Target)
	}

	body, err := json.Marshal(map[string]any{
		"text":     req.Text,
		"model_id": elevenLabsModelID,
	})
	if err != nil {
		return nil, fault.Internal("marshal synthesis request", err)
	}

	endpoint := strings.TrimRight(s.cfg.BaseURL, "/") + "/v1/text-to-speech/" + url.PathEscape(s.cfg.VoiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fault.Internal("build synthesis request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("xi-api-key", s.cfg.APIKey)

	res, err := s.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fault.Internal("synthesis request failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		excerpt, readErr := io.ReadAll(io.LimitReader(res.Body, 4096))
		if readErr != nil {
			return nil, fault.Internal("read synthesis error body", readErr)
		}
		msg := fmt.Sprintf("synthesis request status %d: %s", res.StatusCode, strings.TrimSpace(string(excerpt)))
		if res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusUnprocessableEntity {
			return nil, fault.User(msg)
		}
		return nil, fault.Internal(msg, nil)
	}

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fault.Internal("read synthesis audio", err)
	}
	return audio, nil
}

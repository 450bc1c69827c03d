package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/fault"
)

func newElevenLabsServer(t *testing.T, handler http.HandlerFunc) *ElevenLabsSynthesizer {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	s, err := NewElevenLabsSynthesizer(ElevenLabsConfig{
		APIKey:     "test-key",
		VoiceID:    "voice-1",
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatalf("NewElevenLabsSynthesizer() error = %v", err)
	}
	return s
}

func TestNewElevenLabsSynthesizerValidation(t *testing.T) {
	if _, err := NewElevenLabsSynthesizer(ElevenLabsConfig{VoiceID: "voice-1"}); err == nil {
		t.Error("NewElevenLabsSynthesizer() error = nil, want error for missing api key")
	}
	if _, err := NewElevenLabsSynthesizer(ElevenLabsConfig{APIKey: "test-key"}); err == nil {
		t.Error("NewElevenLabsSynthesizer() error = nil, want error for missing voice id")
	}
}

func TestElevenLabsSynthesizerSynthesize(t *testing.T) {
	s := newElevenLabsServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want %q", r.Method, http.MethodPost)
		}
		if r.URL.Path != "/v1/text-to-speech/voice-1" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/v1/text-to-speech/voice-1")
		}
		if key := r.Header.Get("xi-api-key"); key != "test-key" {
			t.Errorf("xi-api-key = %q, want %q", key, "test-key")
		}
		if accept := r.Header.Get("Accept"); accept != "audio/mpeg" {
			t.Errorf("Accept = %q, want %q", accept, "audio/mpeg")
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want %q", ct, "application/json")
		}

		var body struct {
			Text    string `json:"text"`
			ModelID string `json:"model_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Text != "Hola" {
			t.Errorf("body.text = %q, want %q", body.Text, "Hola")
		}
		if body.ModelID != "eleven_multilingual_v2" {
			t.Errorf("body.model_id = %q, want %q", body.ModelID, "eleven_multilingual_v2")
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		if _, err := w.Write([]byte("mp3 bytes")); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	audio, err := s.Synthesize(context.Background(), Request{
		Text:   "Hola",
		Target: languagepb.LanguageCode_ES,
	})
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if !bytes.Equal(audio, []byte("mp3 bytes")) {
		t.Fatalf("Synthesize() = %q, want %q", audio, "mp3 bytes")
	}
}

func TestElevenLabsSynthesizerErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   fault.Kind
	}{
		{name: "bad request", status: http.StatusBadRequest, want: fault.KindUser},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: fault.KindUser},
		{name: "unauthorized", status: http.StatusUnauthorized, want: fault.KindInternal},
		{name: "server error", status: http.StatusInternalServerError, want: fault.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newElevenLabsServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if _, err := w.Write([]byte(`{"detail": "synthesis rejected"}`)); err != nil {
					t.Errorf("write response: %v", err)
				}
			})

			_, err := s.Synthesize(context.Background(), Request{
				Text:   "Hello",
				Target: languagepb.LanguageCode_EN,
			})
			if err == nil {
				t.Fatal("Synthesize() error = nil, want fault")
			}
			if kind := fault.KindOf(err); kind != tt.want {
				t.Fatalf("fault.KindOf(err) = %v, want %v", kind, tt.want)
			}
			if !strings.Contains(err.Error(), "synthesis rejected") {
				t.Errorf("error %q does not include the response excerpt", err)
			}
		})
	}
}

func TestElevenLabsSynthesizerRejectsUnknownTarget(t *testing.T) {
	s := newElevenLabsServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server was called for a rejected request")
	})

	_, err := s.Synthesize(context.Background(), Request{
		Text:   "Hello",
		Target: languagepb.LanguageCode(99),
	})
	if err == nil {
		t.Fatal("Synthesize() error = nil, want user fault")
	}
	if kind := fault.KindOf(err); kind != fault.KindUser {
		t.Fatalf("fault.KindOf(err) = %v, want %v", kind, fault.KindUser)
	}
}

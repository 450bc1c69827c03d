package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/fault"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func chatCompletionBody(content string) string {
	return `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1,
		"model": "gpt-4o-mini",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": ` + jsonString(content) + `}, "finish_reason": "stop"}
		]
	}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newChatServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OpenAITranslator) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tr, err := NewOpenAITranslator(OpenAIConfig{
		APIKey:     "test-key",
		BaseURL:    ts.URL + "/v1",
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatalf("NewOpenAITranslator() error = %v", err)
	}
	return ts, tr
}

func TestNewOpenAITranslatorRequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAITranslator(OpenAIConfig{}); err == nil {
		t.Fatal("NewOpenAITranslator() error = nil, want error for missing api key")
	}
}

func TestOpenAITranslatorTranslate(t *testing.T) {
	var got chatRequest
	_, tr := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/v1/chat/completions")
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want %q", auth, "Bearer test-key")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(chatCompletionBody("Bonjour"))); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	text, err := tr.Translate(context.Background(), Request{
		Text:   "Hello",
		Source: languagepb.LanguageCode_EN,
		Target: languagepb.LanguageCode_FR,
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if text != "Bonjour" {
		t.Fatalf("Translate() = %q, want %q", text, "Bonjour")
	}

	if got.Model != openai.GPT4oMini {
		t.Errorf("request model = %q, want %q", got.Model, openai.GPT4oMini)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(got.Messages))
	}
	if got.Messages[0].Role != "system" {
		t.Errorf("messages[0].role = %q, want %q", got.Messages[0].Role, "system")
	}
	if !strings.Contains(got.Messages[0].Content, "from English to French") {
		t.Errorf("system prompt %q does not name the language pair", got.Messages[0].Content)
	}
	if got.Messages[1].Content != "Hello" {
		t.Errorf("messages[1].content = %q, want %q", got.Messages[1].Content, "Hello")
	}
}

func TestOpenAITranslatorDetectPrompt(t *testing.T) {
	var got chatRequest
	_, tr := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(chatCompletionBody("Hallo"))); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	if _, err := tr.Translate(context.Background(), Request{
		Text:   "Hello",
		Source: languagepb.LanguageCode_UNKNOWN,
		Target: languagepb.LanguageCode_DE,
	}); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	prompt := got.Messages[0].Content
	if !strings.Contains(prompt, "to German") {
		t.Errorf("system prompt %q does not name the target language", prompt)
	}
	if strings.Contains(prompt, "from") {
		t.Errorf("system prompt %q names a source language for detect mode", prompt)
	}
}

func TestOpenAITranslatorErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   fault.Kind
	}{
		{name: "bad request", status: http.StatusBadRequest, want: fault.KindUser},
		{name: "server error", status: http.StatusInternalServerError, want: fault.KindInternal},
		{name: "rate limited", status: http.StatusTooManyRequests, want: fault.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, tr := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				if _, err := w.Write([]byte(`{"error": {"message": "nope", "type": "invalid_request_error"}}`)); err != nil {
					t.Errorf("write response: %v", err)
				}
			})

			_, err := tr.Translate(context.Background(), Request{
				Text:   "Hello",
				Source: languagepb.LanguageCode_EN,
				Target: languagepb.LanguageCode_FR,
			})
			if err == nil {
				t.Fatal("Translate() error = nil, want fault")
			}
			if kind := fault.KindOf(err); kind != tt.want {
				t.Fatalf("fault.KindOf(err) = %v, want %v", kind, tt.want)
			}
		})
	}
}

func TestOpenAITranslatorNoChoices(t *testing.T) {
	_, tr := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "gpt-4o-mini", "choices": []}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	})

	_, err := tr.Translate(context.Background(), Request{
		Text:   "Hello",
		Source: languagepb.LanguageCode_EN,
		Target: languagepb.LanguageCode_FR,
	})
	if err == nil {
		t.Fatal("Translate() error = nil, want internal fault")
	}
	if kind := fault.KindOf(err); kind != fault.KindInternal {
		t.Fatalf("fault.KindOf(err) = %v, want %v", kind, fault.KindInternal)
	}
}

func TestOpenAITranslatorRejectsUnknownTarget(t *testing.T) {
	_, tr := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server was called for a rejected request")
	})

	_, err := tr.Translate(context.Background(), Request{
		Text:   "Hello",
		Source: languagepb.LanguageCode_EN,
		Target: languagepb.LanguageCode_UNKNOWN,
	})
	if err == nil {
		t.Fatal("Translate() error = nil, want user fault")
	}
	if kind := fault.KindOf(err); kind != fault.KindUser {
		t.Fatalf("fault.KindOf(err) = %v, want %v", kind, fault.KindUser)
	}
}

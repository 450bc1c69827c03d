package translation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/fault"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/langcode"
)

// OpenAIConfig configures the OpenAI translation adapter.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// OpenAITranslator translates text with an OpenAI chat completion model.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

var _ Translator = (*OpenAITranslator)(nil)

// NewOpenAITranslator creates an adapter over the OpenAI chat API.
func NewOpenAITranslator(cfg OpenAIConfig) (*OpenAITranslator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = openai.GPT4oMini
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if strings.TrimSpace(cfg.BaseURL) != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}
	return &OpenAITranslator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

// Translate implements Translator.
func (t *OpenAITranslator) Translate(ctx context.Context, req Request) (string, error) {
	if t == nil || t.client == nil {
		return "", fault.Internal("openai client is not configured", nil)
	}
	if !langcode.Known(req.Target) {
		return "", fault.Userf("target language %s is not supported", req.Target)
	}
	if req.Source != languagepb.LanguageCode_UNKNOWN && !langcode.Known(req.Source) {
		return "", fault.Userf("source language %s is not supported", req.Source)
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: translationPrompt(req.Source, req.Target),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Text,
			},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fault.Internal("openai returned no choices", nil)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// translationPrompt instructs the model to return the bare translation so
// the response can be forwarded without post-processing.
func translationPrompt(source, target languagepb.LanguageCode) string {
	if source == languagepb.LanguageCode_UNKNOWN {
		return fmt.Sprintf(
			"Translate the user's text to %s. Reply with only the translation.",
			langcode.DisplayName(target),
		)
	}
	return fmt.Sprintf(
		"Translate the user's text from %s to %s. Reply with only the translation.",
		langcode.DisplayName(source), langcode.DisplayName(target),
	)
}

// classifyOpenAIError keeps the same partition as the AWS adapter: requests
// the caller can change are user faults, everything else is internal.
func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusBadRequest {
		return fault.UserWrap("translate text", err)
	}
	return fault.Internal("translate text", err)
}

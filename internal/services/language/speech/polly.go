package speech

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/smithy-go"

	"github.com/itsHabib/grpc-translate-service/internal/services/language/fault"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/langcode"
)

// PollyAPI is the slice of the Amazon Polly client the synthesizer uses.
type PollyAPI interface {
	DescribeVoices(ctx context.Context, in *polly.DescribeVoicesInput, opts ...func(*polly.Options)) (*polly.DescribeVoicesOutput, error)
	SynthesizeSpeech(ctx context.Context, in *polly.SynthesizeSpeechInput, opts ...func(*polly.Options)) (*polly.SynthesizeSpeechOutput, error)
}

// PollySynthesizer synthesizes speech with Amazon Polly. Voice lookups
// are cached per language code for the life of the synthesizer.
type PollySynthesizer struct {
	client PollyAPI

	// mu serializes voice lookups so each language is described once.
	mu     sync.Mutex
	voices map[string]types.VoiceId
}

var _ Synthesizer = (*PollySynthesizer)(nil)

// NewPollySynthesizer creates a synthesizer over an existing Polly client.
func NewPollySynthesizer(client PollyAPI) *PollySynthesizer {
	return &PollySynthesizer{
		client: client,
		voices: make(map[string]types.VoiceId),
	}
}

// NewPollySynthesizerFromConfig creates a synthesizer from a resolved
// AWS config.
func NewPollySynthesizerFromConfig(cfg aws.Config) *PollySynthesizer {
	return NewPollySynthesizer(polly.NewFromConfig(cfg))
}

// Synthesize implements Synthesizer.
func (s *PollySynthesizer) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if s == nil || s.client == nil {
		return nil, fault.Internal("polly client is not configured", nil)
	}
	code, ok := langcode.SpeechCode(req.Target)
	if !ok {
		return nil, fault.Userf("target language %s is not supported", req.Target)
	}

	voiceID, err := s.voiceFor(ctx, code)
	if err != nil {
		return nil, err
	}

	out, err := s.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(req.Text),
		VoiceId:      voiceID,
		OutputFormat: types.OutputFormatMp3,
	})
	if err != nil {
		return nil, classifySynthesizeError(err)
	}
	if out.AudioStream == nil {
		return nil, fault.Internal("polly returned no audio stream", nil)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fault.Internal("read polly audio stream", err)
	}
	return audio, nil
}

// voiceFor resolves the first voice Polly offers for a language code.
func (s *PollySynthesizer) voiceFor(ctx context.Context, code string) (types.VoiceId, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.voices[code]; ok {
		return id, nil
	}

	out, err := s.client.DescribeVoices(ctx, &polly.DescribeVoicesInput{
		LanguageCode: types.LanguageCode(code),
	})
	if err != nil {
		return "", classifyDescribeVoicesError(err)
	}
	if len(out.Voices) == 0 {
		return "", fault.Userf("no voice available for language code %s", code)
	}

	id := out.Voices[0].Id
	s.voices[code] = id
	return id, nil
}

func classifyDescribeVoicesError(err error) error {
	var invalidToken *types.InvalidNextTokenException
	if errors.As(err, &invalidToken) {
		return fault.UserWrap("describe voices", err)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationException" {
		return fault.UserWrap("describe voices", err)
	}
	return fault.Internal("describe voices", err)
}

func classifySynthesizeError(err error) error {
	var failure *types.ServiceFailureException
	if errors.As(err, &failure) {
		return fault.Internal("synthesize speech", err)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fault.UserWrap("synthesize speech", err)
	}
	return fault.Internal("synthesize speech", err)
}

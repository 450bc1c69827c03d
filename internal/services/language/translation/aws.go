package translation

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/aws/aws-sdk-go-v2/service/translate/types"
	"github.com/aws/smithy-go"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/fault"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/langcode"
)

// autoSourceCode asks AWS Translate to detect the source language.
const autoSourceCode = "auto"

// AWSTextClient is the subset of the AWS Translate API the adapter uses.
type AWSTextClient interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

// AWSTranslator translates text with the AWS Translate service.
type AWSTranslator struct {
	client AWSTextClient
}

var _ Translator = (*AWSTranslator)(nil)

// NewAWSTranslator creates an adapter over an AWS Translate client.
func NewAWSTranslator(client AWSTextClient) *AWSTranslator {
	return &AWSTranslator{client: client}
}

// NewAWSTranslatorFromConfig creates an adapter from resolved AWS config.
func NewAWSTranslatorFromConfig(cfg aws.Config) *AWSTranslator {
	return NewAWSTranslator(translate.NewFromConfig(cfg))
}

// Translate implements Translator.
func (t *AWSTranslator) Translate(ctx context.Context, req Request) (string, error) {
	if t == nil || t.client == nil {
		return "", fault.Internal("aws translate client is not configured", nil)
	}

	source := autoSourceCode
	if req.Source != languagepb.LanguageCode_UNKNOWN {
		code, ok := langcode.TranslateCode(req.Source)
		if !ok {
			return "", fault.Userf("source language %s is not supported", req.Source)
		}
		source = code
	}
	target, ok := langcode.TranslateCode(req.Target)
	if !ok {
		return "", fault.Userf("target language %s is not supported", req.Target)
	}

	out, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(req.Text),
		SourceLanguageCode: aws.String(source),
		TargetLanguageCode: aws.String(target),
	})
	if err != nil {
		return "", classifyTranslateError(err)
	}
	return aws.ToString(out.TranslatedText), nil
}

// classifyTranslateError partitions AWS Translate failures. Service-side
// exceptions and transport failures are internal; every other API error is
// something the caller can change, such as an unsupported language pair,
// text over the size limit, or low detection confidence.
func classifyTranslateError(err error) error {
	var internalErr *types.InternalServerException
	var unavailableErr *types.ServiceUnavailableException
	if errors.As(err, &internalErr) || errors.As(err, &unavailableErr) {
		return fault.Internal("translate text", err)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fault.UserWrap("translate text", err)
	}
	return fault.Internal("translate text", err)
}

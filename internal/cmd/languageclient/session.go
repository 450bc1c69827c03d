package languageclient

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/langcode"
)

// stage tracks where the user is in the conversation: picking an
// operation, picking languages, or entering text.
type stage int

const (
	stageOperation stage = iota
	stageSource
	stageTarget
	stageText
)

const (
	opTranslate  = "translate"
	opSynthesize = "synthesize"
)

var operations = []string{"Translate", "Synthesize"}

// Session drives one interactive conversation over a language client.
// Input and output are injected so tests can script the exchange.
type Session struct {
	client languagepb.LanguageClient
	in     *bufio.Scanner
	out    io.Writer
	outDir string

	synthCount int
}

// NewSession creates a session reading prompts from in and writing to out.
// Synthesized audio files land in outDir.
func NewSession(client languagepb.LanguageClient, in io.Reader, out io.Writer, outDir string) *Session {
	if strings.TrimSpace(outDir) == "" {
		outDir = "."
	}
	return &Session{
		client: client,
		in:     bufio.NewScanner(in),
		out:    out,
		outDir: outDir,
	}
}

// Run loops through the conversation until the user submits an empty
// line, input ends, or the context is cancelled. Invalid input repeats
// the current prompt.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Hello! Welcome to the translation service. Press ENTER to exit...")

	var (
		current   = stageOperation
		operation string
		source    languagepb.LanguageCode
		target    languagepb.LanguageCode
	)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var input string
		var ok bool
		switch current {
		case stageOperation:
			s.printMenu("\nWhat would you like to do?", operations)
			input, ok = s.readLine()
			switch input {
			case "1":
				operation = opTranslate
				current = stageSource
			case "2":
				operation = opSynthesize
				current = stageSource
			}
		case stageSource:
			s.printMenu("\nWhat is the source language?", languageNames())
			input, ok = s.readLine()
			if code, found := menuLanguage(input); found {
				source = code
				current = stageTarget
			}
		case stageTarget:
			s.printMenu("\nWhat is the target language?", languageNames())
			input, ok = s.readLine()
			if code, found := menuLanguage(input); found {
				target = code
				current = stageText
			}
		case stageText:
			fmt.Fprintln(s.out, "Enter the text to translate or synthesize")
			input, ok = s.readLine()
			if input != "" {
				done := false
				if operation == opTranslate {
					done = s.translate(ctx, source, target, input)
				} else {
					done = s.synthesize(ctx, source, target, input)
				}
				if done {
					current = stageOperation
				}
			}
		}

		if !ok || input == "" {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}
	}
}

// translate performs one Translate call and reports the outcome. It
// returns true when the conversation should move back to the operation
// prompt.
func (s *Session) translate(ctx context.Context, source, target languagepb.LanguageCode, text string) bool {
	fmt.Fprintf(s.out, "Translating: %s\n", text)
	resp, err := s.client.Translate(ctx, &languagepb.LanguageRequest{
		Text:               text,
		SourceLanguageCode: source,
		TargetLanguageCode: target,
	})
	if err != nil {
		fmt.Fprintf(s.out, "Not able to translate text: %v\n", err)
		return false
	}
	if et := resp.GetErrorType(); et != languagepb.ErrorType_None {
		fmt.Fprintf(s.out, "Not able to translate text: %s\n", errorTypeMessage(et))
		return false
	}
	fmt.Fprintf(s.out, "Translated Text: %s\n\n", resp.GetTranslatedText())
	return true
}

// synthesize performs one Synthesize call and writes the audio clip to a
// numbered file in the output directory.
func (s *Session) synthesize(ctx context.Context, source, target languagepb.LanguageCode, text string) bool {
	fmt.Fprintf(s.out, "Synthesizing: %s\n", text)
	resp, err := s.client.Synthesize(ctx, &languagepb.LanguageRequest{
		Text:               text,
		SourceLanguageCode: source,
		TargetLanguageCode: target,
	})
	if err != nil {
		fmt.Fprintf(s.out, "Not able to synthesize text: %v\n", err)
		return false
	}
	if et := resp.GetErrorType(); et != languagepb.ErrorType_None {
		fmt.Fprintf(s.out, "Not able to synthesize text: %s\n", errorTypeMessage(et))
		return false
	}

	name := fmt.Sprintf("syn-%d.mp3", s.synthCount+1)
	if err := os.WriteFile(filepath.Join(s.outDir, name), resp.GetAudioBytes(), 0o644); err != nil {
		fmt.Fprintf(s.out, "Not able to write audio file: %v\n", err)
		return false
	}
	s.synthCount++
	fmt.Fprintf(s.out, "Synthesized Text, audio bytes written to %s\n\n", name)
	return true
}

func (s *Session) printMenu(header string, items []string) {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for i, item := range items {
		fmt.Fprintf(&b, "%d %s\n", i+1, item)
	}
	fmt.Fprint(s.out, b.String())
}

// readLine returns the next trimmed input line. ok is false when input
// is exhausted, which callers treat like an empty line.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func languageNames() []string {
	order := langcode.MenuOrder()
	names := make([]string, 0, len(order))
	for _, code := range order {
		names = append(names, langcode.DisplayName(code))
	}
	return names
}

// menuLanguage maps a 1-based menu selection to its language code.
func menuLanguage(input string) (languagepb.LanguageCode, bool) {
	order := langcode.MenuOrder()
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(order) {
		return languagepb.LanguageCode_UNKNOWN, false
	}
	return order[n-1], true
}

func errorTypeMessage(et languagepb.ErrorType) string {
	switch et {
	case languagepb.ErrorType_User:
		return "the request was rejected, adjust the languages or text and try again"
	case languagepb.ErrorType_Internal:
		return "the service hit an internal error, try again later"
	default:
		return fmt.Sprintf("unexpected error type %d", et)
	}
}

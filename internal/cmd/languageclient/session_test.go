package languageclient

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
)

type fakeLanguageClient struct {
	translateReqs []*languagepb.LanguageRequest
	translateResp *languagepb.TranslateResponse
	translateErr  error

	synthesizeReqs []*languagepb.LanguageRequest
	synthesizeResp *languagepb.SynthesizeResponse
	synthesizeErr  error
}

func (f *fakeLanguageClient) Translate(_ context.Context, in *languagepb.LanguageRequest, _ ...grpc.CallOption) (*languagepb.TranslateResponse, error) {
	f.translateReqs = append(f.translateReqs, in)
	if f.translateErr != nil {
		return nil, f.translateErr
	}
	return f.translateResp, nil
}

func (f *fakeLanguageClient) Synthesize(_ context.Context, in *languagepb.LanguageRequest, _ ...grpc.CallOption) (*languagepb.SynthesizeResponse, error) {
	f.synthesizeReqs = append(f.synthesizeReqs, in)
	if f.synthesizeErr != nil {
		return nil, f.synthesizeErr
	}
	return f.synthesizeResp, nil
}

func runScript(t *testing.T, client *fakeLanguageClient, outDir, script string) string {
	t.Helper()
	var out bytes.Buffer
	session := NewSession(client, strings.NewReader(script), &out, outDir)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("session run: %v", err)
	}
	return out.String()
}

func TestSession_TranslateFlow(t *testing.T) {
	client := &fakeLanguageClient{
		translateResp: &languagepb.TranslateResponse{TranslatedText: "Hello"},
	}

	output := runScript(t, client, t.TempDir(), "1\n3\n2\nBonjour\n\n")

	if len(client.translateReqs) != 1 {
		t.Fatalf("translate calls = %d, want 1", len(client.translateReqs))
	}
	req := client.translateReqs[0]
	if req.GetText() != "Bonjour" {
		t.Errorf("text = %q, want %q", req.GetText(), "Bonjour")
	}
	if req.GetSourceLanguageCode() != languagepb.LanguageCode_FR {
		t.Errorf("source = %v, want %v", req.GetSourceLanguageCode(), languagepb.LanguageCode_FR)
	}
	if req.GetTargetLanguageCode() != languagepb.LanguageCode_EN {
		t.Errorf("target = %v, want %v", req.GetTargetLanguageCode(), languagepb.LanguageCode_EN)
	}

	if !strings.Contains(output, "1 Translate\n2 Synthesize") {
		t.Errorf("output missing operation menu:\n%s", output)
	}
	if !strings.Contains(output, "1 Mandarin\n2 English\n3 French\n4 German\n5 Spanish\n6 Portuguese") {
		t.Errorf("output missing language menu:\n%s", output)
	}
	if !strings.Contains(output, "Translated Text: Hello") {
		t.Errorf("output missing translation:\n%s", output)
	}
	if !strings.HasSuffix(output, "Bye!\n") {
		t.Errorf("output does not end with Bye!:\n%s", output)
	}
}

func TestSession_SynthesizeWritesNumberedFiles(t *testing.T) {
	outDir := t.TempDir()
	client := &fakeLanguageClient{
		synthesizeResp: &languagepb.SynthesizeResponse{AudioBytes: []byte("mp3 bytes")},
	}

	output := runScript(t, client, outDir, "2\n2\n4\nHello\n2\n2\n4\nHi\n\n")

	if len(client.synthesizeReqs) != 2 {
		t.Fatalf("synthesize calls = %d, want 2", len(client.synthesizeReqs))
	}
	if got := client.synthesizeReqs[0].GetSourceLanguageCode(); got != languagepb.LanguageCode_EN {
		t.Errorf("source = %v, want %v", got, languagepb.LanguageCode_EN)
	}
	if got := client.synthesizeReqs[0].GetTargetLanguageCode(); got != languagepb.LanguageCode_DE {
		t.Errorf("target = %v, want %v", got, languagepb.LanguageCode_DE)
	}

	for _, name := range []string{"syn-1.mp3", "syn-2.mp3"} {
		audio, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.Equal(audio, []byte("mp3 bytes")) {
			t.Errorf("%s = %q, want %q", name, audio, "mp3 bytes")
		}
	}
	if !strings.Contains(output, "audio bytes written to syn-1.mp3") {
		t.Errorf("output missing first audio file:\n%s", output)
	}
	if !strings.Contains(output, "audio bytes written to syn-2.mp3") {
		t.Errorf("output missing second audio file:\n%s", output)
	}
}

func TestSession_InvalidInputRepeatsPrompt(t *testing.T) {
	client := &fakeLanguageClient{
		translateResp: &languagepb.TranslateResponse{TranslatedText: "Hello"},
	}

	output := runScript(t, client, t.TempDir(), "9\n1\n7\n3\n2\nBonjour\n\n")

	if got := strings.Count(output, "What would you like to do?"); got != 3 {
		t.Errorf("operation prompts = %d, want 3", got)
	}
	if got := strings.Count(output, "What is the source language?"); got != 2 {
		t.Errorf("source prompts = %d, want 2", got)
	}
	if len(client.translateReqs) != 1 {
		t.Fatalf("translate calls = %d, want 1", len(client.translateReqs))
	}
}

func TestSession_InBandErrorKeepsTextStage(t *testing.T) {
	client := &fakeLanguageClient{
		translateResp: &languagepb.TranslateResponse{ErrorType: languagepb.ErrorType_User},
	}

	output := runScript(t, client, t.TempDir(), "1\n2\n3\nHello\n\n")

	if !strings.Contains(output, "Not able to translate text") {
		t.Errorf("output missing error message:\n%s", output)
	}
	if got := strings.Count(output, "Enter the text to translate or synthesize"); got != 2 {
		t.Errorf("text prompts = %d, want 2", got)
	}
}

func TestSession_RPCErrorPrintsMessage(t *testing.T) {
	outDir := t.TempDir()
	client := &fakeLanguageClient{
		synthesizeErr: status.Error(codes.Unavailable, "server down"),
	}

	output := runScript(t, client, outDir, "2\n1\n2\n你好\n\n")

	if !strings.Contains(output, "Not able to synthesize text") {
		t.Errorf("output missing error message:\n%s", output)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("unexpected audio files: %v", entries)
	}
}

func TestSession_EmptyFirstInputExits(t *testing.T) {
	client := &fakeLanguageClient{}

	output := runScript(t, client, t.TempDir(), "\n")

	if !strings.HasSuffix(output, "Bye!\n") {
		t.Errorf("output does not end with Bye!:\n%s", output)
	}
	if len(client.translateReqs) != 0 || len(client.synthesizeReqs) != 0 {
		t.Fatal("client was called before any operation was chosen")
	}
}

func TestSession_EOFExits(t *testing.T) {
	client := &fakeLanguageClient{}

	output := runScript(t, client, t.TempDir(), "1")

	if !strings.HasSuffix(output, "Bye!\n") {
		t.Errorf("output does not end with Bye!:\n%s", output)
	}
}

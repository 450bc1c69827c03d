// Package server wires the language runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	"github.com/itsHabib/grpc-translate-service/internal/platform/config"
	languageservice "github.com/itsHabib/grpc-translate-service/internal/services/language/api/grpc/language"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/speech"
	languagesqlite "github.com/itsHabib/grpc-translate-service/internal/services/language/storage/sqlite"
	"github.com/itsHabib/grpc-translate-service/internal/services/language/translation"
)

const (
	backendAWS        = "aws"
	backendOpenAI     = "openai"
	backendElevenLabs = "elevenlabs"
)

// serverEnv holds env-parsed configuration for the language server.
type serverEnv struct {
	DBPath      string `env:"TRANSLATE_SERVICE_LANGUAGE_DB_PATH"`
	Translator  string `env:"TRANSLATE_SERVICE_TRANSLATOR" envDefault:"aws"`
	Synthesizer string `env:"TRANSLATE_SERVICE_SYNTHESIZER" envDefault:"aws"`

	OpenAIAPIKey string `env:"TRANSLATE_SERVICE_OPENAI_API_KEY"`
	OpenAIModel  string `env:"TRANSLATE_SERVICE_OPENAI_MODEL"`

	ElevenLabsAPIKey  string `env:"TRANSLATE_SERVICE_ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string `env:"TRANSLATE_SERVICE_ELEVENLABS_VOICE_ID"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "language.db")
	}
	return cfg
}

// Server hosts the language gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *languagesqlite.Store
	closeOnce  sync.Once
}

// New creates a configured language server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured language server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	env := loadServerEnv()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	store, err := openLanguageStore(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	translator, err := buildTranslator(env)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, err
	}
	synthesizer, err := buildSynthesizer(env)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, err
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := languageservice.NewService(translator, synthesizer, store)
	healthServer := health.NewServer()
	languagepb.RegisterLanguageServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("language.Language", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a language server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// RunWithAddr creates and serves a language server until context cancellation.
func RunWithAddr(ctx context.Context, addr string) error {
	server, err := NewWithAddr(addr)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("language server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases language server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}

	s.closeOnce.Do(func() {
		if s.health != nil {
			s.health.Shutdown()
		}
		if s.grpcServer != nil {
			s.grpcServer.Stop()
		}
		if s.listener != nil {
			if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
				log.Printf("close language listener: %v", err)
			}
		}
		if s.store != nil {
			if err := s.store.Close(); err != nil {
				log.Printf("close language store: %v", err)
			}
		}
	})
}

func buildTranslator(env serverEnv) (translation.Translator, error) {
	switch strings.ToLower(strings.TrimSpace(env.Translator)) {
	case "", backendAWS:
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return translation.NewAWSTranslatorFromConfig(cfg), nil
	case backendOpenAI:
		translator, err := translation.NewOpenAITranslator(translation.OpenAIConfig{
			APIKey: env.OpenAIAPIKey,
			Model:  env.OpenAIModel,
		})
		if err != nil {
			return nil, fmt.Errorf("build openai translator: %w", err)
		}
		return translator, nil
	default:
		return nil, fmt.Errorf("unsupported translator backend %q", env.Translator)
	}
}

func buildSynthesizer(env serverEnv) (speech.Synthesizer, error) {
	switch strings.ToLower(strings.TrimSpace(env.Synthesizer)) {
	case "", backendAWS:
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return speech.NewPollySynthesizerFromConfig(cfg), nil
	case backendElevenLabs:
		synthesizer, err := speech.NewElevenLabsSynthesizer(speech.ElevenLabsConfig{
			APIKey:  env.ElevenLabsAPIKey,
			VoiceID: env.ElevenLabsVoiceID,
		})
		if err != nil {
			return nil, fmt.Errorf("build elevenlabs synthesizer: %w", err)
		}
		return synthesizer, nil
	default:
		return nil, fmt.Errorf("unsupported synthesizer backend %q", env.Synthesizer)
	}
}

func openLanguageStore(path string) (*languagesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := languagesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open language sqlite store: %w", err)
	}
	return store, nil
}

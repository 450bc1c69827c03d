// Package languageclient drives an interactive session against the
// language gRPC service.
package languageclient

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
	entrypoint "github.com/itsHabib/grpc-translate-service/internal/platform/cmd"
	"github.com/itsHabib/grpc-translate-service/internal/platform/discovery"
	platformgrpc "github.com/itsHabib/grpc-translate-service/internal/platform/grpc"
	"github.com/itsHabib/grpc-translate-service/internal/platform/timeouts"
)

// Config holds language client command configuration.
type Config struct {
	Addr        string        `env:"TRANSLATE_SERVICE_LANGUAGE_ADDR" envDefault:"localhost:8081"`
	OutDir      string        `env:"TRANSLATE_SERVICE_CLIENT_OUT_DIR" envDefault:"."`
	DialTimeout time.Duration `env:"TRANSLATE_SERVICE_CLIENT_DIAL_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The language gRPC server address")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory for synthesized audio files")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "gRPC dial timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run connects to the language service and drives the interactive session
// until the user exits or the context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLanguageClient, func(context.Context) error {
		addr := discovery.OrDefaultGRPCAddr(cfg.Addr, discovery.ServiceLanguage)
		dialTimeout := cfg.DialTimeout
		if dialTimeout <= 0 {
			dialTimeout = timeouts.GRPCDial
		}
		conn, err := platformgrpc.DialWithHealth(
			ctx,
			nil,
			addr,
			languagepb.Language_ServiceDesc.ServiceName,
			dialTimeout,
			log.Printf,
			platformgrpc.DefaultClientDialOptions()...,
		)
		if err != nil {
			return fmt.Errorf("dial language service: %w", err)
		}
		defer func() {
			if closeErr := conn.Close(); closeErr != nil {
				log.Printf("close language connection: %v", closeErr)
			}
		}()

		session := NewSession(languagepb.NewLanguageClient(conn), os.Stdin, os.Stdout, cfg.OutDir)
		return session.Run(ctx)
	})
}

// Package language parses language service flags and launches the service.
package language

import (
	"context"
	"flag"

	entrypoint "github.com/itsHabib/grpc-translate-service/internal/platform/cmd"
	server "github.com/itsHabib/grpc-translate-service/internal/services/language/app"
)

// Config holds language command configuration.
type Config struct {
	Port int `env:"TRANSLATE_SERVICE_LANGUAGE_PORT" envDefault:"8081"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The language gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the language gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLanguage, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}

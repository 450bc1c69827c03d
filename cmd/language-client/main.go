// Package main starts the interactive language service client.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	languageclientcmd "github.com/itsHabib/grpc-translate-service/internal/cmd/languageclient"
	"github.com/itsHabib/grpc-translate-service/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := languageclientcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[LANGUAGE-CLIENT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := languageclientcmd.Run(ctx, cfg); err != nil {
		config.Exitf("run client: %v", err)
	}
}

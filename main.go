package main

import (
	"embed"
	"flag"
	"log/slog"
	"os"

	"klondike/internal/config"
	"klondike/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	port := flag.Int("port", cfg.Port, "server port")
	flag.Parse()
	cfg.Port = *port

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	srv := server.New(cfg, static)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

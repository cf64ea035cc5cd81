package server

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"klondike/internal/config"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	cfg      config.Config
	static   embed.FS
}

func New(cfg config.Config, static embed.FS) *Server {
	return &Server{
		handlers: NewHandlers(cfg),
		cfg:      cfg,
		static:   static,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Static files from embedded FS
	sub, err := fs.Sub(s.static, "web/static")
	if err != nil {
		return fmt.Errorf("static fs: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	// API routes
	mux.HandleFunc("/api/create", s.handlers.HandleCreateTable)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/player-id", s.handlers.HandlePlayerID)
	mux.HandleFunc("/ws", s.handlers.HandleWS)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	slog.Info("klondike server starting", "addr", addr, "mode", s.cfg.DefaultMode)
	slog.Info("create a table", "url", fmt.Sprintf("http://localhost%s/api/create", addr))
	return http.ListenAndServe(addr, mux)
}

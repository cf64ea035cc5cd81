package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"klondike/internal/config"
	qr "klondike/internal/qrcode"
	"klondike/internal/table"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	mu       sync.Mutex
	TableMgr *table.Manager
	Hubs     map[string]*Hub
	Cfg      config.Config
}

func NewHandlers(cfg config.Config) *Handlers {
	return &Handlers{
		TableMgr: table.NewManager(),
		Hubs:     make(map[string]*Hub),
		Cfg:      cfg,
	}
}

// HandleCreateTable opens a new table and redirects to it.
func (h *Handlers) HandleCreateTable(w http.ResponseWriter, r *http.Request) {
	tableID := h.TableMgr.Create()
	tbl := h.TableMgr.Get(tableID)
	hub := NewHub(tableID, tbl, h.Cfg)

	h.mu.Lock()
	h.Hubs[tableID] = hub
	h.mu.Unlock()
	go hub.Run()

	slog.Info("table created", "table", tableID)
	http.Redirect(w, r, fmt.Sprintf("/?table=%s", tableID), http.StatusSeeOther)
}

// HandleQR generates a QR code PNG linking to a table, for watching
// from a phone or second screen.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	if tableID == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return
	}
	base := h.Cfg.BaseURL
	if base == "" {
		base = "http://" + r.Host
	}
	url := fmt.Sprintf("%s/?table=%s", base, tableID)
	png, err := qr.Generate(url, 256)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections to a table.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	playerID := r.URL.Query().Get("player")

	if tableID == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	hub, ok := h.Hubs[tableID]
	h.mu.Unlock()
	if !ok {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade error", "error", err)
		return
	}

	client := NewClient(hub, conn, playerID)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(GeneratePlayerID()))
}

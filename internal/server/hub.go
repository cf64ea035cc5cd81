package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"klondike/internal/config"
	"klondike/internal/engine"
	"klondike/internal/protocol"
	"klondike/internal/table"
)

// Hub manages the WebSocket connections and game state for one table.
// All game state is touched only from the Run goroutine: exactly one
// input is processed to completion before the next is accepted.
type Hub struct {
	mu      sync.Mutex
	tableID string
	table   *table.Table
	cfg     config.Config

	game   *engine.Game
	screen Screen
	cursor engine.Selection
	picked *engine.Selection
	debug  bool
	help   string
	status string

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
}

func NewHub(tableID string, tbl *table.Table, cfg config.Config) *Hub {
	return &Hub{
		tableID:    tableID,
		table:      tbl,
		cfg:        cfg,
		screen:     ScreenStart,
		cursor:     engine.DeckSelection(),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			client.SendEnvelope(protocol.MustEnvelope(protocol.MsgTableState, h.tableState()))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.releaseSeatIfGone(client.PlayerID)

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

// releaseSeatIfGone opens the seat once its holder has no connection
// left. A reconnecting player keeps the seat as long as any of their
// tabs is still attached.
func (h *Hub) releaseSeatIfGone(playerID string) {
	if playerID == "" || !h.table.IsSeated(playerID) {
		return
	}
	h.mu.Lock()
	for c := range h.clients {
		if c.PlayerID == playerID {
			h.mu.Unlock()
			return
		}
	}
	h.mu.Unlock()

	h.table.Release(playerID)
	slog.Info("seat released", "table", h.tableID, "player", playerID)
	h.broadcastState()
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	if msg.Envelope.Type == protocol.MsgClaimSeat {
		h.handleClaimSeat(msg)
		return
	}

	// Everything past the seat claim is a game input; watchers only watch.
	if !h.table.IsSeated(msg.Client.PlayerID) {
		h.sendError(msg.Client, "you are not seated at this table")
		return
	}

	switch msg.Envelope.Type {
	case protocol.MsgNewGame:
		h.handleNewGame(msg)
	case protocol.MsgRestart:
		h.handleRestart(msg)
	case protocol.MsgCursor:
		h.handleCursor(msg)
	case protocol.MsgGrab:
		h.handleGrab(msg)
	case protocol.MsgActivate:
		h.handleActivate(msg)
	case protocol.MsgCancel:
		h.handleCancel(msg)
	case protocol.MsgDebug:
		h.handleDebug(msg)
	case protocol.MsgDebugMove:
		h.handleDebugMove(msg)
	default:
		h.sendError(msg.Client, "unknown message type")
	}
}

func (h *Hub) handleClaimSeat(msg IncomingMessage) {
	var claim protocol.ClaimSeatMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &claim); err != nil {
		h.sendError(msg.Client, "invalid claim message")
		return
	}
	msg.Client.PlayerID = claim.PlayerID
	if err := h.table.Claim(claim.PlayerID, claim.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	slog.Info("seat claimed", "table", h.tableID, "player", claim.PlayerID)
	h.broadcastState()
}

func (h *Hub) handleNewGame(msg IncomingMessage) {
	mode := h.cfg.Mode()
	var nm protocol.NewGameMsg
	if len(msg.Envelope.Payload) > 0 {
		if err := json.Unmarshal(msg.Envelope.Payload, &nm); err != nil {
			h.sendError(msg.Client, "invalid new_game message")
			return
		}
		if nm.Mode != "" {
			m, err := engine.ParseMode(nm.Mode)
			if err != nil {
				h.sendError(msg.Client, err.Error())
				return
			}
			mode = m
		}
	}

	h.game = engine.NewGame(mode)
	h.game.AutoDraw = h.cfg.AutoDraw
	h.resetForNewGame()
	slog.Info("new game", "table", h.tableID, "mode", mode.String())
	h.runTurnAndBroadcast()
}

func (h *Hub) handleRestart(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, "no game to restart")
		return
	}
	h.game = h.game.Restart()
	h.resetForNewGame()
	slog.Info("game restarted", "table", h.tableID)
	h.runTurnAndBroadcast()
}

func (h *Hub) resetForNewGame() {
	h.screen = ScreenGame
	h.cursor = engine.DeckSelection()
	h.picked = nil
	h.status = ""
}

func (h *Hub) handleCursor(msg IncomingMessage) {
	if h.screen != ScreenGame {
		return
	}
	var cm protocol.CursorMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &cm); err != nil {
		h.sendError(msg.Client, "invalid cursor message")
		return
	}
	action, ok := engine.ParseCursorAction(cm.Action)
	if !ok {
		h.sendError(msg.Client, "unknown cursor action")
		return
	}
	h.cursor = engine.ApplyCursorAction(action, h.game, h.cursor)
	h.runTurnAndBroadcast()
}

// handleGrab picks up the cards under the cursor, or drops what is
// already held onto the cursor's pile.
func (h *Hub) handleGrab(msg IncomingMessage) {
	if h.screen != ScreenGame {
		return
	}
	if h.picked != nil {
		from := *h.picked
		h.picked = nil
		switch err := engine.AttemptMove(from, h.cursor, h.game); {
		case err == nil:
			h.status = "move OK"
			h.broadcastEvent(engine.Event{Type: engine.EventMoved})
		case errors.Is(err, engine.ErrTransferFailed):
			h.status = "move attempt failed"
		default:
			h.status = "invalid move"
		}
	} else if h.cursor.CardCount() > 0 {
		sel := h.cursor
		h.picked = &sel
	}
	h.runTurnAndBroadcast()
}

// handleActivate draws when the cursor is on the deck slot, and tries
// the foundations when it is on a column.
func (h *Hub) handleActivate(msg IncomingMessage) {
	if h.screen != ScreenGame {
		return
	}
	switch h.cursor.Kind {
	case engine.SelectDeck:
		if ev := h.game.DrawFromStock(); ev.Type != "" {
			h.broadcastEvent(ev)
		}
	case engine.SelectColumn:
		if engine.AutoPlaceToFoundation(h.cursor.Index, h.game) {
			h.broadcastEvent(engine.Event{Type: engine.EventMoved})
		}
	}
	h.runTurnAndBroadcast()
}

func (h *Hub) handleCancel(msg IncomingMessage) {
	h.picked = nil
	h.runTurnAndBroadcast()
}

func (h *Hub) handleDebug(msg IncomingMessage) {
	var dm protocol.DebugMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &dm); err != nil {
		h.sendError(msg.Client, "invalid debug message")
		return
	}
	h.debug = dm.Enabled
	h.runTurnAndBroadcast()
}

// handleDebugMove is the unchecked grab/drop: pile limits still apply,
// solitaire rules do not.
func (h *Hub) handleDebugMove(msg IncomingMessage) {
	if h.screen != ScreenGame || !h.debug {
		return
	}
	if h.picked != nil {
		from := *h.picked
		h.picked = nil
		if err := engine.MoveUnchecked(from, h.cursor, h.game); err != nil {
			h.status = "move attempt failed"
		} else {
			h.status = "move OK (unchecked)"
		}
	} else if h.cursor.CardCount() > 0 {
		sel := h.cursor
		h.picked = &sel
	}
	h.runTurnAndBroadcast()
}

// runTurnAndBroadcast runs the invariant-restoration pipeline and sends
// everyone the resulting table state.
func (h *Hub) runTurnAndBroadcast() {
	if h.screen == ScreenGame {
		outcome := engine.RunTurn(h.game, &h.cursor, h.picked, h.debug)
		h.help = outcome.Help

		// Debug probe: while holding cards, report what a drop at the
		// cursor would do, without moving anything.
		if h.debug && h.picked != nil {
			if err := engine.ValidMove(*h.picked, h.cursor, h.game); err != nil {
				h.status = err.Error()
			} else {
				h.status = "move would be legal"
			}
		}

		if outcome.Status == engine.Victory {
			h.screen = ScreenVictory
			h.status = "victory"
			h.broadcastEvent(engine.Event{Type: engine.EventWon})
			slog.Info("game won", "table", h.tableID)
		}
	}
	h.broadcastState()
}

// tableState is the full view sent to every client.
type tableState struct {
	Screen   string            `json:"screen"`
	Help     string            `json:"help,omitempty"`
	Status   string            `json:"status,omitempty"`
	Debug    bool              `json:"debug,omitempty"`
	SeatName string            `json:"seat_name,omitempty"`
	SeatOpen bool              `json:"seat_open"`
	Cursor   *engine.Selection `json:"cursor,omitempty"`
	Picked   *engine.Selection `json:"picked,omitempty"`
	Game     *engine.Snapshot  `json:"game,omitempty"`
}

func (h *Hub) tableState() tableState {
	seatID, seatName := h.table.Seated()
	st := tableState{
		Screen:   h.screen.String(),
		Help:     h.help,
		Status:   h.status,
		Debug:    h.debug,
		SeatName: seatName,
		SeatOpen: seatID == "",
	}
	if h.game != nil {
		snap := h.game.Snapshot()
		st.Game = &snap
		cursor := h.cursor
		st.Cursor = &cursor
		st.Picked = h.picked
	}
	return st
}

func (h *Hub) broadcastState() {
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgTableState, h.tableState()))
}

func (h *Hub) broadcastEvent(ev engine.Event) {
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgEvent, ev))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.SendEnvelope(env)
	}
}

func (h *Hub) sendError(c *Client, message string) {
	c.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}

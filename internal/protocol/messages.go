package protocol

// Message types: server → client
const (
	MsgTableState = "table_state" // full table view: screen, board, selections
	MsgEvent      = "event"       // engine event (drew, recycled, moved, won)
	MsgError      = "error"
)

// Message types: client → server
const (
	MsgClaimSeat = "claim_seat" // take the single player seat at the table
	MsgNewGame   = "new_game"
	MsgRestart   = "restart"    // redeal the same shuffle
	MsgCursor    = "cursor"     // move the cursor
	MsgGrab      = "grab"       // pick up at the cursor, or drop what is held
	MsgActivate  = "activate"   // draw on the deck slot, auto-place on a column
	MsgCancel    = "cancel"     // put back the held selection
	MsgDebug     = "debug"      // toggle debug mode
	MsgDebugMove = "debug_move" // unchecked grab/drop, debug mode only
)

// ClaimSeatMsg is sent by a client to take the player seat.
type ClaimSeatMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// NewGameMsg starts a fresh shuffled game.
type NewGameMsg struct {
	Mode string `json:"mode"` // "draw-one" or "draw-three"
}

// CursorMsg moves the cursor.
type CursorMsg struct {
	Action string `json:"action"` // left, right, up, down, home, end
}

// DebugMsg toggles debug mode.
type DebugMsg struct {
	Enabled bool `json:"enabled"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}

package table

import (
	"fmt"
	"sync"
	"time"
)

// Table is one solitaire game room: a single player seat plus any
// number of watchers.
type Table struct {
	mu      sync.Mutex
	ID      string
	Created time.Time

	seatID   string // player ID holding the seat, "" when open
	seatName string
}

// New creates an open table.
func New(id string) *Table {
	return &Table{ID: id, Created: time.Now()}
}

// Claim takes the player seat. A player may reclaim their own seat
// (reconnect); anyone else is refused while the seat is held.
func (t *Table) Claim(playerID, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seatID != "" && t.seatID != playerID {
		return fmt.Errorf("seat already taken")
	}
	t.seatID = playerID
	t.seatName = name
	return nil
}

// Release opens the seat if playerID holds it.
func (t *Table) Release(playerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seatID == playerID {
		t.seatID = ""
		t.seatName = ""
	}
}

// Seated returns the seated player's ID and name, or empty strings for
// an open seat.
func (t *Table) Seated() (id, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seatID, t.seatName
}

// IsSeated reports whether playerID holds the seat.
func (t *Table) IsSeated(playerID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return playerID != "" && t.seatID == playerID
}

package engine

import "fmt"

// CardState marks a tableau card face up or face down. Only columns
// track face state; the waste and foundations are always face up.
type CardState int

const (
	FaceUp CardState = iota
	FaceDown
)

func (s CardState) String() string {
	if s == FaceDown {
		return "face-down"
	}
	return "face-up"
}

// ColumnCard pairs a card with its face state inside a column.
type ColumnCard struct {
	Card  Card      `json:"card"`
	State CardState `json:"state"`
}

// Column is one tableau column, ordered bottom-to-top. Face-down cards
// sit underneath a contiguous face-up run at the top.
type Column struct {
	cards []ColumnCard
}

// Len returns the number of cards in the column.
func (c *Column) Len() int {
	return len(c.cards)
}

// IsEmpty reports whether the column holds no cards.
func (c *Column) IsEmpty() bool {
	return len(c.cards) == 0
}

// FaceUpCount returns the length of the contiguous face-up run at the
// top of the column.
func (c *Column) FaceUpCount() int {
	n := 0
	for i := len(c.cards) - 1; i >= 0; i-- {
		if c.cards[i].State != FaceUp {
			break
		}
		n++
	}
	return n
}

// Cards returns a copy of the column contents, bottom-to-top.
func (c *Column) Cards() []ColumnCard {
	out := make([]ColumnCard, len(c.cards))
	copy(out, c.cards)
	return out
}

func (c *Column) push(card Card, state CardState) {
	c.cards = append(c.cards, ColumnCard{Card: card, State: state})
}

// flipTopFaceUp forces the top card face up. No-op on an empty column.
func (c *Column) flipTopFaceUp() {
	if len(c.cards) == 0 {
		return
	}
	c.cards[len(c.cards)-1].State = FaceUp
}

// Take removes the top n cards, returned bottom-of-run first. Face
// states are discarded on the way out; the cards left behind keep
// theirs.
func (c *Column) Take(n int) ([]Card, error) {
	if n <= 0 || n > len(c.cards) {
		return nil, fmt.Errorf("%w: take %d of %d column cards", ErrTransferFailed, n, len(c.cards))
	}
	taken := make([]Card, 0, n)
	for _, cc := range c.cards[len(c.cards)-n:] {
		taken = append(taken, cc.Card)
	}
	c.cards = c.cards[:len(c.cards)-n]
	return taken, nil
}

// Receive appends cards to the top of the column, all face up.
func (c *Column) Receive(cards []Card) error {
	if len(cards) == 0 {
		return fmt.Errorf("%w: receive of no cards", ErrTransferFailed)
	}
	for _, card := range cards {
		c.cards = append(c.cards, ColumnCard{Card: card, State: FaceUp})
	}
	return nil
}

func (c *Column) Peek() (Card, bool) {
	if len(c.cards) == 0 {
		return Card{}, false
	}
	return c.cards[len(c.cards)-1].Card, true
}

func (c *Column) PeekN(n int) ([]Card, bool) {
	if n <= 0 || n > len(c.cards) {
		return nil, false
	}
	out := make([]Card, 0, n)
	for _, cc := range c.cards[len(c.cards)-n:] {
		out = append(out, cc.Card)
	}
	return out, true
}

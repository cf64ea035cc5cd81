package engine

import "fmt"

// CardCollection is the shared contract over every physical pile: the
// waste, the tableau columns, and the foundations. Take and Receive
// mutate; Peek and PeekN never do, so move validation can inspect both
// sides of a transfer before either is touched.
type CardCollection interface {
	// Take removes the top n cards, returned bottom-of-run first.
	Take(n int) ([]Card, error)
	// Receive appends cards to the top of the pile.
	Receive(cards []Card) error
	// Peek returns the top card without removing it.
	Peek() (Card, bool)
	// PeekN returns the top n cards, bottom-first, without removing them.
	PeekN(n int) ([]Card, bool)
}

// Waste is the face-up pile fed by stock draws. The top of the pile is
// the last element.
type Waste struct {
	cards []Card
}

func (w *Waste) Take(n int) ([]Card, error) {
	if n <= 0 || n > len(w.cards) {
		return nil, fmt.Errorf("%w: take %d of %d waste cards", ErrTransferFailed, n, len(w.cards))
	}
	taken := make([]Card, n)
	copy(taken, w.cards[len(w.cards)-n:])
	w.cards = w.cards[:len(w.cards)-n]
	return taken, nil
}

// Receive accepts exactly one card. Cards only ever return to the waste
// one at a time.
func (w *Waste) Receive(cards []Card) error {
	if len(cards) != 1 {
		return fmt.Errorf("%w: waste accepts one card, got %d", ErrTransferFailed, len(cards))
	}
	w.cards = append(w.cards, cards[0])
	return nil
}

func (w *Waste) Peek() (Card, bool) {
	if len(w.cards) == 0 {
		return Card{}, false
	}
	return w.cards[len(w.cards)-1], true
}

func (w *Waste) PeekN(n int) ([]Card, bool) {
	if n <= 0 || n > len(w.cards) {
		return nil, false
	}
	out := make([]Card, n)
	copy(out, w.cards[len(w.cards)-n:])
	return out, true
}

// Len returns the number of cards in the waste.
func (w *Waste) Len() int {
	return len(w.cards)
}

// Top returns up to n cards from the top, bottom-first. Used to expose
// the visible waste cards for the current game mode.
func (w *Waste) Top(n int) []Card {
	if n > len(w.cards) {
		n = len(w.cards)
	}
	out := make([]Card, n)
	copy(out, w.cards[len(w.cards)-n:])
	return out
}

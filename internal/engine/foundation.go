package engine

import "fmt"

// Foundation is one of the four ascending same-suit piles. Pile i
// collects Suit(i). Rank and suit legality live in move validation;
// the pile itself only enforces single-card traffic.
type Foundation struct {
	cards []Card
}

// Len returns the number of cards in the pile.
func (f *Foundation) Len() int {
	return len(f.cards)
}

// Take removes the top card. Foundations never give up more than one
// card at a time.
func (f *Foundation) Take(n int) ([]Card, error) {
	if n != 1 {
		return nil, fmt.Errorf("%w: foundation gives up one card, asked for %d", ErrTransferFailed, n)
	}
	if len(f.cards) == 0 {
		return nil, fmt.Errorf("%w: take from empty foundation", ErrTransferFailed)
	}
	top := f.cards[len(f.cards)-1]
	f.cards = f.cards[:len(f.cards)-1]
	return []Card{top}, nil
}

// Receive accepts exactly one card.
func (f *Foundation) Receive(cards []Card) error {
	if len(cards) != 1 {
		return fmt.Errorf("%w: foundation accepts one card, got %d", ErrTransferFailed, len(cards))
	}
	f.cards = append(f.cards, cards[0])
	return nil
}

func (f *Foundation) Peek() (Card, bool) {
	if len(f.cards) == 0 {
		return Card{}, false
	}
	return f.cards[len(f.cards)-1], true
}

func (f *Foundation) PeekN(n int) ([]Card, bool) {
	if n <= 0 || n > len(f.cards) {
		return nil, false
	}
	out := make([]Card, n)
	copy(out, f.cards[len(f.cards)-n:])
	return out, true
}

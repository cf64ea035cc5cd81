package engine

import "fmt"

// ValidMove decides whether transferring the cards covered by from onto
// to is legal. It never mutates the game.
func ValidMove(from, to Selection, g *Game) error {
	if from.SameCollection(to) {
		return fmt.Errorf("%w: source and destination are the same pile", ErrInvalidMove)
	}

	switch from.Kind {
	case SelectDeck:
		card, ok := g.Waste.Peek()
		if !ok {
			return fmt.Errorf("%w: nothing drawn to move", ErrInvalidMove)
		}
		if to.Kind == SelectPile {
			return foundationAccepts(g.Foundations[to.Index], Suit(to.Index), card)
		}
		return columnAccepts(g.Columns[to.Index], card)

	case SelectPile:
		card, ok := g.Foundations[from.Index].Peek()
		if !ok {
			return fmt.Errorf("%w: foundation is empty", ErrInvalidMove)
		}
		if to.Kind != SelectColumn {
			return fmt.Errorf("%w: foundation cards only return to a column", ErrInvalidMove)
		}
		return columnAccepts(g.Columns[to.Index], card)

	default: // SelectColumn
		cards, ok := g.Columns[from.Index].PeekN(from.Count)
		if !ok {
			return fmt.Errorf("%w: no cards selected", ErrInvalidMove)
		}
		switch to.Kind {
		case SelectPile:
			if from.Count != 1 {
				return fmt.Errorf("%w: only one card moves to a foundation", ErrInvalidMove)
			}
			return foundationAccepts(g.Foundations[to.Index], Suit(to.Index), cards[0])
		case SelectColumn:
			// The bottom card of the run must land legally.
			return columnAccepts(g.Columns[to.Index], cards[0])
		default:
			return fmt.Errorf("%w: cards cannot move onto the deck", ErrInvalidMove)
		}
	}
}

// foundationAccepts: a foundation takes only its own suit, starting at
// the Ace and ascending one rank at a time.
func foundationAccepts(f *Foundation, suit Suit, card Card) error {
	if card.Suit != suit {
		return fmt.Errorf("%w: %v does not belong on the %v pile", ErrInvalidMove, card, suit)
	}
	top, ok := f.Peek()
	if !ok {
		if card.Rank == Ace {
			return nil
		}
		return fmt.Errorf("%w: an empty foundation only takes an ace", ErrInvalidMove)
	}
	if card.Rank == top.Rank+1 {
		return nil
	}
	return fmt.Errorf("%w: %v cannot stack on %v", ErrInvalidMove, card, top)
}

// columnAccepts: an empty column takes only a King; otherwise the card
// must be the opposite color of the column's top card and one rank
// below it.
func columnAccepts(c *Column, card Card) error {
	top, ok := c.Peek()
	if !ok {
		if card.Rank == King {
			return nil
		}
		return fmt.Errorf("%w: an empty column only takes a king", ErrInvalidMove)
	}
	if card.Suit.IsRed() != top.Suit.IsRed() && top.Rank == card.Rank+1 {
		return nil
	}
	return fmt.Errorf("%w: %v cannot stack on %v", ErrInvalidMove, card, top)
}

// AttemptMove validates and then performs a transfer. Validation runs
// before either pile is touched, so a rejected move leaves the game
// exactly as it was.
func AttemptMove(from, to Selection, g *Game) error {
	if err := ValidMove(from, to, g); err != nil {
		return err
	}
	return moveCards(from, to, g)
}

// MoveUnchecked transfers without validation. Debug use only: it still
// honors per-pile take/receive limits but skips the solitaire rules.
func MoveUnchecked(from, to Selection, g *Game) error {
	if from.SameCollection(to) {
		return fmt.Errorf("%w: source and destination are the same pile", ErrInvalidMove)
	}
	return moveCards(from, to, g)
}

// moveCards transfers the covered cards. The destination receives a
// copy of the source's top cards before anything is removed, so a
// refused transfer leaves both piles untouched.
func moveCards(from, to Selection, g *Game) error {
	n := from.CardCount()
	src := g.Collection(from)
	cards, ok := src.PeekN(n)
	if !ok {
		return fmt.Errorf("%w: take %d cards", ErrTransferFailed, n)
	}
	if err := g.Collection(to).Receive(cards); err != nil {
		return err
	}
	_, err := src.Take(n)
	return err
}

// AutoPlaceToFoundation tries the top card of a column against each
// foundation in order and performs the first legal move, if any.
// Reports whether a card moved.
func AutoPlaceToFoundation(column int, g *Game) bool {
	from := Selection{Kind: SelectColumn, Index: column, Count: 1}
	for i := 0; i < FoundationCount; i++ {
		to := PileSelection(i)
		if ValidMove(from, to, g) != nil {
			continue
		}
		if moveCards(from, to, g) == nil {
			return true
		}
	}
	return false
}

package engine

// ColumnCount is the number of tableau columns.
const ColumnCount = 7

// FoundationCount is the number of foundation piles, one per suit.
const FoundationCount = 4

// Game is the root of ownership for all 52 cards: at any instant every
// card sits in exactly one of the stock, the waste, the 7 columns, or
// the 4 foundations.
type Game struct {
	Stock       []Card // face-down draw source, top = last element
	Waste       *Waste
	Columns     [ColumnCount]*Column
	Foundations [FoundationCount]*Foundation
	Mode        GameMode

	// AutoDraw refills an empty waste from the stock during the turn
	// pipeline, so the deck slot always has something playable.
	AutoDraw bool

	won      bool
	seedDeck []Card // the deal order, kept so Restart can replay it
}

// NewGame deals a fresh game from a shuffled deck.
func NewGame(mode GameMode) *Game {
	return NewGameFromDeck(mode, ShuffledDeck())
}

// NewGameFromDeck deals from an explicit deck ordering, which makes
// deals reproducible. The ordering is retained so Restart replays the
// exact same deal.
func NewGameFromDeck(mode GameMode, deck []Card) *Game {
	g := &Game{
		Mode:     mode,
		AutoDraw: true,
		Waste:    &Waste{},
	}
	g.seedDeck = make([]Card, len(deck))
	copy(g.seedDeck, deck)

	for i := range g.Columns {
		g.Columns[i] = &Column{}
	}
	for i := range g.Foundations {
		g.Foundations[i] = &Foundation{}
	}

	stock := make([]Card, len(deck))
	copy(stock, deck)

	// Column i gets i+1 cards off the top of the deck, face down, and
	// then shows its top card.
	for i := 0; i < ColumnCount; i++ {
		for j := 0; j <= i; j++ {
			card := stock[len(stock)-1]
			stock = stock[:len(stock)-1]
			g.Columns[i].push(card, FaceDown)
		}
		g.Columns[i].flipTopFaceUp()
	}
	g.Stock = stock
	return g
}

// Restart redeals from the same deck ordering this game started with,
// enabling exact replay of the current deal.
func (g *Game) Restart() *Game {
	ng := NewGameFromDeck(g.Mode, g.seedDeck)
	ng.AutoDraw = g.AutoDraw
	return ng
}

// Won reports whether the game has reached its terminal victory state.
func (g *Game) Won() bool {
	return g.won
}

// Collection maps a selection to the pile it points at. The deck slot
// resolves to the waste: cards are only ever played from the face-up
// drawn pile. Indexes outside the fixed pile arrays are programmer
// errors and panic.
func (g *Game) Collection(sel Selection) CardCollection {
	switch sel.Kind {
	case SelectColumn:
		return g.Columns[sel.Index]
	case SelectPile:
		return g.Foundations[sel.Index]
	default:
		return g.Waste
	}
}

// DrawFromStock turns over one batch of cards (per the game mode) from
// the stock onto the waste. On an empty stock it recycles instead: the
// waste, reversed, becomes the new stock and the waste empties. The
// next draw then delivers cards again.
func (g *Game) DrawFromStock() Event {
	if len(g.Stock) == 0 {
		if g.Waste.Len() == 0 {
			return Event{}
		}
		for i := len(g.Waste.cards) - 1; i >= 0; i-- {
			g.Stock = append(g.Stock, g.Waste.cards[i])
		}
		recycled := g.Waste.Len()
		g.Waste.cards = g.Waste.cards[:0]
		return Event{Type: EventRecycled, Data: map[string]any{"count": recycled}}
	}

	n := g.Mode.DrawCount()
	if n > len(g.Stock) {
		n = len(g.Stock)
	}
	for i := 0; i < n; i++ {
		card := g.Stock[len(g.Stock)-1]
		g.Stock = g.Stock[:len(g.Stock)-1]
		g.Waste.cards = append(g.Waste.cards, card)
	}
	return Event{Type: EventDrew, Data: map[string]any{"count": n}}
}

// autoHit draws a batch when the stock has cards but the waste is
// empty. Recycling is never automatic; it happens on an explicit draw.
func (g *Game) autoHit() {
	if !g.AutoDraw {
		return
	}
	if len(g.Stock) > 0 && g.Waste.Len() == 0 {
		g.DrawFromStock()
	}
}

// faceUpOnColumns forces every occupied column to show a face-up top
// card, repairing any code path that left one hidden.
func (g *Game) faceUpOnColumns() {
	for _, c := range g.Columns {
		c.flipTopFaceUp()
	}
}

// victory holds iff every foundation is topped by a King, which means
// each holds all 13 ranks of its suit.
func (g *Game) victory() bool {
	for _, f := range g.Foundations {
		top, ok := f.Peek()
		if !ok || top.Rank != King {
			return false
		}
	}
	return true
}

// CardCount returns the number of cards across all piles. It is always
// DeckSize for any game built through the public API.
func (g *Game) CardCount() int {
	n := len(g.Stock) + g.Waste.Len()
	for _, c := range g.Columns {
		n += c.Len()
	}
	for _, f := range g.Foundations {
		n += f.Len()
	}
	return n
}

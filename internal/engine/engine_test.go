package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klondike/internal/engine"
)

func TestDrawOneGameFlow(t *testing.T) {
	// Arrange the deck so the first card drawn is the ace of hearts.
	// The deal consumes the last 28 cards; the first draw takes index 23.
	deck := engine.OrderedDeck()
	deck[0], deck[23] = deck[23], deck[0]

	g := engine.NewGameFromDeck(engine.DrawOne, deck)
	g.AutoDraw = false

	g.DrawFromStock()
	assert.Equal(t, 1, g.Waste.Len())
	assert.Equal(t, 23, len(g.Stock))

	top, ok := g.Waste.Peek()
	require.True(t, ok)
	require.Equal(t, engine.Card{Suit: engine.Hearts, Rank: engine.Ace}, top)

	// Wrong suit pile first.
	err := engine.AttemptMove(engine.DeckSelection(), engine.PileSelection(int(engine.Spades)), g)
	assert.ErrorIs(t, err, engine.ErrInvalidMove)
	assert.Equal(t, 1, g.Waste.Len(), "rejected move leaves the waste alone")

	// Matching empty foundation takes the ace.
	err = engine.AttemptMove(engine.DeckSelection(), engine.PileSelection(int(engine.Hearts)), g)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Foundations[engine.Hearts].Len())
	assert.Equal(t, 0, g.Waste.Len())

	// The waste is exhausted; another attempt fails on the empty source.
	err = engine.AttemptMove(engine.DeckSelection(), engine.PileSelection(int(engine.Hearts)), g)
	assert.ErrorIs(t, err, engine.ErrInvalidMove)

	assert.Equal(t, engine.DeckSize, g.CardCount())
}

func TestDrawThreeExhaustAndRecycle(t *testing.T) {
	g := engine.NewGameFromDeck(engine.DrawThree, engine.ShuffledDeck())
	g.AutoDraw = false

	for i := 0; i < 8; i++ {
		g.DrawFromStock()
	}
	require.Equal(t, 0, len(g.Stock))
	require.Equal(t, 24, g.Waste.Len())

	// One more draw recycles the waste back into the stock, reversed.
	g.DrawFromStock()
	assert.Equal(t, 24, len(g.Stock))
	assert.Equal(t, 0, g.Waste.Len())
	assert.Equal(t, engine.DeckSize, g.CardCount())
}

func TestFullTurnLoop(t *testing.T) {
	// Drive a game the way the server does: input, then pipeline.
	g := engine.NewGameFromDeck(engine.DrawOne, engine.ShuffledDeck())
	cursor := engine.DeckSelection()

	for i := 0; i < 100; i++ {
		g.DrawFromStock()
		for col := 0; col < engine.ColumnCount; col++ {
			engine.AutoPlaceToFoundation(col, g)
		}
		outcome := engine.RunTurn(g, &cursor, nil, false)
		require.Equal(t, engine.DeckSize, g.CardCount(), "turn %d", i)
		if outcome.Status == engine.Victory {
			break
		}
	}
}

func TestSnapshotHidesFaceDownCards(t *testing.T) {
	g := engine.NewGameFromDeck(engine.DrawThree, engine.ShuffledDeck())
	g.DrawFromStock()

	snap := g.Snapshot()
	assert.Equal(t, "draw-three", snap.Mode)
	assert.Equal(t, 21, snap.StockCount)
	assert.Len(t, snap.Waste, 3)
	require.Len(t, snap.Columns, engine.ColumnCount)

	for i, col := range snap.Columns {
		require.Len(t, col, i+1)
		for j, sc := range col {
			if j < i {
				assert.False(t, sc.FaceUp)
				assert.Nil(t, sc.Card, "face-down cards stay off the wire")
			} else {
				assert.True(t, sc.FaceUp)
				assert.NotNil(t, sc.Card)
			}
		}
	}
}

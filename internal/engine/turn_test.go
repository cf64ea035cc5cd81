package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// victoryGame builds a finished game: all four foundations complete.
func victoryGame() *Game {
	g := bareGame()
	for s := Hearts; s <= Clubs; s++ {
		fillFoundation(g, s, King)
	}
	return g
}

// almostVictoryGame moves one card off a complete foundation back into
// play.
func almostVictoryGame() *Game {
	g := victoryGame()
	cards, err := g.Foundations[Clubs].Take(1)
	if err != nil {
		panic(err)
	}
	if err := g.Columns[0].Receive(cards); err != nil {
		panic(err)
	}
	return g
}

func TestVictoryDetection(t *testing.T) {
	cursor := DeckSelection()

	g := victoryGame()
	outcome := RunTurn(g, &cursor, nil, false)
	assert.Equal(t, Victory, outcome.Status)
	assert.True(t, g.Won())

	g = almostVictoryGame()
	outcome = RunTurn(g, &cursor, nil, false)
	assert.Equal(t, Continue, outcome.Status)
	assert.False(t, g.Won())

	g = NewGameFromDeck(DrawOne, OrderedDeck())
	outcome = RunTurn(g, &cursor, nil, false)
	assert.Equal(t, Continue, outcome.Status)
}

func TestFaceUpRepair(t *testing.T) {
	g := bareGame()
	g.Columns[0].push(card(Clubs, King), FaceDown)
	g.Columns[2].push(card(Hearts, Five), FaceDown)
	g.Columns[2].push(card(Spades, Four), FaceDown)

	cursor := DeckSelection()
	RunTurn(g, &cursor, nil, false)

	top := g.Columns[0].Cards()
	assert.Equal(t, FaceUp, top[0].State)

	cards := g.Columns[2].Cards()
	assert.Equal(t, FaceDown, cards[0].State, "only the top card flips")
	assert.Equal(t, FaceUp, cards[1].State)
}

func TestAutoHitRefillsEmptyWaste(t *testing.T) {
	g := NewGameFromDeck(DrawOne, OrderedDeck())
	require.Equal(t, 0, g.Waste.Len())

	cursor := DeckSelection()
	RunTurn(g, &cursor, nil, false)
	assert.Equal(t, 1, g.Waste.Len())
	assert.Equal(t, 23, len(g.Stock))

	// Waste occupied: no further auto-draw.
	RunTurn(g, &cursor, nil, false)
	assert.Equal(t, 1, g.Waste.Len())
}

func TestAutoHitDisabled(t *testing.T) {
	g := NewGameFromDeck(DrawOne, OrderedDeck())
	g.AutoDraw = false

	cursor := DeckSelection()
	RunTurn(g, &cursor, nil, false)
	assert.Equal(t, 0, g.Waste.Len())
}

func TestAutoHitNeverRecycles(t *testing.T) {
	g := NewGameFromDeck(DrawOne, OrderedDeck())
	g.Waste.cards = append(g.Waste.cards, g.Stock...)
	g.Stock = nil

	cursor := DeckSelection()
	RunTurn(g, &cursor, nil, false)
	assert.Equal(t, 0, len(g.Stock), "recycling only happens on an explicit draw")
	assert.Equal(t, 24, g.Waste.Len())
}

func TestPipelineClampsBothSelections(t *testing.T) {
	g := NewGameFromDeck(DrawOne, OrderedDeck())

	cursor := Selection{Kind: SelectColumn, Index: 6, Count: 99}
	picked := Selection{Kind: SelectColumn, Index: 3, Count: 99}
	RunTurn(g, &cursor, &picked, false)

	assert.Equal(t, 1, cursor.Count, "freshly dealt column has one face-up card")
	assert.Equal(t, 1, picked.Count)
}

func TestHelpText(t *testing.T) {
	g := NewGameFromDeck(DrawOne, OrderedDeck())

	cursor := DeckSelection()
	outcome := RunTurn(g, &cursor, nil, false)
	assert.Equal(t, "Enter: draw", outcome.Help)

	cursor = ColumnSelection(0, g)
	outcome = RunTurn(g, &cursor, nil, false)
	assert.Equal(t, "Enter: send to foundation", outcome.Help)

	cursor = PileSelection(0)
	outcome = RunTurn(g, &cursor, nil, false)
	assert.Equal(t, "", outcome.Help)
}

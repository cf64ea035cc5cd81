package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klondike/internal/engine"
)

func TestOrderedDeck(t *testing.T) {
	deck := engine.OrderedDeck()
	require.Len(t, deck, engine.DeckSize)

	seen := map[engine.Card]bool{}
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}

	// Suit-major, rank-ascending.
	for i, c := range deck {
		assert.Equal(t, engine.Suit(i/13), c.Suit, "card %d", i)
		assert.Equal(t, engine.Rank(i%13+1), c.Rank, "card %d", i)
	}
}

func TestShuffledDeckIsPermutation(t *testing.T) {
	deck := engine.ShuffledDeck()
	require.Len(t, deck, engine.DeckSize)

	want := map[engine.Card]int{}
	for _, c := range engine.OrderedDeck() {
		want[c]++
	}
	got := map[engine.Card]int{}
	for _, c := range deck {
		got[c]++
	}
	assert.Equal(t, want, got, "shuffle must keep the same 52-card multiset")
}

func TestShuffledDeckSpreadsFirstCard(t *testing.T) {
	// Statistical check: over many shuffles, every card should land in
	// the first position roughly uniformly. Expected count is 100 per
	// card; the bounds are over six standard deviations out.
	const trials = 5200
	counts := map[engine.Card]int{}
	for i := 0; i < trials; i++ {
		counts[engine.ShuffledDeck()[0]]++
	}
	require.Len(t, counts, engine.DeckSize, "every card should appear first eventually")
	for c, n := range counts {
		assert.Greater(t, n, 40, "card %v first too rarely", c)
		assert.Less(t, n, 200, "card %v first too often", c)
	}
}

func TestSuitColors(t *testing.T) {
	assert.True(t, engine.Hearts.IsRed())
	assert.True(t, engine.Diamonds.IsRed())
	assert.False(t, engine.Spades.IsRed())
	assert.False(t, engine.Clubs.IsRed())
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card engine.Card
		want string
	}{
		{engine.Card{Suit: engine.Hearts, Rank: engine.Ace}, "A♥"},
		{engine.Card{Suit: engine.Spades, Rank: engine.Ten}, "10♠"},
		{engine.Card{Suit: engine.Diamonds, Rank: engine.Queen}, "Q♦"},
		{engine.Card{Suit: engine.Clubs, Rank: engine.King}, "K♣"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.card.String())
	}
}

package engine

import "math/rand/v2"

// Suit is one of the four card suits. The numeric value doubles as the
// index of the foundation pile that collects the suit.
type Suit int

const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

// SuitCount is the number of suits in a deck.
const SuitCount = 4

var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Spades:   "♠",
	Diamonds: "♦",
	Clubs:    "♣",
}

func (s Suit) String() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

// IsRed reports whether the suit is Hearts or Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank runs from Ace (1) through King (13).
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = map[Rank]string{
	Ace:   "A",
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

func (r Rank) String() string {
	if s, ok := rankNames[r]; ok {
		return s
	}
	return "?"
}

// Card is an immutable suit/rank value. A full deck holds exactly one
// card per (suit, rank) pair and nothing else identifies a card.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// OrderedDeck returns the full deck in suit-major, rank-ascending order.
func OrderedDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for s := Hearts; s <= Clubs; s++ {
		for r := Ace; r <= King; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// ShuffledDeck returns the full deck in uniformly random order.
func ShuffledDeck() []Card {
	deck := OrderedDeck()
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

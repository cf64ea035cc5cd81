package engine

// SelectionKind tags which slot a Selection points at. The set of pile
// kinds is closed, so selections dispatch over a tag instead of an
// open interface.
type SelectionKind int

const (
	SelectDeck SelectionKind = iota
	SelectColumn
	SelectPile
)

var selectionKindNames = map[SelectionKind]string{
	SelectDeck:   "deck",
	SelectColumn: "column",
	SelectPile:   "pile",
}

func (k SelectionKind) String() string {
	if s, ok := selectionKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Selection identifies what a cursor points at: the deck/waste slot, a
// tableau column plus how many cards of its face-up run are selected,
// or a foundation pile. It is a plain location value with no rendering
// state, and it is not part of the game state.
type Selection struct {
	Kind  SelectionKind `json:"kind"`
	Index int           `json:"index"`           // column 0..6 or pile 0..3
	Count int           `json:"count,omitempty"` // selected run length, columns only
}

// DeckSelection points at the deck/waste slot.
func DeckSelection() Selection {
	return Selection{Kind: SelectDeck}
}

// PileSelection points at foundation pile index.
func PileSelection(index int) Selection {
	return Selection{Kind: SelectPile, Index: index}
}

// ColumnSelection points at a column, selecting one card when the
// column is occupied and nothing when it is empty.
func ColumnSelection(index int, g *Game) Selection {
	count := 0
	if !g.Columns[index].IsEmpty() {
		count = 1
	}
	return Selection{Kind: SelectColumn, Index: index, Count: count}
}

// SameCollection reports whether two selections point into the same
// pile, regardless of how many cards are selected. Transfers within
// one pile are always no-ops and get rejected on this alone.
func (s Selection) SameCollection(o Selection) bool {
	if s.Kind != o.Kind {
		return false
	}
	return s.Kind == SelectDeck || s.Index == o.Index
}

// CardCount is the number of cards the selection covers. Deck and pile
// selections always cover exactly one.
func (s Selection) CardCount() int {
	if s.Kind == SelectColumn {
		return s.Count
	}
	return 1
}

// MoveLeft steps one slot left: piles → last column → … → column 0 →
// deck. Movement clamps at the deck.
func (s Selection) MoveLeft(g *Game) Selection {
	switch s.Kind {
	case SelectColumn:
		if s.Index > 0 {
			return ColumnSelection(s.Index-1, g)
		}
		return DeckSelection()
	case SelectPile:
		return ColumnSelection(ColumnCount-1, g)
	default:
		return s
	}
}

// MoveRight steps one slot right: deck → column 0 → … → column 6 →
// piles. Movement clamps at the piles.
func (s Selection) MoveRight(g *Game) Selection {
	switch s.Kind {
	case SelectDeck:
		return ColumnSelection(0, g)
	case SelectColumn:
		if s.Index < ColumnCount-1 {
			return ColumnSelection(s.Index+1, g)
		}
		return PileSelection(0)
	default:
		return s
	}
}

// ExtendUp grows a column selection by one card, or steps a pile
// selection to the previous foundation. Deck selections are unaffected.
func (s Selection) ExtendUp() Selection {
	switch s.Kind {
	case SelectColumn:
		s.Count++
	case SelectPile:
		if s.Index > 0 {
			s.Index--
		}
	}
	return s
}

// ExtendDown shrinks a column selection with a floor of zero, or steps
// a pile selection to the next foundation. Deck selections are
// unaffected.
func (s Selection) ExtendDown() Selection {
	switch s.Kind {
	case SelectColumn:
		if s.Count > 0 {
			s.Count--
		}
	case SelectPile:
		if s.Index < FoundationCount-1 {
			s.Index++
		}
	}
	return s
}

// ApplyColumnSelectionRules clamps a column selection to what is
// actually selectable: a non-empty column never carries an empty
// selection, and the count cannot exceed the face-up run — or the whole
// column when debug is set, which permits inspecting face-down cards.
// Idempotent; non-column selections pass through unchanged.
func (s Selection) ApplyColumnSelectionRules(g *Game, debug bool) Selection {
	if s.Kind != SelectColumn {
		return s
	}
	col := g.Columns[s.Index]
	if !col.IsEmpty() && s.Count == 0 {
		s.Count = 1
		return s
	}
	max := col.FaceUpCount()
	if debug {
		max = col.Len()
	}
	if s.Count > max {
		s.Count = max
	}
	return s
}

// CursorAction is a navigation input applied to the cursor.
type CursorAction int

const (
	CursorLeft CursorAction = iota
	CursorRight
	CursorUp
	CursorDown
	CursorHome // jump to the deck slot
	CursorEnd  // jump to the foundation piles
)

// ParseCursorAction converts a wire action name to a CursorAction.
func ParseCursorAction(s string) (CursorAction, bool) {
	switch s {
	case "left":
		return CursorLeft, true
	case "right":
		return CursorRight, true
	case "up":
		return CursorUp, true
	case "down":
		return CursorDown, true
	case "home":
		return CursorHome, true
	case "end":
		return CursorEnd, true
	}
	return CursorLeft, false
}

// ApplyCursorAction returns the cursor after one navigation input.
func ApplyCursorAction(action CursorAction, g *Game, s Selection) Selection {
	switch action {
	case CursorLeft:
		return s.MoveLeft(g)
	case CursorRight:
		return s.MoveRight(g)
	case CursorUp:
		return s.ExtendUp()
	case CursorDown:
		return s.ExtendDown()
	case CursorHome:
		return DeckSelection()
	case CursorEnd:
		return PileSelection(0)
	}
	return s
}

package engine

// WireCard is a card as shown to clients.
type WireCard struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
	Red  bool   `json:"red"`
}

func wireCard(c Card) WireCard {
	return WireCard{Rank: c.Rank.String(), Suit: c.Suit.String(), Red: c.Suit.IsRed()}
}

// SnapshotCard is one tableau card on the wire. Face-down cards keep
// their identity off the wire entirely.
type SnapshotCard struct {
	Card   *WireCard `json:"card,omitempty"`
	FaceUp bool      `json:"face_up"`
}

// Snapshot is the wire view of a game: what a renderer needs and
// nothing a player should not see.
type Snapshot struct {
	Mode        string           `json:"mode"`
	StockCount  int              `json:"stock_count"`
	Waste       []WireCard       `json:"waste"` // visible top cards, oldest first
	WasteCount  int              `json:"waste_count"`
	Columns     [][]SnapshotCard `json:"columns"`
	Foundations []*WireCard      `json:"foundations"` // top card per suit pile
	Won         bool             `json:"won"`
}

// Snapshot renders the game for clients. The number of visible waste
// cards follows the game mode.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:       g.Mode.String(),
		StockCount: len(g.Stock),
		WasteCount: g.Waste.Len(),
		Waste:      []WireCard{},
	}

	for _, c := range g.Waste.Top(g.Mode.DrawCount()) {
		snap.Waste = append(snap.Waste, wireCard(c))
	}

	snap.Columns = make([][]SnapshotCard, ColumnCount)
	for i, col := range g.Columns {
		cards := col.Cards()
		snap.Columns[i] = make([]SnapshotCard, 0, len(cards))
		for _, cc := range cards {
			sc := SnapshotCard{FaceUp: cc.State == FaceUp}
			if sc.FaceUp {
				wc := wireCard(cc.Card)
				sc.Card = &wc
			}
			snap.Columns[i] = append(snap.Columns[i], sc)
		}
	}

	snap.Foundations = make([]*WireCard, FoundationCount)
	for i, f := range g.Foundations {
		if top, ok := f.Peek(); ok {
			wc := wireCard(top)
			snap.Foundations[i] = &wc
		}
	}

	snap.Won = g.won
	return snap
}

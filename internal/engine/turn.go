package engine

// TurnStatus is the pipeline verdict for a completed turn.
type TurnStatus int

const (
	Continue TurnStatus = iota
	Victory
)

func (s TurnStatus) String() string {
	if s == Victory {
		return "victory"
	}
	return "continue"
}

// TurnOutcome is what the turn pipeline hands back to the driver.
type TurnOutcome struct {
	Status TurnStatus
	Help   string
}

// HelpText is the context line for the current cursor position.
func HelpText(s Selection) string {
	switch s.Kind {
	case SelectDeck:
		return "Enter: draw"
	case SelectColumn:
		return "Enter: send to foundation"
	default:
		return ""
	}
}

// RunTurn restores the game invariants after an input has been
// processed. In order: every occupied column shows a face-up top card,
// an empty waste is refilled from the stock, the cursor and the picked
// selection are clamped to what is selectable, the help line is
// derived, and victory is checked. Every step is total; the pipeline
// cannot fail.
func RunTurn(g *Game, cursor *Selection, picked *Selection, debug bool) TurnOutcome {
	g.faceUpOnColumns()
	g.autoHit()

	var outcome TurnOutcome
	if cursor != nil {
		*cursor = cursor.ApplyColumnSelectionRules(g, debug)
		outcome.Help = HelpText(*cursor)
	}
	if picked != nil {
		*picked = picked.ApplyColumnSelectionRules(g, debug)
	}

	if g.victory() {
		g.won = true
		outcome.Status = Victory
	}
	return outcome
}

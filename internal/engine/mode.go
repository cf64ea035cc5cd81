package engine

import "fmt"

// GameMode controls how many cards a stock draw turns over at once, and
// how many waste cards are shown to the player.
type GameMode int

const (
	DrawOne GameMode = iota
	DrawThree
)

var modeNames = map[GameMode]string{
	DrawOne:   "draw-one",
	DrawThree: "draw-three",
}

func (m GameMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// DrawCount is the number of cards moved from stock to waste per draw.
// The same number of waste cards is exposed for display.
func (m GameMode) DrawCount() int {
	if m == DrawThree {
		return 3
	}
	return 1
}

// ParseMode converts a mode name to a GameMode.
func ParseMode(s string) (GameMode, error) {
	switch s {
	case "draw-one", "1":
		return DrawOne, nil
	case "draw-three", "3":
		return DrawThree, nil
	}
	return DrawOne, fmt.Errorf("unknown game mode %q", s)
}

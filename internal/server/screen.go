package server

// Screen is a table's screen-flow state. The engine never sees it; the
// hub sequences engine calls according to the current screen.
type Screen int

const (
	ScreenStart   Screen = iota // waiting for the first new game
	ScreenGame                  // a deal is in progress
	ScreenVictory               // terminal until a new game starts
)

var screenNames = map[Screen]string{
	ScreenStart:   "start",
	ScreenGame:    "game",
	ScreenVictory: "victory",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "unknown"
}

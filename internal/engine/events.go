package engine

// EventType identifies notable engine happenings surfaced to clients.
type EventType string

const (
	EventDrew     EventType = "drew"
	EventRecycled EventType = "recycled"
	EventMoved    EventType = "moved"
	EventWon      EventType = "won"
)

// Event describes something the engine did in response to an input.
// A zero Event (empty Type) means nothing happened.
type Event struct {
	Type EventType      `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

package coach

import (
	"time"

	"github.com/tgillard/clutch/internal/verify"
)

// Urgency buckets advice by how fast it goes stale on screen.
type Urgency string

const (
	UrgencyImmediate  Urgency = "immediate"
	UrgencyReactive   Urgency = "reactive"
	UrgencyPositional Urgency = "positional"
)

// Advice is one piece of coaching output, before verification.
type Advice struct {
	Text     string
	Topic    string
	Urgency  Urgency
	IssuedAt time.Time
	Source   string // "llm" or "simulated"
}

// GameState is the snapshot of the simulated match fed to the coach.
type GameState struct {
	Game     verify.Game
	Gamertag string
	Phase    string
	Clock    time.Duration
	Events   []string // recent match events, most recent last
}

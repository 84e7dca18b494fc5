package verify

import "time"

// Game identifies which coaching syllabus a verifier is bound to.
type Game string

const (
	GameMOBA     Game = "moba"
	GameFPS      Game = "fps"
	GameStrategy Game = "strategy"
)

// Games lists the supported game categories in display order.
func Games() []Game {
	return []Game{GameMOBA, GameFPS, GameStrategy}
}

// Correction maps an invalid-pattern substring to replacement advice.
// Lookup is by bidirectional substring containment against the matched
// invalid pattern, first match in declaration order.
type Correction struct {
	Pattern     string
	Replacement string
}

// Principle is one coaching topic's rule set within a game's syllabus.
// All patterns are lowercase; matching is literal substring containment,
// never semantic.
type Principle struct {
	// Category is the topic label, e.g. "positioning".
	Category string

	// Keywords weakly support this topic (+1 each when present).
	Keywords []string

	// ValidPatterns strongly support this topic (+2 each when present).
	ValidPatterns []string

	// InvalidPatterns mark advice as contradicting expert guidance for
	// this topic. Checked before any positive matching.
	InvalidPatterns []string

	// Corrections supply replacement text for detected invalid patterns.
	Corrections []Correction
}

// Verdict is the result of verifying one piece of advice.
type Verdict struct {
	// IsValid reports whether the advice may be shown to the player.
	IsValid bool

	// ModifiedAdvice is replacement or enhanced text. Set when the advice
	// was rejected (correction or generic fallback) or when accepted
	// advice was contextually enhanced; empty otherwise.
	ModifiedAdvice string

	// Category is the topic label of the matched principle, if any.
	Category string

	// Confidence is in [0, 1]. Fixed 0.3 for invalid-pattern rejections,
	// computed for positive matches, fixed 0.6 for the generic heuristic.
	Confidence float64

	// Warning explains a rejection. Empty on acceptance.
	Warning string
}

// GameContext carries optional match state alongside a piece of advice.
// All fields are read opportunistically; the zero value is usable.
type GameContext struct {
	Game  Game
	Phase string        // "draft", "early", "mid", "late"
	Clock time.Duration // simulated match clock
}

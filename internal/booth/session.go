// Package booth ties one visitor, one scripted match, and one verifier
// together into a kiosk session.
package booth

import (
	"time"

	"github.com/google/uuid"

	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/verify"
)

// Visitor is one booth sign-up.
type Visitor struct {
	Name     string
	Gamertag string
	Game     verify.Game
}

// AdviceEntry records one piece of advice shown during a session.
type AdviceEntry struct {
	Original string
	Shown    string // what actually appeared on screen
	Verdict  verify.Verdict
	IssuedAt time.Time
}

// Session is one visitor's run through the booth: sign-up, scripted match
// with live coaching, recap.
type Session struct {
	ID        string
	Visitor   Visitor
	StartedAt time.Time
	EndedAt   time.Time

	Match    *Match
	Verifier *verify.Verifier

	Entries   []AdviceEntry
	Rewritten int
	Rejected  int
}

// NewSession starts a session for visitor with a fresh match and verifier.
func NewSession(visitor Visitor) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Visitor:   visitor,
		StartedAt: time.Now(),
		Match:     NewMatch(visitor.Game),
		Verifier:  verify.New(visitor.Game),
	}
}

// Screen decides what text a verdict puts on screen: replacement text when
// present, the original otherwise. Rejected advice with no replacement
// shows nothing.
func Screen(advice string, verdict verify.Verdict) string {
	if verdict.ModifiedAdvice != "" {
		return verdict.ModifiedAdvice
	}
	if !verdict.IsValid {
		return ""
	}
	return advice
}

// Record verifies advice through the session verifier, appends the entry,
// and returns the verdict. Counters track rewrites and rejections for the
// recap.
func (s *Session) Record(advice coach.Advice) verify.Verdict {
	verdict := s.Verifier.VerifyAdvice(advice.Text, s.gameContext())

	s.Entries = append(s.Entries, AdviceEntry{
		Original: advice.Text,
		Shown:    Screen(advice.Text, verdict),
		Verdict:  verdict,
		IssuedAt: advice.IssuedAt,
	})

	if !verdict.IsValid {
		s.Rejected++
	} else if verdict.ModifiedAdvice != "" {
		s.Rewritten++
	}
	return verdict
}

// Timely reports whether an entry's advice is still worth showing, given
// how long ago it was issued.
func (s *Session) Timely(e AdviceEntry) bool {
	return s.Verifier.ValidateTimeSensitivity(e.Original, e.IssuedAt, s.Match.Clock())
}

// End closes the session. Safe to call more than once; the first call wins.
func (s *Session) End() {
	if s.EndedAt.IsZero() {
		s.EndedAt = time.Now()
	}
}

// Duration is the wall-clock session length so far, or the final length
// once ended.
func (s *Session) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// GameState snapshots the session for the coach.
func (s *Session) GameState() coach.GameState {
	return coach.GameState{
		Game:     s.Visitor.Game,
		Gamertag: s.Visitor.Gamertag,
		Phase:    s.Match.Phase(),
		Clock:    s.Match.Clock(),
		Events:   s.Match.RecentEvents(3),
	}
}

func (s *Session) gameContext() *verify.GameContext {
	return &verify.GameContext{
		Game:  s.Visitor.Game,
		Phase: s.Match.Phase(),
		Clock: s.Match.Clock(),
	}
}

// Recap aggregates the session for the recap screen.
type Recap struct {
	SessionID string
	Gamertag  string
	Game      verify.Game
	Duration  time.Duration

	AdviceShown int
	Accepted    int
	Rewritten   int
	Rejected    int

	Rejections []string // verifier log snapshot
	Events     []string
}

// BuildRecap assembles the recap from the session's counters, the match
// event feed, and the verifier's rejection log.
func (s *Session) BuildRecap() Recap {
	return Recap{
		SessionID:   s.ID,
		Gamertag:    s.Visitor.Gamertag,
		Game:        s.Visitor.Game,
		Duration:    s.Duration(),
		AdviceShown: len(s.Entries),
		Accepted:    len(s.Entries) - s.Rejected,
		Rewritten:   s.Rewritten,
		Rejected:    s.Rejected,
		Rejections:  s.Verifier.SessionErrors(),
		Events:      s.Match.Events(),
	}
}

// RecapInput adapts the recap for LLM recap generation.
func (r Recap) RecapInput() coach.RecapInput {
	return coach.RecapInput{
		Gamertag:        r.Gamertag,
		Game:            string(r.Game),
		Duration:        r.Duration,
		AdviceShown:     r.AdviceShown,
		AdviceRewritten: r.Rewritten,
		AdviceRejected:  r.Rejected,
		Events:          r.Events,
	}
}

package coach

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tgillard/clutch/internal/verify"
)

// Simulator is a deterministic scripted coach for offline demos. It cycles
// through a per-game deck of advice lines. The decks deliberately mix good
// calls with bad ones so the booth screen shows rewrites and rejections,
// not just a stream of accepted advice.
type Simulator struct {
	mu      sync.Mutex
	cursor  map[verify.Game]int
	pending *Advice
	ready   bool
}

// NewSimulator creates a scripted coach.
func NewSimulator() *Simulator {
	return &Simulator{cursor: make(map[verify.Game]int)}
}

type scriptedAdvice struct {
	text    string
	topic   string
	urgency Urgency
}

var adviceDecks = map[verify.Game][]scriptedAdvice{
	verify.GameMOBA: {
		{"Stay behind minions in this matchup", "positioning", UrgencyPositional},
		{"You should engage without vision, they are weak", "vision", UrgencyImmediate},
		{"Try to freeze the wave near your tower", "farming", UrgencyPositional},
		{"Just facecheck the bush to see if they are there", "vision", UrgencyImmediate},
		{"Focus on your last hit timing this wave", "farming", UrgencyPositional},
		{"You will always win if you dive the tower alone", "positioning", UrgencyImmediate},
		{"Ward the river before the next objective spawns", "vision", UrgencyPositional},
		{"Consider how their picks change your item path", "itemization", UrgencyPositional},
	},
	verify.GameFPS: {
		{"Keep your crosshair at head level through this door", "aim", UrgencyReactive},
		{"Spray from across the map, it might hit", "aim", UrgencyImmediate},
		{"Flash before you entry onto the site", "utility", UrgencyImmediate},
		{"Force buy every round until it works", "economy", UrgencyReactive},
		{"Play close to cover while their awp is alive", "positioning", UrgencyReactive},
		{"Push through the smoke blind, nobody expects it", "positioning", UrgencyImmediate},
		{"Work on pre-aiming the common angles on this map", "aim", UrgencyPositional},
	},
	verify.GameStrategy: {
		{"Keep worker production constant into the midgame", "economy", UrgencyPositional},
		{"No need to scout, just play your build", "scouting", UrgencyPositional},
		{"Expand when you are ahead after this push", "macro", UrgencyPositional},
		{"Skip upgrades and spend everything on units", "macro", UrgencyReactive},
		{"Keep a unit on the watchtower for the next two minutes", "scouting", UrgencyPositional},
		{"Practice your supply timing in the opening", "macro", UrgencyPositional},
	},
}

// RequestAdvice picks the next deck line for the game. The result is ready
// on the next ConsumeAdvice call.
func (s *Simulator) RequestAdvice(_ context.Context, state GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := adviceDecks[state.Game]
	if len(deck) == 0 {
		s.pending = nil
		s.ready = true
		return
	}

	i := s.cursor[state.Game] % len(deck)
	s.cursor[state.Game]++

	line := deck[i]
	s.pending = &Advice{
		Text:     line.text,
		Topic:    line.topic,
		Urgency:  line.urgency,
		IssuedAt: time.Now(),
		Source:   "simulated",
	}
	s.ready = true
}

// ConsumeAdvice returns the pending advice if one is ready.
func (s *Simulator) ConsumeAdvice() (*Advice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	advice := s.pending
	s.pending = nil
	s.ready = false
	return advice, advice != nil
}

// GenerateRecap builds a canned recap from the session facts.
func (s *Simulator) GenerateRecap(_ context.Context, input RecapInput) (*Recap, error) {
	accepted := input.AdviceShown - input.AdviceRejected
	summary := fmt.Sprintf(
		"%s played a %s of %s. The coach made %d calls and %d of them held up under review.",
		input.Gamertag, input.Game, formatClock(input.Duration), input.AdviceShown, accepted)

	highlights := make([]string, 0, 3)
	for i := 0; i < len(input.Events) && i < 3; i++ {
		highlights = append(highlights, input.Events[i])
	}
	if len(highlights) == 0 {
		highlights = append(highlights, "Showed up and played the match")
	}

	focus := "Keep positioning in mind before every fight."
	if input.AdviceRejected > input.AdviceRewritten {
		focus = "Question advice that sounds too confident, even from a coach."
	}

	return &Recap{
		Summary:    summary,
		Highlights: highlights,
		FocusArea:  focus,
	}, nil
}

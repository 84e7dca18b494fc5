package recap

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tgillard/clutch/internal/booth"
	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/router"
	"github.com/tgillard/clutch/internal/verify"
)

// stubCoach returns a fixed recap, or an error.
type stubCoach struct {
	recap *coach.Recap
	err   error
}

func (s *stubCoach) RequestAdvice(_ context.Context, _ coach.GameState) {}
func (s *stubCoach) ConsumeAdvice() (*coach.Advice, bool)               { return nil, false }
func (s *stubCoach) GenerateRecap(_ context.Context, _ coach.RecapInput) (*coach.Recap, error) {
	return s.recap, s.err
}

func testRecap() booth.Recap {
	return booth.Recap{
		SessionID:   "s-1",
		Gamertag:    "jamxd",
		Game:        verify.GameFPS,
		Duration:    4*time.Minute + 30*time.Second,
		AdviceShown: 6,
		Accepted:    4,
		Rewritten:   1,
		Rejected:    2,
		Rejections:  []string{"[2026-08-31T12:00:00Z] Rejected advice: Spray from across the map"},
		Events:      []string{"First blood"},
	}
}

func TestCountersRendered(t *testing.T) {
	s := New(testRecap(), nil)
	view := s.View(100, 30)

	for _, want := range []string{"jamxd", "FPS", "4:30", "accepted", "rewritten", "rejected"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCoachNarrativeArrives(t *testing.T) {
	sc := &stubCoach{recap: &coach.Recap{
		Summary:    "Strong positioning today.",
		Highlights: []string{"Held the angle on site"},
		FocusArea:  "crosshair placement",
	}}
	s := New(testRecap(), sc)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected an init command when a coach is wired")
	}
	scr, _ := s.Update(cmd())
	s = scr.(*RecapScreen)

	view := s.View(100, 30)
	if !strings.Contains(view, "Strong positioning today.") {
		t.Error("view missing coach summary")
	}
	if !strings.Contains(view, "crosshair placement") {
		t.Error("view missing focus area")
	}
}

func TestCoachErrorFallsBackToCounters(t *testing.T) {
	sc := &stubCoach{err: errors.New("provider down")}
	s := New(testRecap(), sc)

	scr, _ := s.Update(s.Init()())
	s = scr.(*RecapScreen)

	if s.loading {
		t.Error("loading should be cleared after an error")
	}
	view := s.View(100, 30)
	if strings.Contains(view, "writing your recap") {
		t.Error("view should not keep the loading hint after an error")
	}
}

func TestToggleRejectionLog(t *testing.T) {
	s := New(testRecap(), nil)

	scr, _ := s.Update(tea.KeyPressMsg{Code: 'r'})
	s = scr.(*RecapScreen)

	view := s.View(100, 30)
	if !strings.Contains(view, "Spray from across the map") {
		t.Error("rejection log should be visible after toggle")
	}

	scr, _ = s.Update(tea.KeyPressMsg{Code: 'r'})
	s = scr.(*RecapScreen)
	view = s.View(100, 30)
	if strings.Contains(view, "Spray from across the map") {
		t.Error("rejection log should be hidden after second toggle")
	}
}

func TestDonePopsToHome(t *testing.T) {
	s := New(testRecap(), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("enter should pop back to home")
	}
}

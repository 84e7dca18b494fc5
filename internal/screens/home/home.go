package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/router"
	"github.com/tgillard/clutch/internal/screen"
	"github.com/tgillard/clutch/internal/screens/history"
	"github.com/tgillard/clutch/internal/screens/signup"
	"github.com/tgillard/clutch/internal/store"
	"github.com/tgillard/clutch/internal/ui/components"
	"github.com/tgillard/clutch/internal/ui/layout"
	"github.com/tgillard/clutch/internal/ui/theme"
)

// HomeScreen is the operator-facing menu between visitors.
type HomeScreen struct {
	menu         components.Menu
	coachMode    string
	sessionCount int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the booth coach and event store.
// coachMode is shown in the header so the operator can tell at a glance
// whether a live provider or the scripted coach is driving advice.
func New(boothCoach coach.Coach, eventRepo store.EventRepo, coachMode string) *HomeScreen {
	var sessionCount int
	if eventRepo != nil {
		if sessions, err := eventRepo.RecentSessions(context.Background(), store.QueryOpts{}); err == nil {
			sessionCount = len(sessions)
		}
	}

	items := []components.MenuItem{
		{Label: "NEW VISITOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: signup.New(boothCoach, eventRepo)}
			}
		}},
		{Label: "RECENT SESSIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		coachMode:    coachMode,
		sessionCount: sessionCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Booth"
}

func (h *HomeScreen) Status() string {
	return h.coachMode
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("LIVE COACHING, VERIFIED"),
		theme.Subtitle.Render("Every tip is screened against pro guidance before it reaches the player."))

	stats := "No sessions yet today"
	switch {
	case h.sessionCount == 1:
		stats = "1 session played"
	case h.sessionCount > 1:
		stats = fmt.Sprintf("%d sessions played", h.sessionCount)
	}
	sections = append(sections, theme.Hint.Render(stats))

	sections = append(sections, theme.Card.Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

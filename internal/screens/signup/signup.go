// Package signup implements the visitor sign-up form: name, gamertag, and
// game selection, collected before the coaching overlay starts.
package signup

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tgillard/clutch/internal/booth"
	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/router"
	"github.com/tgillard/clutch/internal/screen"
	"github.com/tgillard/clutch/internal/screens/overlay"
	"github.com/tgillard/clutch/internal/store"
	"github.com/tgillard/clutch/internal/ui/components"
	"github.com/tgillard/clutch/internal/ui/layout"
	"github.com/tgillard/clutch/internal/ui/theme"
	"github.com/tgillard/clutch/internal/verify"
)

// form fields in tab order
const (
	fieldName = iota
	fieldGamertag
	fieldGame
	fieldStart
	fieldCount
)

// SignupScreen collects the visitor details and launches a booth session.
type SignupScreen struct {
	boothCoach coach.Coach
	eventRepo  store.EventRepo

	nameInput     components.TextInput
	gamertagInput components.TextInput
	games         []verify.Game
	gameIndex     int
	focus         int
	errMsg        string
}

var _ screen.Screen = (*SignupScreen)(nil)
var _ screen.KeyHintProvider = (*SignupScreen)(nil)

// New creates a SignupScreen.
func New(boothCoach coach.Coach, eventRepo store.EventRepo) *SignupScreen {
	return &SignupScreen{
		boothCoach:    boothCoach,
		eventRepo:     eventRepo,
		nameInput:     components.NewTextInput("Your name", 24),
		gamertagInput: components.NewTextInput("Gamertag", 20),
		games:         verify.Games(),
	}
}

func (s *SignupScreen) Init() tea.Cmd {
	s.gamertagInput.Blur()
	return s.nameInput.Focus()
}

func (s *SignupScreen) Title() string {
	return "Sign-up"
}

func (s *SignupScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
	}
	if s.focus == fieldGame {
		hints = append([]layout.KeyHint{{Key: "←→", Description: "Pick game"}}, hints...)
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *SignupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardToInput(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % fieldCount)

	case "shift+tab", "up":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)

	case "left":
		if s.focus == fieldGame {
			s.gameIndex = (s.gameIndex + len(s.games) - 1) % len(s.games)
			return s, nil
		}

	case "right":
		if s.focus == fieldGame {
			s.gameIndex = (s.gameIndex + 1) % len(s.games)
			return s, nil
		}

	case "enter":
		if s.focus == fieldStart {
			return s.start()
		}
		return s, s.setFocus(s.focus + 1)
	}

	return s.forwardToInput(msg)
}

// setFocus moves form focus, blurring and focusing text inputs as needed.
func (s *SignupScreen) setFocus(field int) tea.Cmd {
	s.focus = field
	s.nameInput.Blur()
	s.gamertagInput.Blur()
	switch field {
	case fieldName:
		return s.nameInput.Focus()
	case fieldGamertag:
		return s.gamertagInput.Focus()
	}
	return nil
}

func (s *SignupScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.nameInput, cmd = s.nameInput.Update(msg)
	case fieldGamertag:
		s.gamertagInput, cmd = s.gamertagInput.Update(msg)
	}
	return s, cmd
}

// start validates the form, records the sign-up, and replaces this screen
// with the live-coaching overlay.
func (s *SignupScreen) start() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(s.nameInput.Value())
	gamertag := strings.TrimSpace(s.gamertagInput.Value())

	s.nameInput.Submit(name != "")
	s.gamertagInput.Submit(gamertag != "")

	if name == "" || gamertag == "" {
		s.errMsg = "Name and gamertag are required"
		return s, nil
	}
	s.errMsg = ""

	visitor := booth.Visitor{
		Name:     name,
		Gamertag: gamertag,
		Game:     s.games[s.gameIndex],
	}

	boothCoach := s.boothCoach
	eventRepo := s.eventRepo
	return s, func() tea.Msg {
		if eventRepo != nil {
			_ = eventRepo.AppendVisitor(context.Background(), store.VisitorEventData{
				Name:     visitor.Name,
				Gamertag: visitor.Gamertag,
				Game:     string(visitor.Game),
			})
		}
		session := booth.NewSession(visitor)
		return router.ReplaceScreenMsg{Screen: overlay.New(session, boothCoach, eventRepo)}
	}
}

// GameLabel returns the display name for a game category.
func GameLabel(g verify.Game) string {
	switch g {
	case verify.GameMOBA:
		return "MOBA"
	case verify.GameFPS:
		return "FPS"
	case verify.GameStrategy:
		return "Strategy"
	}
	return string(g)
}

func (s *SignupScreen) View(width, height int) string {
	label := func(text string, focused bool) string {
		if focused {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)
	}

	var rows []string
	rows = append(rows,
		label("Name", s.focus == fieldName),
		s.nameInput.View(),
		"",
		label("Gamertag", s.focus == fieldGamertag),
		s.gamertagInput.View(),
		"",
		label("Game", s.focus == fieldGame),
		s.renderGamePicker(),
		"",
		components.NewButton("START SESSION", s.focus == fieldStart, nil).View(),
	)

	if s.errMsg != "" {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	form := theme.Card.Render(strings.Join(rows, "\n"))

	content := theme.Title.Render("PLAYER SIGN-UP") + "\n\n" + form

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *SignupScreen) renderGamePicker() string {
	var parts []string
	for i, g := range s.games {
		name := GameLabel(g)
		if i == s.gameIndex {
			parts = append(parts, theme.Selected.Render("[ "+name+" ]"))
		} else {
			parts = append(parts, theme.Unselected.Render("  "+name+"  "))
		}
	}
	return strings.Join(parts, " ")
}

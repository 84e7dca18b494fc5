package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tgillard/clutch/internal/router"
	"github.com/tgillard/clutch/internal/screen"
	"github.com/tgillard/clutch/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerEnd    = 600 * time.Millisecond
	taglineEnd   = 1400 * time.Millisecond
	totalDur     = 2400 * time.Millisecond
)

const bannerArt = ` ██████╗██╗     ██╗   ██╗████████╗ ██████╗██╗  ██╗
██╔════╝██║     ██║   ██║╚══██╔══╝██╔════╝██║  ██║
██║     ██║     ██║   ██║   ██║   ██║     ███████║
██║     ██║     ██║   ██║   ██║   ██║     ██╔══██║
╚██████╗███████╗╚██████╔╝   ██║   ╚██████╗██║  ██║
 ╚═════╝╚══════╝ ╚═════╝    ╚═╝    ╚═════╝╚═╝  ╚═╝`

const tagline = "AI coaching you can actually trust"

// pulse frames animate the prompt line
var pulseFrames = []string{"▸", "▹"}

type tickMsg time.Time

// WelcomeScreen shows the attract loop before transitioning to the home
// screen. Booth visitors walk up mid-animation, so any key skips ahead once
// the banner has landed.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		if w.elapsed >= bannerEnd {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(bannerArt))

	if w.elapsed >= bannerEnd {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(tagline))
	}

	if w.elapsed >= taglineEnd {
		frame := pulseFrames[w.tickCount%len(pulseFrames)]
		prompt := frame + " Press any key to play " + frame
		sections = append(sections, "", "",
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(prompt))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Package recap implements the post-game summary screen.
package recap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tgillard/clutch/internal/booth"
	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/router"
	"github.com/tgillard/clutch/internal/screen"
	"github.com/tgillard/clutch/internal/ui/components"
	"github.com/tgillard/clutch/internal/ui/layout"
	"github.com/tgillard/clutch/internal/ui/theme"
)

// recapReadyMsg carries the generated narrative summary.
type recapReadyMsg struct {
	Recap *coach.Recap
	Err   error
}

// RecapScreen shows the session totals plus a coach-written narrative.
type RecapScreen struct {
	summary   booth.Recap
	coachText *coach.Recap
	initCmd   tea.Cmd
	loading   bool
	showLog   bool
}

var _ screen.Screen = (*RecapScreen)(nil)
var _ screen.KeyHintProvider = (*RecapScreen)(nil)

// New creates a RecapScreen for a finished session. boothCoach writes the
// narrative summary asynchronously.
func New(summary booth.Recap, boothCoach coach.Coach) *RecapScreen {
	s := &RecapScreen{summary: summary, loading: boothCoach != nil}
	if boothCoach != nil {
		s.initCmd = func() tea.Msg {
			r, err := boothCoach.GenerateRecap(context.Background(), summary.RecapInput())
			return recapReadyMsg{Recap: r, Err: err}
		}
	}
	return s
}

func (s *RecapScreen) Init() tea.Cmd {
	return s.initCmd
}

func (s *RecapScreen) Title() string {
	return "Recap"
}

func (s *RecapScreen) KeyHints() []layout.KeyHint {
	logHint := "Show rejections"
	if s.showLog {
		logHint = "Hide rejections"
	}
	return []layout.KeyHint{
		{Key: "R", Description: logHint},
		{Key: "Enter", Description: "Done"},
	}
}

func (s *RecapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recapReadyMsg:
		s.loading = false
		if msg.Err == nil {
			s.coachText = msg.Recap
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			s.showLog = !s.showLog
			return s, nil
		case "enter", "esc", " ":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *RecapScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("MATCH RECAP"),
		theme.Subtitle.Render(fmt.Sprintf("%s · %s · %s",
			s.summary.Gamertag, strings.ToUpper(string(s.summary.Game)), formatDuration(s.summary.Duration.Seconds()))))

	sections = append(sections, s.renderCounters())

	if s.summary.AdviceShown > 0 {
		rate := float64(s.summary.Accepted) / float64(s.summary.AdviceShown)
		bar := components.NewProgressBar("Accept rate", rate, true, min(width-8, 50))
		sections = append(sections, bar.View())
	}

	if s.loading {
		sections = append(sections, theme.Hint.Render("The coach is writing your recap..."))
	} else if s.coachText != nil {
		sections = append(sections, s.renderCoachText(width))
	}

	if s.showLog {
		sections = append(sections, s.renderRejectionLog())
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *RecapScreen) renderCounters() string {
	cell := func(style lipgloss.Style, n int, label string) string {
		return style.Render(fmt.Sprintf("%d", n)) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	}
	row := strings.Join([]string{
		cell(theme.Body, s.summary.AdviceShown, "advice"),
		cell(theme.Accepted, s.summary.Accepted, "accepted"),
		cell(theme.Rewritten, s.summary.Rewritten, "rewritten"),
		cell(theme.Rejected, s.summary.Rejected, "rejected"),
	}, "   ")
	return theme.Card.Render(row)
}

func (s *RecapScreen) renderCoachText(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(s.coachText.Summary))
	for _, h := range s.coachText.Highlights {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render("★ "+h))
	}
	if s.coachText.FocusArea != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("Next up: "+s.coachText.FocusArea))
	}
	boxWidth := min(width-8, 70)
	return theme.Card.Width(boxWidth).Render(b.String())
}

func (s *RecapScreen) renderRejectionLog() string {
	if len(s.summary.Rejections) == 0 {
		return theme.Hint.Render("Nothing got past us — no rejections this match.")
	}
	var b strings.Builder
	b.WriteString(theme.Rejected.Render("Rejected advice") + "\n")
	for _, r := range s.summary.Rejections {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(r) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

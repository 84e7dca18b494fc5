// Package overlay implements the live-coaching screen: a simulated match
// clock drives scripted events, the coach produces advice, and the verifier
// screens every line before it reaches the feed.
package overlay

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tgillard/clutch/internal/booth"
	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/router"
	"github.com/tgillard/clutch/internal/screen"
	"github.com/tgillard/clutch/internal/screens/recap"
	"github.com/tgillard/clutch/internal/store"
	"github.com/tgillard/clutch/internal/ui/components"
	"github.com/tgillard/clutch/internal/ui/layout"
	"github.com/tgillard/clutch/internal/ui/theme"
	"github.com/tgillard/clutch/internal/verify"
)

const (
	// One real second advances the match clock by ten simulated seconds,
	// so a full match plays out in about thirty seconds at the booth.
	tickInterval = time.Second
	clockStep    = 10 * time.Second

	// Ask the coach for a fresh line every few ticks.
	adviceInterval = 4

	maxFeedLines = 40
)

type tickMsg time.Time

type feedKind int

const (
	kindEvent feedKind = iota
	kindAdvice
)

// feedLine is one rendered row of the live feed.
type feedLine struct {
	kind    feedKind
	clock   time.Duration
	text    string
	verdict verify.Verdict
	shown   string
}

// OverlayScreen runs one visitor's simulated match with live verified
// coaching.
type OverlayScreen struct {
	session    *booth.Session
	boothCoach coach.Coach
	eventRepo  store.EventRepo

	feed      []feedLine
	tickCount int
	ending    bool
}

var _ screen.Screen = (*OverlayScreen)(nil)
var _ screen.StatusProvider = (*OverlayScreen)(nil)
var _ screen.KeyHintProvider = (*OverlayScreen)(nil)

// New creates the overlay for an already-started session.
func New(session *booth.Session, boothCoach coach.Coach, eventRepo store.EventRepo) *OverlayScreen {
	return &OverlayScreen{
		session:    session,
		boothCoach: boothCoach,
		eventRepo:  eventRepo,
	}
}

func (o *OverlayScreen) Init() tea.Cmd {
	if o.eventRepo != nil {
		sess := o.session
		repo := o.eventRepo
		go func() {
			_ = repo.AppendSession(context.Background(), store.SessionEventData{
				SessionID: sess.ID,
				Action:    "start",
				Gamertag:  sess.Visitor.Gamertag,
				Game:      string(sess.Visitor.Game),
			})
		}()
	}
	o.boothCoach.RequestAdvice(context.Background(), o.session.GameState())
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (o *OverlayScreen) Title() string {
	return o.session.Visitor.Gamertag
}

func (o *OverlayScreen) Status() string {
	clock := o.session.Match.Clock()
	mins := int(clock.Minutes())
	secs := int(clock.Seconds()) % 60
	return fmt.Sprintf("%s · %02d:%02d", strings.ToUpper(o.session.Match.Phase()), mins, secs)
}

func (o *OverlayScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "End match"},
	}
}

func (o *OverlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return o.handleTick()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return o, o.endSession()
		}
	}
	return o, nil
}

func (o *OverlayScreen) handleTick() (screen.Screen, tea.Cmd) {
	if o.ending {
		return o, nil
	}
	o.tickCount++

	for _, event := range o.session.Match.Advance(clockStep) {
		o.appendFeed(feedLine{
			kind:  kindEvent,
			clock: o.session.Match.Clock(),
			text:  event,
		})
	}

	if adv, ok := o.boothCoach.ConsumeAdvice(); ok && adv != nil {
		o.recordAdvice(*adv)
	}

	if o.session.Match.Finished() {
		return o, o.endSession()
	}

	if o.tickCount%adviceInterval == 0 {
		o.boothCoach.RequestAdvice(context.Background(), o.session.GameState())
	}

	return o, tick()
}

// recordAdvice runs advice through the session verifier, adds it to the
// feed, and persists the verdict.
func (o *OverlayScreen) recordAdvice(adv coach.Advice) {
	verdict := o.session.Record(adv)
	entry := o.session.Entries[len(o.session.Entries)-1]

	o.appendFeed(feedLine{
		kind:    kindAdvice,
		clock:   o.session.Match.Clock(),
		text:    adv.Text,
		verdict: verdict,
		shown:   entry.Shown,
	})

	if o.eventRepo != nil {
		repo := o.eventRepo
		data := store.AdviceEventData{
			SessionID:      o.session.ID,
			Advice:         adv.Text,
			Valid:          verdict.IsValid,
			ModifiedAdvice: verdict.ModifiedAdvice,
			Category:       verdict.Category,
			Confidence:     verdict.Confidence,
			Warning:        verdict.Warning,
		}
		go func() {
			_ = repo.AppendAdvice(context.Background(), data)
		}()
	}
}

func (o *OverlayScreen) appendFeed(line feedLine) {
	o.feed = append(o.feed, line)
	if len(o.feed) > maxFeedLines {
		o.feed = o.feed[len(o.feed)-maxFeedLines:]
	}
}

// endSession closes the session, persists the end event, and swaps in the
// recap screen.
func (o *OverlayScreen) endSession() tea.Cmd {
	if o.ending {
		return nil
	}
	o.ending = true

	sess := o.session
	boothCoach := o.boothCoach
	repo := o.eventRepo

	return func() tea.Msg {
		sess.End()
		summary := sess.BuildRecap()

		if repo != nil {
			_ = repo.AppendSession(context.Background(), store.SessionEventData{
				SessionID:       sess.ID,
				Action:          "end",
				Gamertag:        sess.Visitor.Gamertag,
				Game:            string(sess.Visitor.Game),
				DurationSecs:    int(summary.Duration.Seconds()),
				AdviceShown:     summary.AdviceShown,
				AdviceRewritten: summary.Rewritten,
				AdviceRejected:  summary.Rejected,
			})
		}

		return router.ReplaceScreenMsg{Screen: recap.New(summary, boothCoach)}
	}
}

func (o *OverlayScreen) View(width, height int) string {
	var b strings.Builder

	progress := float64(o.session.Match.Clock()) / float64(booth.MatchLength)
	bar := components.NewProgressBar("Match", progress, true, min(width-4, 60))
	b.WriteString("  " + bar.View() + "\n\n")

	feedHeight := height - 4
	if feedHeight < 1 {
		feedHeight = 1
	}

	lines := o.renderFeed(width)
	if len(lines) > feedHeight {
		lines = lines[len(lines)-feedHeight:]
	}
	if len(o.feed) == 0 {
		b.WriteString(theme.Hint.Render("  Warming up..."))
	} else {
		b.WriteString(strings.Join(lines, "\n"))
	}

	return b.String()
}

func (o *OverlayScreen) renderFeed(width int) []string {
	var lines []string
	for _, l := range o.feed {
		stamp := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %02d:%02d ", int(l.clock.Minutes()), int(l.clock.Seconds())%60))

		switch l.kind {
		case kindEvent:
			lines = append(lines, stamp+lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("▪ "+l.text))

		case kindAdvice:
			badge, style := verdictBadge(l.verdict)
			row := stamp + badge + " "
			if l.shown != "" {
				row += lipgloss.NewStyle().Foreground(theme.Text).Render(l.shown)
			} else {
				row += lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true).Render(l.text)
			}
			lines = append(lines, row)
			if l.verdict.Warning != "" {
				lines = append(lines, "        "+style.Bold(false).Render("└ "+l.verdict.Warning))
			}
		}
	}
	return lines
}

// verdictBadge picks the feed badge for a verdict.
func verdictBadge(v verify.Verdict) (string, lipgloss.Style) {
	switch {
	case !v.IsValid:
		return theme.Rejected.Render("✗ REJECTED"), theme.Rejected
	case v.ModifiedAdvice != "":
		return theme.Rewritten.Render("✎ REWRITTEN"), theme.Rewritten
	default:
		return theme.Accepted.Render("✓ COACH"), theme.Accepted
	}
}

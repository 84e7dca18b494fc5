package booth

import (
	"time"

	"github.com/tgillard/clutch/internal/verify"
)

// The booth runs a compressed, fully scripted match: a real game would take
// half an hour, a booth visitor gets about five minutes. Phases and events
// are driven by UI ticks advancing the match clock.

// phaseSchedule maps the match clock onto named phases, in order. The last
// entry is open-ended.
var phaseSchedule = []struct {
	name  string
	until time.Duration
}{
	{"draft", 20 * time.Second},
	{"early", 2 * time.Minute},
	{"mid", 4 * time.Minute},
	{"late", 1<<63 - 1},
}

// MatchLength is when the scripted match ends and the recap screen takes
// over.
const MatchLength = 5 * time.Minute

type matchEvent struct {
	at   time.Duration
	text string
}

// matchScripts hold the scripted event feed per game. Events seed the coach
// prompts and the recap highlights.
var matchScripts = map[verify.Game][]matchEvent{
	verify.GameMOBA: {
		{25 * time.Second, "Lanes assigned, first wave spawning"},
		{50 * time.Second, "Enemy jungler spotted top side"},
		{90 * time.Second, "First blood in the mid lane"},
		{2*time.Minute + 10*time.Second, "First tower taken bot side"},
		{3 * time.Minute, "Teamfight breaking out at the river"},
		{3*time.Minute + 40*time.Second, "Major objective spawning in thirty seconds"},
		{4*time.Minute + 20*time.Second, "Base race, both teams pushing"},
	},
	verify.GameFPS: {
		{25 * time.Second, "Pistol round, both teams on eco"},
		{55 * time.Second, "Bomb planted on the A site"},
		{95 * time.Second, "Clutch 1v2 retake attempt"},
		{2*time.Minute + 15*time.Second, "Enemy awp picked up an opening kill"},
		{3 * time.Minute, "Low economy, save round called"},
		{3*time.Minute + 45*time.Second, "Match point, full buy available"},
		{4*time.Minute + 25*time.Second, "Overtime, first to two rounds"},
	},
	verify.GameStrategy: {
		{25 * time.Second, "Opening build order underway"},
		{55 * time.Second, "Enemy expansion spotted by the scout"},
		{95 * time.Second, "First skirmish at the watchtower"},
		{2*time.Minute + 15*time.Second, "Tech advantage, upgrades finishing"},
		{3 * time.Minute, "Big push forming at the third base"},
		{3*time.Minute + 50*time.Second, "Economy stretched, armies trading"},
		{4*time.Minute + 30*time.Second, "Final engagement, everything committed"},
	},
}

// Match is the scripted match driving one booth session.
type Match struct {
	game   verify.Game
	clock  time.Duration
	cursor int
	events []string
}

// NewMatch starts a scripted match for game at clock zero.
func NewMatch(game verify.Game) *Match {
	return &Match{game: game}
}

// Advance moves the match clock forward and returns any events that came
// due, in script order.
func (m *Match) Advance(d time.Duration) []string {
	m.clock += d

	script := matchScripts[m.game]
	var due []string
	for m.cursor < len(script) && script[m.cursor].at <= m.clock {
		due = append(due, script[m.cursor].text)
		m.cursor++
	}
	m.events = append(m.events, due...)
	return due
}

// Clock returns the current match clock.
func (m *Match) Clock() time.Duration {
	return m.clock
}

// Phase returns the current phase name.
func (m *Match) Phase() string {
	for _, p := range phaseSchedule {
		if m.clock < p.until {
			return p.name
		}
	}
	return phaseSchedule[len(phaseSchedule)-1].name
}

// Finished reports whether the scripted match has run its course.
func (m *Match) Finished() bool {
	return m.clock >= MatchLength
}

// Events returns all events emitted so far, oldest first.
func (m *Match) Events() []string {
	out := make([]string, len(m.events))
	copy(out, m.events)
	return out
}

// RecentEvents returns up to n of the latest events, oldest first.
func (m *Match) RecentEvents(n int) []string {
	if len(m.events) <= n {
		return m.Events()
	}
	out := make([]string, n)
	copy(out, m.events[len(m.events)-n:])
	return out
}

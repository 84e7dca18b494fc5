package coach

import (
	"fmt"
	"strings"
	"time"
)

const adviceSystemPrompt = `You are a live esports coach at an event booth. You watch a match in progress and call out one short, actionable piece of advice at a time. Keep it punchy and specific to the current situation.`

func buildAdviceUserMessage(state GameState) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Game: %s\n", state.Game))
	b.WriteString(fmt.Sprintf("Player: %s\n", state.Gamertag))
	b.WriteString(fmt.Sprintf("Phase: %s\n", state.Phase))
	b.WriteString(fmt.Sprintf("Game clock: %s\n", formatClock(state.Clock)))

	b.WriteString("\nRecent events:\n")
	if len(state.Events) == 0 {
		b.WriteString("None yet\n")
	} else {
		for _, e := range state.Events {
			b.WriteString(fmt.Sprintf("- %s\n", e))
		}
	}

	b.WriteString(`
Instructions:
Give ONE piece of advice for this exact moment:
1. One sentence, under 20 words, phrased as something the player can do right now.
2. Pick the topic that matters most given the phase and recent events.
3. Set urgency: "immediate" for fight-now calls, "reactive" for defensive responses, "positional" for setup and macro.
4. No greetings, no filler, no multiple suggestions.`)

	return b.String()
}

const recapSystemPrompt = `You are an esports coach writing a short, upbeat post-game recap for a booth visitor who just finished a demo match. Be encouraging but concrete.`

// RecapInput carries the session facts the recap prompt is built from.
type RecapInput struct {
	Gamertag        string
	Game            string
	Duration        time.Duration
	AdviceShown     int
	AdviceRewritten int
	AdviceRejected  int
	Events          []string
}

func buildRecapUserMessage(input RecapInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Player: %s\n", input.Gamertag))
	b.WriteString(fmt.Sprintf("Game: %s\n", input.Game))
	b.WriteString(fmt.Sprintf("Match length: %s\n", formatClock(input.Duration)))
	b.WriteString(fmt.Sprintf("Advice shown: %d (%d rewritten, %d rejected)\n",
		input.AdviceShown, input.AdviceRewritten, input.AdviceRejected))

	b.WriteString("\nMatch events:\n")
	if len(input.Events) == 0 {
		b.WriteString("None recorded\n")
	} else {
		for _, e := range input.Events {
			b.WriteString(fmt.Sprintf("- %s\n", e))
		}
	}

	b.WriteString(`
Instructions:
Write the recap:
1. A 2-3 sentence summary of how the match went. Reference actual events where possible.
2. 1-3 highlight moments, 5-10 words each.
3. One focus area to practice next, phrased as a single actionable sentence.
Keep the tone warm and brief. The visitor reads this on a screen for about twenty seconds.`)

	return b.String()
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

package verify

import (
	"strings"
	"testing"
	"time"
)

func TestVerifyAdvice_InvalidPatternRejected(t *testing.T) {
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("Just facecheck the bush, nobody is there", nil)

	if verdict.IsValid {
		t.Fatal("expected rejection for invalid pattern")
	}
	if verdict.Category != "positioning" {
		t.Errorf("got category %q, want %q", verdict.Category, "positioning")
	}
	if verdict.Confidence != 0.3 {
		t.Errorf("got confidence %f, want 0.3", verdict.Confidence)
	}
	if verdict.ModifiedAdvice != "Use a ward instead of walking in blind" {
		t.Errorf("got modified advice %q", verdict.ModifiedAdvice)
	}
	if verdict.Warning == "" {
		t.Error("expected a warning on rejection")
	}
	if got := len(v.SessionErrors()); got != 1 {
		t.Errorf("got %d log entries, want 1", got)
	}
}

func TestVerifyAdvice_LogIsCumulative(t *testing.T) {
	v := New(GameMOBA)
	v.VerifyAdvice("facecheck the bush", nil)
	v.VerifyAdvice("facecheck the bush", nil)

	if got := len(v.SessionErrors()); got != 2 {
		t.Errorf("got %d log entries, want 2 (log must not deduplicate)", got)
	}
}

func TestVerifyAdvice_InvalidPassRunsBeforePositive(t *testing.T) {
	// "engage without vision" belongs to the vision principle, which comes
	// after positioning in the list. The text also contains positioning's
	// valid pattern, but the invalid scan across all principles runs first.
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("Stay behind minions and engage without vision", nil)

	if verdict.IsValid {
		t.Fatal("expected rejection: invalid scan must precede positive matching")
	}
	if verdict.Category != "vision" {
		t.Errorf("got category %q, want %q", verdict.Category, "vision")
	}
	if verdict.ModifiedAdvice != "Ward before engaging" {
		t.Errorf("got correction %q, want %q", verdict.ModifiedAdvice, "Ward before engaging")
	}
}

func TestVerifyAdvice_AbsoluteLanguageDoesNotMaskInvalidPattern(t *testing.T) {
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("I should always engage without vision", nil)

	if verdict.IsValid {
		t.Fatal("expected rejection")
	}
	if verdict.ModifiedAdvice != "Ward before engaging" {
		t.Errorf("got correction %q, want %q", verdict.ModifiedAdvice, "Ward before engaging")
	}
}

func TestVerifyAdvice_PositiveMatch(t *testing.T) {
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("Stay behind minions", nil)

	if !verdict.IsValid {
		t.Fatalf("expected acceptance, got warning %q", verdict.Warning)
	}
	if verdict.Category != "positioning" {
		t.Errorf("got category %q, want %q", verdict.Category, "positioning")
	}
	if verdict.Confidence < 0.3 {
		t.Errorf("got confidence %f, want >= 0.3", verdict.Confidence)
	}
	if verdict.Warning != "" {
		t.Errorf("unexpected warning %q", verdict.Warning)
	}
	if verdict.ModifiedAdvice != "" {
		t.Errorf("advice without an enhancement keyword must pass through unchanged, got %q", verdict.ModifiedAdvice)
	}
}

func TestVerifyAdvice_ContextualEnhancement(t *testing.T) {
	v := New(GameMOBA)
	advice := "Respect the enemy threat range and hold your position"
	verdict := v.VerifyAdvice(advice, nil)

	if !verdict.IsValid {
		t.Fatalf("expected acceptance, got warning %q", verdict.Warning)
	}
	if verdict.Category != "positioning" {
		t.Errorf("got category %q, want %q", verdict.Category, "positioning")
	}
	if !strings.HasPrefix(verdict.ModifiedAdvice, advice) {
		t.Errorf("enhancement must append to the original advice, got %q", verdict.ModifiedAdvice)
	}
	if len(verdict.ModifiedAdvice) <= len(advice) {
		t.Error("expected a clarifying clause to be appended")
	}
}

func TestVerifyAdvice_GenericActionable(t *testing.T) {
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("Communicate more with your team, and practice that in ranked", nil)

	if !verdict.IsValid {
		t.Fatalf("expected acceptance, got warning %q", verdict.Warning)
	}
	if verdict.Confidence != 0.6 {
		t.Errorf("got confidence %f, want 0.6", verdict.Confidence)
	}
	if verdict.Category != "" {
		t.Errorf("generic path must not claim a category, got %q", verdict.Category)
	}
}

func TestVerifyAdvice_GenericAbsoluteLanguageRejected(t *testing.T) {
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("Try this trick, a win is guaranteed", nil)

	if verdict.IsValid {
		t.Fatal("expected rejection for absolute language")
	}
	if verdict.Confidence != 0.6 {
		t.Errorf("got confidence %f, want 0.6", verdict.Confidence)
	}
	if verdict.Warning == "" {
		t.Error("expected a generic mismatch warning")
	}
	if verdict.ModifiedAdvice != "" {
		t.Errorf("generic rejection carries no replacement, got %q", verdict.ModifiedAdvice)
	}
	// Only invalid-pattern rejections are logged.
	if got := len(v.SessionErrors()); got != 0 {
		t.Errorf("got %d log entries, want 0", got)
	}
}

func TestVerifyAdvice_GenericNotActionableRejected(t *testing.T) {
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("That round was unlucky", nil)

	if verdict.IsValid {
		t.Fatal("expected rejection: no actionable term")
	}
}

func TestVerifyAdvice_UnknownGameFallsThroughToGeneric(t *testing.T) {
	v := New(Game("kart-racer"))

	// Would be a positive positioning match under the moba syllabus.
	verdict := v.VerifyAdvice("Stay behind minions", nil)
	if verdict.IsValid {
		t.Error("no syllabus and no actionable term: expected rejection")
	}
	if verdict.Confidence != 0.6 {
		t.Errorf("got confidence %f, want 0.6", verdict.Confidence)
	}

	verdict = v.VerifyAdvice("Focus on your starts", nil)
	if !verdict.IsValid {
		t.Error("actionable advice should pass the generic heuristic")
	}
}

func TestVerifyAdvice_Idempotent(t *testing.T) {
	v := New(GameFPS)
	const advice = "Keep your crosshair at head level when you clear angles"

	first := v.VerifyAdvice(advice, nil)
	second := v.VerifyAdvice(advice, nil)

	if first.IsValid != second.IsValid ||
		first.Confidence != second.Confidence ||
		first.ModifiedAdvice != second.ModifiedAdvice ||
		first.Category != second.Category {
		t.Errorf("verdicts differ across identical calls: %+v vs %+v", first, second)
	}
}

func TestVerifyAdvice_EmptyAdvice(t *testing.T) {
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("", nil)

	if verdict.IsValid {
		t.Error("empty advice has no actionable term: expected rejection")
	}
	if got := len(v.SessionErrors()); got != 0 {
		t.Errorf("got %d log entries, want 0", got)
	}
}

func TestCorrectionFor_FallsBackToCategorySentence(t *testing.T) {
	// "skip the minions" has no correction entry; the farming sentence
	// from the generic table applies.
	v := New(GameMOBA)
	verdict := v.VerifyAdvice("Skip the minions and roam all game", nil)

	if verdict.IsValid {
		t.Fatal("expected rejection")
	}
	if verdict.ModifiedAdvice != genericAdvice["farming"] {
		t.Errorf("got %q, want the canned farming sentence", verdict.ModifiedAdvice)
	}
}

func TestCorrectionFor_BidirectionalContainment(t *testing.T) {
	// The correction pattern "scout" is a substring of the matched invalid
	// pattern "no need to scout": the reverse containment direction.
	v := New(GameStrategy)
	verdict := v.VerifyAdvice("There is no need to scout this matchup", nil)

	if verdict.IsValid {
		t.Fatal("expected rejection")
	}
	if verdict.ModifiedAdvice != "Scout on a timer so you are never surprised" {
		t.Errorf("got correction %q", verdict.ModifiedAdvice)
	}
}

func TestCorrectionFor_UnknownCategoryFallback(t *testing.T) {
	v := NewWithPrinciples([]Principle{
		{
			Category:        "mindset",
			InvalidPatterns: []string{"tilt is good"},
		},
	})
	verdict := v.VerifyAdvice("Honestly, tilt is good for focus", nil)

	if verdict.ModifiedAdvice != fallbackAdvice {
		t.Errorf("got %q, want %q", verdict.ModifiedAdvice, fallbackAdvice)
	}
}

func TestMatchConfidence_ClampedToOne(t *testing.T) {
	p := Principle{
		Category:      "aim",
		Keywords:      []string{"aim"},
		ValidPatterns: []string{"pre-aim common angles"},
	}
	// 1 keyword + 1 pattern hit = score 3 over denominator 2.
	conf := matchConfidence(p, "pre-aim common angles")
	if conf != 1.0 {
		t.Errorf("got confidence %f, want clamp to 1.0", conf)
	}
}

func TestMatchConfidence_EmptyPrinciple(t *testing.T) {
	if conf := matchConfidence(Principle{Category: "empty"}, "anything"); conf != 0 {
		t.Errorf("got confidence %f, want 0", conf)
	}
}

func TestValidateTimeSensitivity_ImmediateTier(t *testing.T) {
	v := New(GameMOBA)

	if !v.ValidateTimeSensitivity("Engage now", time.Now().Add(-2500*time.Millisecond), 0) {
		t.Error("immediate advice at 2.5s should still be valid")
	}
	if v.ValidateTimeSensitivity("Engage now", time.Now().Add(-3500*time.Millisecond), 0) {
		t.Error("immediate advice at 3.5s should be stale")
	}
}

func TestValidateTimeSensitivity_ReactiveTier(t *testing.T) {
	v := New(GameMOBA)

	if !v.ValidateTimeSensitivity("Retreat to the tower", time.Now().Add(-4*time.Second), 0) {
		t.Error("reactive advice at 4s should still be valid")
	}
	if v.ValidateTimeSensitivity("Retreat to the tower", time.Now().Add(-6*time.Second), 0) {
		t.Error("reactive advice at 6s should be stale")
	}
}

func TestValidateTimeSensitivity_PositionalTier(t *testing.T) {
	v := New(GameMOBA)

	if !v.ValidateTimeSensitivity("Ward the river", time.Now().Add(-8*time.Second), 0) {
		t.Error("positional advice at 8s should still be valid")
	}
	if v.ValidateTimeSensitivity("Ward the river", time.Now().Add(-11*time.Second), 0) {
		t.Error("positional advice at 11s should be stale")
	}
}

func TestValidateTimeSensitivity_FirstTierWins(t *testing.T) {
	// "push" (immediate, 3s) and "defend" (reactive, 5s) both appear; the
	// immediate tier is checked first, so the advice is stale at 4s.
	v := New(GameFPS)
	if v.ValidateTimeSensitivity("Push up then defend the plant", time.Now().Add(-4*time.Second), 0) {
		t.Error("immediate tier must take priority over reactive")
	}
}

func TestValidateTimeSensitivity_NoTierNeverStale(t *testing.T) {
	v := New(GameMOBA)
	if !v.ValidateTimeSensitivity("Great rotation", time.Now().Add(-time.Hour), 0) {
		t.Error("advice with no urgency term never goes stale")
	}
}

func TestReset_ClearsLog(t *testing.T) {
	v := New(GameMOBA)
	v.VerifyAdvice("facecheck the bush", nil)
	v.Reset()

	if got := len(v.SessionErrors()); got != 0 {
		t.Errorf("got %d log entries after reset, want 0", got)
	}

	// The syllabus binding survives the reset.
	if verdict := v.VerifyAdvice("facecheck the bush", nil); verdict.IsValid {
		t.Error("expected rejection after reset: principles must be retained")
	}
}

func TestSessionErrors_ReturnsCopy(t *testing.T) {
	v := New(GameMOBA)
	v.VerifyAdvice("facecheck the bush", nil)

	snapshot := v.SessionErrors()
	snapshot[0] = "tampered"

	if got := v.SessionErrors()[0]; got == "tampered" {
		t.Error("mutating the returned slice must not affect the verifier")
	}
}

func TestSessionErrors_EntryContainsOriginalAdvice(t *testing.T) {
	v := New(GameMOBA)
	const advice = "Facecheck the bush on repeat"
	v.VerifyAdvice(advice, nil)

	entries := v.SessionErrors()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !strings.Contains(entries[0], advice) {
		t.Errorf("log entry %q must contain the original advice text", entries[0])
	}
}

package booth

import (
	"strings"
	"testing"
	"time"

	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/verify"
)

func testVisitor() Visitor {
	return Visitor{Name: "Terry", Gamertag: "shotcaller", Game: verify.GameMOBA}
}

func TestSession_RecordAccepted(t *testing.T) {
	s := NewSession(testVisitor())

	verdict := s.Record(coach.Advice{Text: "Stay behind minions", IssuedAt: time.Now()})
	if !verdict.IsValid {
		t.Fatalf("expected accepted verdict, got %+v", verdict)
	}
	if len(s.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(s.Entries))
	}
	if s.Entries[0].Shown != "Stay behind minions" {
		t.Errorf("expected original text on screen, got %q", s.Entries[0].Shown)
	}
	if s.Rejected != 0 || s.Rewritten != 0 {
		t.Errorf("unexpected counters: rejected=%d rewritten=%d", s.Rejected, s.Rewritten)
	}
}

func TestSession_RecordRejectedShowsCorrection(t *testing.T) {
	s := NewSession(testVisitor())

	verdict := s.Record(coach.Advice{Text: "Just engage without vision", IssuedAt: time.Now()})
	if verdict.IsValid {
		t.Fatal("expected rejection")
	}
	if s.Rejected != 1 {
		t.Errorf("expected 1 rejection, got %d", s.Rejected)
	}
	if s.Entries[0].Shown != "Ward before engaging" {
		t.Errorf("expected correction on screen, got %q", s.Entries[0].Shown)
	}

	// The rejection lands in the verifier's session log.
	errs := s.Verifier.SessionErrors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 logged rejection, got %d", len(errs))
	}
	if !strings.Contains(errs[0], "Just engage without vision") {
		t.Errorf("log entry missing original advice: %q", errs[0])
	}
}

func TestSession_RecordRewrittenCountsOnce(t *testing.T) {
	s := NewSession(testVisitor())

	// Accepted positioning advice with the "position" keyword gets an
	// appended clause, which counts as a rewrite.
	verdict := s.Record(coach.Advice{Text: "Respect the enemy threat range and hold your position", IssuedAt: time.Now()})
	if !verdict.IsValid {
		t.Fatalf("expected accepted verdict, got %+v", verdict)
	}
	if verdict.ModifiedAdvice == "" {
		t.Fatal("expected enhanced advice")
	}
	if s.Rewritten != 1 {
		t.Errorf("expected 1 rewrite, got %d", s.Rewritten)
	}
	if s.Rejected != 0 {
		t.Errorf("expected 0 rejections, got %d", s.Rejected)
	}
	if s.Entries[0].Shown != verdict.ModifiedAdvice {
		t.Errorf("expected enhanced text on screen, got %q", s.Entries[0].Shown)
	}
}

func TestScreen_RejectionWithoutReplacement(t *testing.T) {
	got := Screen("anything", verify.Verdict{IsValid: false})
	if got != "" {
		t.Errorf("expected empty screen text, got %q", got)
	}
}

func TestSession_Timely(t *testing.T) {
	s := NewSession(testVisitor())

	fresh := AdviceEntry{Original: "Engage now", IssuedAt: time.Now()}
	if !s.Timely(fresh) {
		t.Error("fresh immediate advice should be timely")
	}

	stale := AdviceEntry{Original: "Engage now", IssuedAt: time.Now().Add(-4 * time.Second)}
	if s.Timely(stale) {
		t.Error("4s-old immediate advice should be stale")
	}
}

func TestSession_BuildRecap(t *testing.T) {
	s := NewSession(testVisitor())
	s.Match.Advance(MatchLength)

	s.Record(coach.Advice{Text: "Stay behind minions", IssuedAt: time.Now()})
	s.Record(coach.Advice{Text: "Just engage without vision", IssuedAt: time.Now()})
	s.Record(coach.Advice{Text: "Try to freeze the wave", IssuedAt: time.Now()})
	s.End()

	recap := s.BuildRecap()
	if recap.SessionID != s.ID {
		t.Errorf("recap session ID mismatch")
	}
	if recap.AdviceShown != 3 {
		t.Errorf("expected 3 shown, got %d", recap.AdviceShown)
	}
	if recap.Accepted != 2 {
		t.Errorf("expected 2 accepted, got %d", recap.Accepted)
	}
	if recap.Rejected != 1 {
		t.Errorf("expected 1 rejected, got %d", recap.Rejected)
	}
	if len(recap.Rejections) != 1 {
		t.Errorf("expected 1 rejection log entry, got %d", len(recap.Rejections))
	}
	if len(recap.Events) != len(matchScripts[verify.GameMOBA]) {
		t.Errorf("expected full event feed in recap, got %d", len(recap.Events))
	}

	input := recap.RecapInput()
	if input.Gamertag != "shotcaller" || input.AdviceShown != 3 || input.AdviceRejected != 1 {
		t.Errorf("recap input mismatch: %+v", input)
	}
}

func TestSession_EndIsIdempotent(t *testing.T) {
	s := NewSession(testVisitor())
	s.End()
	first := s.EndedAt
	time.Sleep(5 * time.Millisecond)
	s.End()
	if !s.EndedAt.Equal(first) {
		t.Error("second End changed the end time")
	}
}

func TestSession_UniqueIDs(t *testing.T) {
	a := NewSession(testVisitor())
	b := NewSession(testVisitor())
	if a.ID == b.ID {
		t.Error("expected unique session IDs")
	}
	if a.ID == "" {
		t.Error("expected non-empty session ID")
	}
}

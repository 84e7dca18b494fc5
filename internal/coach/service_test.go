package coach

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/tgillard/clutch/internal/llm"
	"github.com/tgillard/clutch/internal/verify"
)

func validAdviceJSON() json.RawMessage {
	return json.RawMessage(`{
		"advice": "Ward the river before the next objective spawns",
		"topic": "vision",
		"urgency": "positional"
	}`)
}

func testGameState() GameState {
	return GameState{
		Game:     verify.GameMOBA,
		Gamertag: "shotcaller",
		Phase:    "mid",
		Clock:    14 * time.Minute,
		Events:   []string{"First tower taken bot side"},
	}
}

func TestService_GeneratesAdvice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validAdviceJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAdvice(t.Context(), testGameState())

	// Poll for result.
	var advice *Advice
	var ok bool
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		advice, ok = svc.ConsumeAdvice()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !ok || advice == nil {
		t.Fatal("expected advice to be generated")
	}

	if advice.Text != "Ward the river before the next objective spawns" {
		t.Errorf("unexpected advice text: %q", advice.Text)
	}
	if advice.Topic != "vision" {
		t.Errorf("expected topic 'vision', got %q", advice.Topic)
	}
	if advice.Urgency != UrgencyPositional {
		t.Errorf("expected urgency 'positional', got %q", advice.Urgency)
	}
	if advice.Source != "llm" {
		t.Errorf("expected source 'llm', got %q", advice.Source)
	}
	if advice.IssuedAt.IsZero() {
		t.Error("expected IssuedAt to be set")
	}
}

func TestService_ConsumeClearsAdvice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validAdviceJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAdvice(t.Context(), testGameState())

	// Wait for generation.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := svc.ConsumeAdvice(); ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Second consume should return false.
	_, ok := svc.ConsumeAdvice()
	if ok {
		t.Error("expected second ConsumeAdvice to return false")
	}
}

func TestService_LLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAdvice(t.Context(), testGameState())

	// Wait a bit for async completion.
	time.Sleep(100 * time.Millisecond)

	advice, ok := svc.ConsumeAdvice()
	if ok && advice != nil {
		t.Error("expected no advice on LLM error")
	}
}

func TestService_SchemaAndPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validAdviceJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestAdvice(t.Context(), testGameState())

	// Wait for generation.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := svc.ConsumeAdvice(); ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "coaching-advice" {
		t.Error("expected schema name 'coaching-advice'")
	}
}

func TestService_GenerateRecap(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "A scrappy match with a strong finish.",
			"highlights": ["Clean first rotation", "Late game ward coverage"],
			"focus_area": "Practice wave control in the early game."
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	recap, err := svc.GenerateRecap(t.Context(), RecapInput{
		Gamertag:    "shotcaller",
		Game:        "moba",
		Duration:    18 * time.Minute,
		AdviceShown: 6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recap.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(recap.Highlights) != 2 {
		t.Errorf("expected 2 highlights, got %d", len(recap.Highlights))
	}
	if recap.FocusArea == "" {
		t.Error("expected non-empty focus area")
	}

	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "match-recap" {
		t.Error("expected schema name 'match-recap'")
	}
}

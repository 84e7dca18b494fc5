package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tgillard/clutch/internal/llm"
)

// Coach produces advice asynchronously. Implemented by Service (LLM-backed)
// and Simulator (scripted).
type Coach interface {
	RequestAdvice(ctx context.Context, state GameState)
	ConsumeAdvice() (*Advice, bool)
	GenerateRecap(ctx context.Context, input RecapInput) (*Recap, error)
}

// Service generates coaching advice via an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Advice
	err     error
	ready   bool
}

// NewService creates an LLM-backed coach.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestAdvice starts async advice generation. Only one request is
// in-flight at a time — new requests replace pending ones.
func (s *Service) RequestAdvice(ctx context.Context, state GameState) {
	go func() {
		advice, err := s.generate(ctx, state)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = advice
		s.err = err
		s.ready = true
	}()
}

// ConsumeAdvice returns the pending advice if one is ready.
// Returns (nil, false) if nothing is ready yet. After consumption the
// pending slot is cleared.
func (s *Service) ConsumeAdvice() (*Advice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	advice := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return advice, advice != nil
}

type adviceOutput struct {
	Advice  string `json:"advice"`
	Topic   string `json:"topic"`
	Urgency string `json:"urgency"`
}

func (s *Service) generate(ctx context.Context, state GameState) (*Advice, error) {
	ctx = llm.WithPurpose(ctx, "advice")

	req := llm.Request{
		System: adviceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdviceUserMessage(state)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}

	return &Advice{
		Text:     out.Advice,
		Topic:    out.Topic,
		Urgency:  Urgency(out.Urgency),
		IssuedAt: time.Now(),
		Source:   "llm",
	}, nil
}

// Recap is the structured post-game summary.
type Recap struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	FocusArea  string   `json:"focus_area"`
}

// GenerateRecap produces a post-game recap synchronously. Recaps happen on
// a dedicated screen, so the caller can afford to block behind a spinner.
func (s *Service) GenerateRecap(ctx context.Context, input RecapInput) (*Recap, error) {
	ctx = llm.WithPurpose(ctx, "recap")

	req := llm.Request{
		System: recapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRecapUserMessage(input)},
		},
		Schema:      RecapSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("recap generation: %w", err)
	}

	var recap Recap
	if err := json.Unmarshal(resp.Content, &recap); err != nil {
		return nil, fmt.Errorf("parse recap response: %w", err)
	}
	return &recap, nil
}

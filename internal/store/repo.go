package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// VisitorEventData records one booth sign-up.
type VisitorEventData struct {
	Name     string
	Gamertag string
	Game     string
}

// SessionEventData records the start or end of a booth session.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	Gamertag        string
	Game            string
	DurationSecs    int
	AdviceShown     int
	AdviceRewritten int
	AdviceRejected  int
}

// SessionEvent is a stored session event row.
type SessionEvent struct {
	ID        int
	Timestamp time.Time
	SessionEventData
}

// AdviceEventData records one verified piece of coaching advice.
type AdviceEventData struct {
	SessionID      string
	Advice         string
	Valid          bool
	ModifiedAdvice string
	Category       string
	Confidence     float64
	Warning        string
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request row.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage per request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage per model, for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the booth event log.
type EventRepo interface {
	// AppendVisitor records a sign-up.
	AppendVisitor(ctx context.Context, data VisitorEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendAdvice records a verified piece of advice.
	AppendAdvice(ctx context.Context, data AdviceEventData) error

	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns ended sessions, newest first.
	RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates usage per served model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

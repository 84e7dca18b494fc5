// Package verify screens AI-generated coaching advice against a per-game
// syllabus of expert principles. Matching is deliberately literal substring
// containment — the point is a deterministic, auditable filter in front of
// the language model, not a second language model.
package verify

import (
	"fmt"
	"strings"
	"time"
)

const (
	// invalidConfidence is the fixed confidence for invalid-pattern hits.
	invalidConfidence = 0.3

	// acceptThreshold is the minimum (exclusive) confidence for a positive
	// principle match to be accepted.
	acceptThreshold = 0.3

	// genericConfidence is the fixed confidence for advice that matched no
	// principle and was judged by the generic heuristic alone.
	genericConfidence = 0.6
)

// Verifier evaluates coaching advice for one booth session. It is not safe
// for concurrent use: each session owns exactly one instance and serializes
// calls to it.
type Verifier struct {
	principles []Principle
	errorLog   []string
}

// New creates a Verifier bound to the syllabus for game. An unrecognized
// game yields an empty rule set; all advice then falls through to the
// generic heuristic.
func New(game Game) *Verifier {
	return &Verifier{principles: Syllabus(game)}
}

// NewWithPrinciples creates a Verifier over an explicit principle list.
func NewWithPrinciples(principles []Principle) *Verifier {
	return &Verifier{principles: principles}
}

// VerifyAdvice decides whether advice may be shown to the player. Rejection
// is a normal outcome, never an error: the verdict carries replacement text
// and the original advice is recorded in the session error log. gctx is
// optional and may be nil.
func (v *Verifier) VerifyAdvice(advice string, gctx *GameContext) Verdict {
	lower := strings.ToLower(advice)

	// Invalid patterns are checked across every principle before any
	// positive matching, and the first hit anywhere wins.
	for _, p := range v.principles {
		for _, pat := range p.InvalidPatterns {
			if strings.Contains(lower, pat) {
				v.logRejection(advice)
				return Verdict{
					IsValid:        false,
					ModifiedAdvice: correctionFor(p, pat),
					Category:       p.Category,
					Confidence:     invalidConfidence,
					Warning:        fmt.Sprintf("advice contradicts expert %s principles", p.Category),
				}
			}
		}
	}

	for _, p := range v.principles {
		conf := matchConfidence(p, lower)
		if conf > acceptThreshold {
			verdict := Verdict{
				IsValid:    true,
				Category:   p.Category,
				Confidence: conf,
			}
			if enhanced, ok := enhanceAdvice(advice, lower, p.Category); ok {
				verdict.ModifiedAdvice = enhanced
			}
			return verdict
		}
	}

	return genericVerdict(lower)
}

// correctionFor looks up replacement text for a matched invalid pattern.
// A correction applies when its pattern contains the match or the match
// contains its pattern; first match in declaration order wins. Falls back
// to the category's canned sentence.
func correctionFor(p Principle, matched string) string {
	for _, c := range p.Corrections {
		if strings.Contains(matched, c.Pattern) || strings.Contains(c.Pattern, matched) {
			return c.Replacement
		}
	}
	if generic, ok := genericAdvice[p.Category]; ok {
		return generic
	}
	return fallbackAdvice
}

// matchConfidence scores advice against one principle: +1 per keyword
// present, +2 per valid pattern present, normalized by the rule count and
// clamped to 1.0.
func matchConfidence(p Principle, lower string) float64 {
	denom := len(p.Keywords) + len(p.ValidPatterns)
	if denom == 0 {
		return 0
	}

	score := 0
	for _, kw := range p.Keywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	for _, vp := range p.ValidPatterns {
		if strings.Contains(lower, vp) {
			score += 2
		}
	}

	conf := float64(score) / float64(denom)
	if conf > 1 {
		conf = 1
	}
	return conf
}

// enhancements appends a clarifying clause to accepted advice for specific
// category/keyword combinations. Everything else passes through unchanged.
var enhancements = []struct {
	category string
	keyword  string
	clause   string
}{
	{"positioning", "position", " Check the minimap before you commit to it."},
	{"itemization", "buy", " Check the enemy builds first."},
	{"economy", "save", " Call it early so the whole team saves together."},
}

func enhanceAdvice(advice, lower, category string) (string, bool) {
	for _, e := range enhancements {
		if e.category == category && strings.Contains(lower, e.keyword) {
			return advice + e.clause, true
		}
	}
	return "", false
}

// actionableTerms must appear for advice with no principle match to pass
// the generic heuristic; absoluteTerms must not.
var (
	actionableTerms = []string{"try", "focus", "consider", "practice", "improve", "work on"}
	absoluteTerms   = []string{"always", "never", "impossible", "guaranteed"}
)

func genericVerdict(lower string) Verdict {
	actionable := containsAny(lower, actionableTerms)
	absolute := containsAny(lower, absoluteTerms)

	verdict := Verdict{
		IsValid:    actionable && !absolute,
		Confidence: genericConfidence,
	}
	if !verdict.IsValid {
		verdict.Warning = "advice does not match any known coaching pattern"
	}
	return verdict
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// urgencyTiers classify advice by how quickly it goes stale. Checked in
// order; only the first matching tier applies.
var urgencyTiers = []struct {
	name   string
	terms  []string
	maxAge time.Duration
}{
	{"immediate", []string{"engage", "attack", "push"}, 3 * time.Second},
	{"reactive", []string{"defend", "retreat", "back"}, 5 * time.Second},
	{"positional", []string{"ward", "position", "farm"}, 10 * time.Second},
}

// ValidateTimeSensitivity reports whether advice issued at issuedAt is
// still timely. Advice matching no urgency tier never goes stale. The game
// clock is accepted for forward compatibility and not yet consulted.
func (v *Verifier) ValidateTimeSensitivity(advice string, issuedAt time.Time, gameClock time.Duration) bool {
	lower := strings.ToLower(advice)
	for _, tier := range urgencyTiers {
		for _, term := range tier.terms {
			if strings.Contains(lower, term) {
				return time.Since(issuedAt) <= tier.maxAge
			}
		}
	}
	return true
}

// SessionErrors returns a snapshot of the rejection log. Mutating the
// returned slice does not affect the verifier.
func (v *Verifier) SessionErrors() []string {
	out := make([]string, len(v.errorLog))
	copy(out, v.errorLog)
	return out
}

// Reset clears the rejection log for a new booth visitor. The syllabus
// binding chosen at construction is unchanged.
func (v *Verifier) Reset() {
	v.errorLog = nil
}

func (v *Verifier) logRejection(advice string) {
	entry := fmt.Sprintf("[%s] rejected: %s", time.Now().Format(time.RFC3339), advice)
	v.errorLog = append(v.errorLog, entry)
}

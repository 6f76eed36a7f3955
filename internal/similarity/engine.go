// Package similarity implements deterministic lexical similarity
// detection for helpdesk tickets. While a ticket is being drafted, the
// engine suggests the most textually similar recent tickets, each with
// an explainable relevance score.
//
// The pipeline is a chain of pure stages: candidate shortlisting, text
// normalization, tokenization, per-field feature extraction, weighted
// Jaccard scoring, threshold filtering, ranking, and output shaping.
// Every invocation is a fresh computation over its own inputs, so
// concurrent calls need no locking.
package similarity

import (
	"context"
	"fmt"
	"sort"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
)

// Pipeline defaults. The weights reflect that the subject line carries
// more topical signal than the description; the threshold is set low to
// stay permissive with short text and small datasets.
const (
	DefaultRecencyDays       = 90
	DefaultMaxCandidates     = 500
	DefaultSubjectWeight     = 0.65
	DefaultDescriptionWeight = 0.35
	DefaultMinRelevanceScore = 0.05
	DefaultTopResults        = 5
)

// CandidateSource supplies the bounded, pre-filtered, recency-ordered
// ticket pool the engine scores against. *database.DB satisfies it; tests
// inject in-memory fixtures.
type CandidateSource interface {
	CandidateTickets(ctx context.Context, opts database.CandidateOptions) ([]database.Ticket, error)
}

// Draft is the ticket being written. It exists only for the duration of
// one FindSimilar call and is never persisted.
type Draft struct {
	Subject     string
	Description string
	Category    string // optional
}

// Config tunes the pipeline. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	RecencyDays       int
	MaxCandidates     int
	SubjectWeight     float64
	DescriptionWeight float64
	MinRelevanceScore float64
	TopResults        int

	// RequireCategoryMatch restricts candidates to the draft's category.
	// Off by default: cross-category suggestions surface shared
	// infrastructure issues.
	RequireCategoryMatch bool
}

// DefaultConfig returns the production pipeline settings
func DefaultConfig() Config {
	return Config{
		RecencyDays:       DefaultRecencyDays,
		MaxCandidates:     DefaultMaxCandidates,
		SubjectWeight:     DefaultSubjectWeight,
		DescriptionWeight: DefaultDescriptionWeight,
		MinRelevanceScore: DefaultMinRelevanceScore,
		TopResults:        DefaultTopResults,
	}
}

// Engine orchestrates the similarity pipeline
type Engine struct {
	source CandidateSource
	scorer *Scorer
	cfg    Config
}

// NewEngine creates an Engine over the given candidate source
func NewEngine(source CandidateSource, cfg Config) *Engine {
	return &Engine{
		source: source,
		scorer: NewScorer(cfg.SubjectWeight, cfg.DescriptionWeight),
		cfg:    cfg,
	}
}

// FindSimilar returns the tickets most similar to the draft, ranked by
// relevance score descending, at most cfg.TopResults of them. An empty
// candidate pool or a draft with no meaningful tokens yields an empty
// result, not an error.
func (e *Engine) FindSimilar(ctx context.Context, draft Draft) ([]SimilarTicket, error) {
	// Stage 1: narrow the search space before any scoring work
	opts := database.CandidateOptions{
		RecencyDays:      e.cfg.RecencyDays,
		ExcludedStatuses: []database.TicketStatus{database.StatusClosed, database.StatusResolved},
		Limit:            e.cfg.MaxCandidates,
	}
	if e.cfg.RequireCategoryMatch && draft.Category != "" {
		opts.Category = draft.Category
	}

	candidates, err := e.source.CandidateTickets(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("shortlist candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Stages 2-3: extract draft features once
	draftFeatures := BuildFeatures(draft.Subject, draft.Description)
	if draftFeatures.Empty() {
		return nil, nil
	}

	// Stages 4-5: score every candidate and shape it. Shaping happens
	// before filtering so the threshold applies to the rounded score the
	// client will actually see, not the raw float.
	shaped := make([]SimilarTicket, 0, len(candidates))
	for _, ticket := range candidates {
		score := e.scorer.Score(draftFeatures, BuildFeatures(ticket.Subject, ticket.Description))
		shaped = append(shaped, shapeResult(ticket, score))
	}

	// Stage 6: threshold, rank, truncate
	return rankAndFilter(shaped, e.cfg.MinRelevanceScore, e.cfg.TopResults), nil
}

// rankAndFilter keeps results at or above the minimum rounded score,
// sorts them by score descending, and truncates to the top N. The sort
// is stable so equal scores keep the candidate source's recency order.
func rankAndFilter(shaped []SimilarTicket, minScore float64, top int) []SimilarTicket {
	var kept []SimilarTicket
	for _, r := range shaped {
		if r.RelevanceScore >= minScore {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].RelevanceScore > kept[j].RelevanceScore
	})

	if len(kept) > top {
		kept = kept[:top]
	}
	return kept
}

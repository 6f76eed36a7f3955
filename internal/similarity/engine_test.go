package similarity

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
)

// fakeSource serves a fixed ticket slice and records the options it was
// called with
type fakeSource struct {
	tickets []database.Ticket
	err     error
	gotOpts database.CandidateOptions
}

func (f *fakeSource) CandidateTickets(ctx context.Context, opts database.CandidateOptions) ([]database.Ticket, error) {
	f.gotOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.tickets, nil
}

func newTestTicket(id, subject, description string, age time.Duration) database.Ticket {
	return database.Ticket{
		ID:          id,
		Subject:     subject,
		Description: description,
		Category:    database.CategoryNetwork,
		Severity:    3,
		Status:      database.StatusOpen,
		CreatedBy:   "user-1",
		CreatedAt:   time.Now().Add(-age),
	}
}

func TestFindSimilarRanksByRelevance(t *testing.T) {
	source := &fakeSource{tickets: []database.Ticket{
		newTestTicket("t1", "Printer out of toner", "The third floor printer needs a toner cartridge", time.Hour),
		newTestTicket("t2", "VPN connection failed", "Cannot connect to the VPN since this morning", 2*time.Hour),
		newTestTicket("t3", "VPN slow for remote users", "The VPN works but file transfers crawl", 3*time.Hour),
	}}
	engine := NewEngine(source, DefaultConfig())

	got, err := engine.FindSimilar(context.Background(), Draft{
		Subject:     "VPN connection failed",
		Description: "Cannot connect to the VPN since this morning",
	})
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}

	if len(got) == 0 {
		t.Fatal("expected matches, got none")
	}
	if got[0].ID != "t2" {
		t.Errorf("expected exact match t2 first, got %s", got[0].ID)
	}
	if got[0].RelevanceScore != 1.0 {
		t.Errorf("expected exact match score 1.0, got %v", got[0].RelevanceScore)
	}
	for i := 1; i < len(got); i++ {
		if got[i].RelevanceScore > got[i-1].RelevanceScore {
			t.Errorf("results not sorted descending at index %d", i)
		}
	}
	for _, r := range got {
		if r.ID == "t1" {
			t.Error("unrelated printer ticket should not appear")
		}
	}
}

func TestFindSimilarTruncatesToTopResults(t *testing.T) {
	var tickets []database.Ticket
	for i := 0; i < 10; i++ {
		tickets = append(tickets, newTestTicket(
			fmt.Sprintf("t%d", i),
			"VPN connection failed",
			"Cannot connect to the VPN",
			time.Duration(i)*time.Hour,
		))
	}
	source := &fakeSource{tickets: tickets}
	engine := NewEngine(source, DefaultConfig())

	got, err := engine.FindSimilar(context.Background(), Draft{
		Subject:     "VPN connection failed",
		Description: "Cannot connect to the VPN",
	})
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}

	if len(got) != DefaultTopResults {
		t.Fatalf("expected %d results, got %d", DefaultTopResults, len(got))
	}

	// Equal scores keep the source's recency order
	for i, want := range []string{"t0", "t1", "t2", "t3", "t4"} {
		if got[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestFindSimilarThresholdOnRoundedScore(t *testing.T) {
	// The cutoff applies to the rounded score, not the raw one. One
	// shared subject token over a union of 19 gives a raw score of
	// 0.65/19 = 0.0342, rounding to 0.03: filtered out. Over a union of
	// 13 the same overlap gives 0.65/13 = 0.05 exactly: kept. Over a
	// union of 14 the raw score is 0.65/14 = 0.0464, below the cutoff,
	// but it rounds up to 0.05 and must be kept too.
	weak := newTestTicket("weak", "vpn a1 a2 a3 a4 a5 a6 a7 a8 a9 b1 b2 b3 b4 b5 b6", "", time.Hour)
	borderline := newTestTicket("borderline", "vpn a1 a2 a3 a4 a5 a6 a7 a8 a9", "", 2*time.Hour)
	roundsUp := newTestTicket("roundsup", "vpn a1 a2 a3 a4 a5 a6 a7 a8 a9 b1", "", 3*time.Hour)

	source := &fakeSource{tickets: []database.Ticket{weak, borderline, roundsUp}}
	engine := NewEngine(source, DefaultConfig())

	got, err := engine.FindSimilar(context.Background(), Draft{
		Subject:     "vpn c1 c2 c3",
		Description: "",
	})
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	for _, r := range got {
		if r.ID == "weak" {
			t.Error("ticket rounding to 0.03 should be filtered out")
		}
		if r.RelevanceScore != 0.05 {
			t.Errorf("ticket %s: expected score 0.05, got %v", r.ID, r.RelevanceScore)
		}
	}
	// Equal rounded scores keep recency order
	if got[0].ID != "borderline" || got[1].ID != "roundsup" {
		t.Errorf("expected [borderline roundsup], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestFindSimilarEmptyPool(t *testing.T) {
	engine := NewEngine(&fakeSource{}, DefaultConfig())

	got, err := engine.FindSimilar(context.Background(), Draft{
		Subject:     "VPN connection failed",
		Description: "Cannot connect",
	})
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestFindSimilarTokenlessDraft(t *testing.T) {
	source := &fakeSource{tickets: []database.Ticket{
		newTestTicket("t1", "VPN connection failed", "Cannot connect", time.Hour),
	}}
	engine := NewEngine(source, DefaultConfig())

	got, err := engine.FindSimilar(context.Background(), Draft{
		Subject:     "the of and",
		Description: "is a to",
	})
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results for token-less draft, got %d", len(got))
	}
}

func TestFindSimilarSourceError(t *testing.T) {
	wantErr := errors.New("disk on fire")
	engine := NewEngine(&fakeSource{err: wantErr}, DefaultConfig())

	_, err := engine.FindSimilar(context.Background(), Draft{
		Subject:     "VPN connection failed",
		Description: "Cannot connect",
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}

func TestFindSimilarShortlistOptions(t *testing.T) {
	source := &fakeSource{}
	cfg := DefaultConfig()
	engine := NewEngine(source, cfg)

	_, err := engine.FindSimilar(context.Background(), Draft{
		Subject:     "VPN connection failed",
		Description: "Cannot connect",
		Category:    "network",
	})
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}

	opts := source.gotOpts
	if opts.RecencyDays != cfg.RecencyDays {
		t.Errorf("expected RecencyDays=%d, got %d", cfg.RecencyDays, opts.RecencyDays)
	}
	if opts.Limit != cfg.MaxCandidates {
		t.Errorf("expected Limit=%d, got %d", cfg.MaxCandidates, opts.Limit)
	}
	if len(opts.ExcludedStatuses) != 2 {
		t.Errorf("expected closed and resolved excluded, got %v", opts.ExcludedStatuses)
	}
	if opts.Category != "" {
		t.Errorf("category filter should be off by default, got %q", opts.Category)
	}

	// With the category restriction enabled the filter passes through
	cfg.RequireCategoryMatch = true
	engine = NewEngine(source, cfg)
	_, err = engine.FindSimilar(context.Background(), Draft{
		Subject:     "VPN connection failed",
		Description: "Cannot connect",
		Category:    "network",
	})
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if source.gotOpts.Category != "network" {
		t.Errorf("expected category filter network, got %q", source.gotOpts.Category)
	}
}

func TestFindSimilarDeterministic(t *testing.T) {
	source := &fakeSource{tickets: []database.Ticket{
		newTestTicket("t1", "VPN connection failed", "Cannot connect to the VPN", time.Hour),
		newTestTicket("t2", "VPN dropping intermittently", "The VPN disconnects every few minutes", 2*time.Hour),
		newTestTicket("t3", "Laptop will not boot", "Black screen on startup", 3*time.Hour),
	}}
	engine := NewEngine(source, DefaultConfig())
	draft := Draft{Subject: "VPN connection problems", Description: "VPN will not connect"}

	first, err := engine.FindSimilar(context.Background(), draft)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := engine.FindSimilar(context.Background(), draft)
		if err != nil {
			t.Fatalf("FindSimilar failed: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: result count changed from %d to %d", i, len(first), len(again))
		}
		for j := range again {
			if again[j].ID != first[j].ID || again[j].RelevanceScore != first[j].RelevanceScore {
				t.Errorf("run %d: position %d differs: %+v vs %+v", i, j, again[j], first[j])
			}
		}
	}
}

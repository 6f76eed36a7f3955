package similarity

import (
	"math"
	"testing"
)

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{
			name: "identical sets",
			a:    []string{"vpn", "down"},
			b:    []string{"vpn", "down"},
			want: 1.0,
		},
		{
			name: "disjoint sets",
			a:    []string{"vpn", "down"},
			b:    []string{"printer", "jam"},
			want: 0.0,
		},
		{
			name: "partial overlap",
			a:    []string{"vpn", "connection", "failed"},
			b:    []string{"vpn", "connection", "dropping"},
			want: 0.5, // 2 shared / 4 union
		},
		{
			name: "first set empty",
			a:    nil,
			b:    []string{"vpn"},
			want: 0.0,
		},
		{
			name: "second set empty",
			a:    []string{"vpn"},
			b:    nil,
			want: 0.0,
		},
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jaccard(tokenSet(tt.a), tokenSet(tt.b))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("jaccard = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccardSymmetric(t *testing.T) {
	a := tokenSet([]string{"vpn", "connection", "failed", "today"})
	b := tokenSet([]string{"vpn", "keeps", "dropping"})

	if jaccard(a, b) != jaccard(b, a) {
		t.Errorf("jaccard not symmetric: %v vs %v", jaccard(a, b), jaccard(b, a))
	}
}

func TestScore(t *testing.T) {
	scorer := NewScorer(0.65, 0.35)

	t.Run("identical tickets score 1.0", func(t *testing.T) {
		f := BuildFeatures("VPN connection failed", "Cannot connect to the VPN since this morning")
		got := scorer.Score(f, f)
		if math.Abs(got-1.0) > 1e-9 {
			t.Errorf("expected 1.0, got %v", got)
		}
	})

	t.Run("unrelated tickets score 0.0", func(t *testing.T) {
		a := BuildFeatures("VPN connection failed", "Cannot connect remotely")
		b := BuildFeatures("Printer paper jam", "Tray two keeps jamming")
		got := scorer.Score(a, b)
		if got != 0.0 {
			t.Errorf("expected 0.0, got %v", got)
		}
	})

	t.Run("subject overlap outweighs description overlap", func(t *testing.T) {
		draft := BuildFeatures("VPN connection failed", "Started after lunch")

		subjectMatch := scorer.Score(draft, BuildFeatures("VPN connection failed", "Different body entirely here"))
		descMatch := scorer.Score(draft, BuildFeatures("Unrelated subject line", "Started after lunch"))

		if subjectMatch <= descMatch {
			t.Errorf("subject match (%v) should outscore description match (%v)", subjectMatch, descMatch)
		}
	})

	t.Run("empty candidate scores 0.0", func(t *testing.T) {
		draft := BuildFeatures("VPN connection failed", "Cannot connect")
		got := scorer.Score(draft, BuildFeatures("", ""))
		if got != 0.0 {
			t.Errorf("expected 0.0, got %v", got)
		}
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		a := BuildFeatures("vpn vpn vpn", "down down down")
		b := BuildFeatures("vpn", "down")
		got := scorer.Score(a, b)
		if got < 0.0 || got > 1.0 {
			t.Errorf("score %v out of [0,1]", got)
		}
	})
}

func TestBuildFeatures(t *testing.T) {
	f := BuildFeatures("The VPN is down!", "VPN vpn dropped the connection.")

	if !f.SubjectTokens["vpn"] || !f.SubjectTokens["down"] {
		t.Errorf("unexpected subject tokens: %v", f.SubjectTokens)
	}
	if f.SubjectTokens["the"] || f.SubjectTokens["is"] {
		t.Errorf("stop-words leaked into subject tokens: %v", f.SubjectTokens)
	}
	if f.DescriptionCounts["vpn"] != 2 {
		t.Errorf("expected vpn description count 2, got %d", f.DescriptionCounts["vpn"])
	}
	if f.Empty() {
		t.Error("expected non-empty feature vector")
	}

	if !BuildFeatures("", "").Empty() {
		t.Error("expected empty vector for empty inputs")
	}
	if !BuildFeatures("the of", "is a").Empty() {
		t.Error("expected empty vector for stop-word-only inputs")
	}
}

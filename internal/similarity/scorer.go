package similarity

// Scorer computes weighted token-overlap similarity between two
// feature vectors
type Scorer struct {
	subjectWeight     float64
	descriptionWeight float64
}

// NewScorer creates a Scorer with the given field weights. The subject
// is the headline and carries more topical signal, so it is normally
// weighted higher than the often-verbose description.
func NewScorer(subjectWeight, descriptionWeight float64) *Scorer {
	return &Scorer{
		subjectWeight:     subjectWeight,
		descriptionWeight: descriptionWeight,
	}
}

// Score returns the weighted similarity of a candidate against the
// draft, clamped to [0.0, 1.0]:
//
//	score = jaccard(subjects)*subjectWeight + jaccard(descriptions)*descriptionWeight
func (s *Scorer) Score(draft, candidate FeatureVector) float64 {
	subjectSim := jaccard(draft.SubjectTokens, candidate.SubjectTokens)
	descriptionSim := jaccard(draft.DescriptionTokens, candidate.DescriptionTokens)

	score := subjectSim*s.subjectWeight + descriptionSim*s.descriptionWeight

	return clamp(score, 0.0, 1.0)
}

// jaccard computes |A ∩ B| / |A ∪ B| over two token sets. Either set
// being empty means no signal, scored as 0.0 rather than undefined.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package similarity

// FeatureVector holds per-field token sets and frequency maps for one
// ticket or draft. Subject and description are analyzed separately so
// the scorer can weight the subject higher.
type FeatureVector struct {
	SubjectTokens     map[string]bool
	DescriptionTokens map[string]bool

	// Frequency maps over the pre-dedup token streams. Current scoring
	// is set-based and does not read them, but they are part of the
	// feature contract for frequency-weighted scoring.
	SubjectCounts     map[string]int
	DescriptionCounts map[string]int
}

// BuildFeatures normalizes and tokenizes the subject and description of
// a ticket independently and returns the resulting feature vector.
func BuildFeatures(subject, description string) FeatureVector {
	subjectTokens := Tokenize(Normalize(subject))
	descriptionTokens := Tokenize(Normalize(description))

	return FeatureVector{
		SubjectTokens:     tokenSet(subjectTokens),
		DescriptionTokens: tokenSet(descriptionTokens),
		SubjectCounts:     tokenCounts(subjectTokens),
		DescriptionCounts: tokenCounts(descriptionTokens),
	}
}

// Empty reports whether the vector carries no signal at all
func (f FeatureVector) Empty() bool {
	return len(f.SubjectTokens) == 0 && len(f.DescriptionTokens) == 0
}

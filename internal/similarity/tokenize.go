package similarity

import "strings"

// MinTokenLength filters out noise like single letters that survive
// stop-word removal
const MinTokenLength = 2

// stopwords are common words with low signal, excluded from token sets
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "by": true, "for": true, "from": true,
	"has": true, "he": true, "in": true, "is": true, "it": true,
	"its": true, "of": true, "on": true, "or": true, "that": true,
	"the": true, "to": true, "was": true, "will": true, "with": true,
	"this": true, "but": true, "not": true, "if": true, "can": true,
	"have": true, "we": true, "they": true, "their": true, "what": true,
	"which": true, "who": true,
}

// Tokenize splits already-normalized text into meaningful tokens.
// Stop-words and tokens shorter than MinTokenLength are dropped.
// Duplicates are preserved; callers that need a set or a frequency
// map build them from the returned stream.
//
//	"the vpn is down" -> ["vpn", "down"]
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)

	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if stopwords[tok] || len(tok) < MinTokenLength {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// tokenSet collapses a token stream into a membership set
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

// tokenCounts builds a frequency map over the pre-dedup token stream
func tokenCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

package similarity

import (
	"math"
	"time"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
)

// snippetLength is how many characters of the description survive into
// a result. With the ellipsis marker the snippet never exceeds 153.
const snippetLength = 150

// SimilarTicket is the safe, minimal view of a matched ticket returned
// to clients. The full description and any internal fields (assignee,
// creator) are deliberately omitted.
type SimilarTicket struct {
	ID                 string    `json:"id"`
	Subject            string    `json:"subject"`
	DescriptionSnippet string    `json:"description_snippet"`
	Category           string    `json:"category"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	RelevanceScore     float64   `json:"relevance_score"`
}

// shapeResult converts a scored candidate into its client-facing form,
// rounding the score to two decimals
func shapeResult(t database.Ticket, score float64) SimilarTicket {
	return SimilarTicket{
		ID:                 t.ID,
		Subject:            t.Subject,
		DescriptionSnippet: snippet(t.Description),
		Category:           string(t.Category),
		Status:             string(t.Status),
		CreatedAt:          t.CreatedAt,
		RelevanceScore:     roundScore(score),
	}
}

// snippet truncates a description to its first snippetLength characters,
// appending "..." only when truncation occurred
func snippet(description string) string {
	runes := []rune(description)
	if len(runes) <= snippetLength {
		return description
	}
	return string(runes[:snippetLength]) + "..."
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

// Package report renders analyzed articles as plain-text blocks.
package report

import (
	"fmt"
	"io"

	"github.com/newsmood/newsmood/internal/models"
)

// Write emits one block per analysis, in slice order. Formatting only; the
// first write error is returned as-is.
func Write(w io.Writer, analyses []models.Analysis) error {
	for i, a := range analyses {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		s := a.Sentiment
		_, err := fmt.Fprintf(w,
			"Title:     %s\nSource:    %s\nScores:    pos=%.3f neg=%.3f neu=%.3f compound=%.4f\nSentiment: %s (%s)\n",
			a.Title, a.Source, s.Positive, s.Negative, s.Neutral, s.Compound, s.Label, s.Label.Phrase(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

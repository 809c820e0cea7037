package report_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/newsmood/newsmood/internal/models"
	"github.com/newsmood/newsmood/internal/report"
	"github.com/newsmood/newsmood/internal/sentiment"
)

func TestWriteOneBlockPerArticleInOrder(t *testing.T) {
	analyses := make([]models.Analysis, 0, 3)
	for i := range 3 {
		analyses = append(analyses, models.Analysis{
			Article: models.Article{
				Title:  fmt.Sprintf("Article %d", i),
				Source: "Reuters",
			},
			Sentiment: sentiment.Result{Label: sentiment.LabelNeutral},
		})
	}

	var buf strings.Builder
	require.NoError(t, report.Write(&buf, analyses))

	out := buf.String()
	require.Equal(t, 3, strings.Count(out, "Title:"))

	first := strings.Index(out, "Article 0")
	second := strings.Index(out, "Article 1")
	third := strings.Index(out, "Article 2")
	require.True(t, first >= 0 && first < second && second < third)
}

func TestWriteBlockContents(t *testing.T) {
	analyses := []models.Analysis{{
		Article: models.Article{Title: "Markets Rally", Source: "BBC News"},
		Sentiment: sentiment.Result{
			Positive: 0.512,
			Negative: 0.01,
			Neutral:  0.478,
			Compound: 0.7269,
			Label:    sentiment.LabelPositive,
		},
	}}

	var buf strings.Builder
	require.NoError(t, report.Write(&buf, analyses))

	out := buf.String()
	require.Contains(t, out, "Title:     Markets Rally")
	require.Contains(t, out, "Source:    BBC News")
	require.Contains(t, out, "pos=0.512")
	require.Contains(t, out, "neg=0.010")
	require.Contains(t, out, "neu=0.478")
	require.Contains(t, out, "compound=0.7269")
	require.Contains(t, out, "Positive (largely positive coverage)")
}

func TestWriteEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, report.Write(&buf, nil))
	require.Empty(t, buf.String())
}

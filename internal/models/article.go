package models

import (
	"time"

	"github.com/newsmood/newsmood/internal/processing"
	"github.com/newsmood/newsmood/internal/sentiment"
)

// Article is one item from a news-search response. Articles live only for
// the duration of a run; nothing is persisted.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"published_at"`
}

// ScoringText returns the cleaned text the classifier should score: the
// description when present, otherwise the title. Scoring the description
// consistently matters because it changes scores materially.
func (a Article) ScoringText() string {
	if text := processing.CleanText(a.Description); text != "" {
		return text
	}
	return processing.CleanText(a.Title)
}

// Analysis pairs an article with its sentiment scores.
type Analysis struct {
	Article
	Sentiment sentiment.Result `json:"sentiment"`
}

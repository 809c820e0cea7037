// Package sentiment wraps the VADER lexicon scorer and derives a three-way
// label from the compound score.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Label is the three-way classification derived from the compound score.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// Compound score thresholds. These match the reference VADER
// recommendation and must not drift.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Phrase returns a short human-readable description of the label.
func (l Label) Phrase() string {
	switch l {
	case LabelPositive:
		return "largely positive coverage"
	case LabelNegative:
		return "largely negative coverage"
	default:
		return "broadly neutral coverage"
	}
}

// Result holds the four VADER scores and the derived label.
type Result struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
	Label    Label   `json:"label"`
}

// Classify maps a compound score onto a label. The 0.05 boundaries are
// inclusive for Positive and Negative.
func Classify(compound float64) Label {
	switch {
	case compound >= positiveThreshold:
		return LabelPositive
	case compound <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Analyzer scores text with the pre-built VADER lexicon. The zero value is
// not usable; construct with NewAnalyzer.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer loads the lexicon and returns a ready scorer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Score runs the lexicon scorer over text. Empty or whitespace-only input
// short-circuits to all-zero scores and a Neutral label without invoking
// the scorer.
func (a *Analyzer) Score(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Label: LabelNeutral}
	}

	s := a.vader.PolarityScores(text)
	return Result{
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Compound: s.Compound,
		Label:    Classify(s.Compound),
	}
}

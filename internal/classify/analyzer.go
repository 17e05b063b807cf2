package classify

import (
	"time"

	"github.com/iliyamo/city-issue-tracker/internal/model"
)

// Analyzer wraps the pure classifier with an artificial processing
// delay to mimic inference latency. Callers always wait out the full
// delay; the reference behavior has no cancellation, so none is
// modeled here.
type Analyzer struct {
	ClassifyDelay time.Duration
	SuggestDelay  time.Duration
}

// NewAnalyzer returns an Analyzer with the given delays. Zero values
// disable the sleep, which is what tests use.
func NewAnalyzer(classifyDelay, suggestDelay time.Duration) *Analyzer {
	return &Analyzer{ClassifyDelay: classifyDelay, SuggestDelay: suggestDelay}
}

// Analyze runs the classifier after the configured delay.
func (a *Analyzer) Analyze(title, description, location string, hasImage bool) (model.Category, model.Priority) {
	if a.ClassifyDelay > 0 {
		time.Sleep(a.ClassifyDelay)
	}
	return Classify(title, description, location, hasImage)
}

// Suggest returns a canned description after the configured delay.
func (a *Analyzer) Suggest(title string) string {
	if a.SuggestDelay > 0 {
		time.Sleep(a.SuggestDelay)
	}
	return SuggestDescription(title)
}

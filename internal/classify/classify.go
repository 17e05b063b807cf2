// Package classify assigns a service category and an urgency to a
// complaint from plain keyword heuristics over its text. It stands in
// for a real inference backend: pure functions, fixed keyword tables,
// and an Analyzer wrapper that simulates model latency.
package classify

import (
	"strings"

	"github.com/iliyamo/city-issue-tracker/internal/model"
)

// Priority keyword tiers, checked high first. Presence of any term
// decides the tier; there is no scoring or weighting.
var (
	highKeywords = []string{
		"urgent", "danger", "accident", "fire", "leak", "broken pipe",
		"burst", "flood", "power outage", "live wire", "deep pothole",
		"crash",
	}
	mediumKeywords = []string{
		"pothole", "street light", "streetlight", "garbage", "trash",
		"litter", "sign", "graffiti", "damage",
	}
)

// categoryGroup binds a set of keywords to a category. Groups are
// evaluated in declaration order and the first hit wins, so the slice
// below must stay ordered; a map would lose the tie-break.
type categoryGroup struct {
	keywords []string
	category model.Category
}

var categoryGroups = []categoryGroup{
	{[]string{"water", "pipe", "leak"}, model.CategoryWater},
	{[]string{"road", "pothole", "street"}, model.CategoryRoads},
	{[]string{"trash", "garbage", "waste"}, model.CategoryWaste},
	{[]string{"light", "power", "wire"}, model.CategoryLight},
	{[]string{"park", "tree", "grass"}, model.CategoryParks},
}

// Vague filler terms that, combined with an attached image, justify
// guessing Roads & Infrastructure instead of Other.
var fillerKeywords = []string{"issue", "fix"}

// Classify derives (category, priority) from the free text of a
// complaint plus an image-presence flag. It is pure and deterministic;
// empty description or location are simply absent from the search
// text. The escalation rules:
//
//   - any high-tier keyword        -> High, regardless of other tiers
//   - else any medium-tier keyword -> Medium
//   - else                         -> Low
//   - image attached and Low       -> Medium
//   - image attached, category still Other, filler term present
//     -> Roads & Infrastructure
func Classify(title, description, location string, hasImage bool) (model.Category, model.Priority) {
	text := strings.ToLower(title+" "+description) + " " + strings.ToLower(location)

	priority := model.PriorityLow
	if containsAny(text, highKeywords) {
		priority = model.PriorityHigh
	} else if containsAny(text, mediumKeywords) {
		priority = model.PriorityMedium
	}

	category := model.CategoryOther
	for _, g := range categoryGroups {
		if containsAny(text, g.keywords) {
			category = g.category
			break
		}
	}

	if hasImage {
		if priority == model.PriorityLow {
			priority = model.PriorityMedium
		}
		if category == model.CategoryOther && containsAny(text, fillerKeywords) {
			category = model.CategoryRoads
		}
	}

	return category, priority
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

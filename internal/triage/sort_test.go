package triage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/city-issue-tracker/internal/model"
	"github.com/iliyamo/city-issue-tracker/internal/triage"
)

func at(min int) time.Time {
	return time.Date(2024, 5, 1, 12, min, 0, 0, time.UTC)
}

// TestSortCanonicalUnknownPriorityLast verifies records with an
// unmapped priority rank below Low instead of breaking the order.
func TestSortCanonicalUnknownPriorityLast(t *testing.T) {
	cs := []model.Complaint{
		{ID: 1, Priority: "???", CreatedAt: at(3)},
		{ID: 2, Priority: model.PriorityLow, CreatedAt: at(1)},
		{ID: 3, Priority: model.PriorityHigh, CreatedAt: at(2)},
	}
	triage.SortCanonical(cs)

	assert.Equal(t, uint64(3), cs[0].ID)
	assert.Equal(t, uint64(2), cs[1].ID)
	assert.Equal(t, uint64(1), cs[2].ID, "unknown priority sinks to the bottom")
}

// TestSortCanonicalRecencyWithinTier verifies the secondary key:
// equal priorities order newest-first.
func TestSortCanonicalRecencyWithinTier(t *testing.T) {
	cs := []model.Complaint{
		{ID: 1, Priority: model.PriorityMedium, CreatedAt: at(1)},
		{ID: 2, Priority: model.PriorityMedium, CreatedAt: at(5)},
		{ID: 3, Priority: model.PriorityMedium, CreatedAt: at(3)},
	}
	triage.SortCanonical(cs)

	assert.Equal(t, []uint64{2, 3, 1}, []uint64{cs[0].ID, cs[1].ID, cs[2].ID})
}

// TestCountByStatusIgnoresUnknown verifies unknown statuses fall into
// no bucket rather than inflating one.
func TestCountByStatusIgnoresUnknown(t *testing.T) {
	cs := []model.Complaint{
		{Status: model.StatusPending},
		{Status: model.StatusPending},
		{Status: model.StatusResolved},
		{Status: "Archived"},
	}
	counts := triage.CountByStatus(cs)
	assert.Equal(t, model.StatusCounts{Pending: 2, Resolved: 1}, counts)
}

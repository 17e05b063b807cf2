package triage

import (
	"sort"

	"github.com/iliyamo/city-issue-tracker/internal/model"
)

// SortCanonical orders complaints in place by the canonical dashboard
// order: priority rank descending (High > Medium > Low, unknown last),
// then creation time descending so the newest report of a given
// urgency surfaces first. Every listing view uses this same order.
func SortCanonical(cs []model.Complaint) {
	sort.SliceStable(cs, func(i, j int) bool {
		ri, rj := cs[i].Priority.Rank(), cs[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return cs[i].CreatedAt.After(cs[j].CreatedAt)
	})
}

// SortByDate orders complaints in place by creation time descending,
// ignoring priority. The admin dashboard offers this as an alternate
// view.
func SortByDate(cs []model.Complaint) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].CreatedAt.After(cs[j].CreatedAt)
	})
}

// CountByStatus partitions complaints into the three dashboard
// buckets. The result is derived from the slice on every call; no
// counter is stored anywhere, so the totals always match the data.
func CountByStatus(cs []model.Complaint) model.StatusCounts {
	var counts model.StatusCounts
	for _, c := range cs {
		switch c.Status {
		case model.StatusPending:
			counts.Pending++
		case model.StatusInProgress:
			counts.InProgress++
		case model.StatusResolved:
			counts.Resolved++
		}
	}
	return counts
}

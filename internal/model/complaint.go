package model

import "time"

// Category classifies a complaint into one of the fixed city service
// areas. Values are stored verbatim in the `complaints.category`
// column and rendered as-is in API responses.
type Category string

const (
	CategoryRoads Category = "Roads & Infrastructure"
	CategoryWaste Category = "Waste Management"
	CategoryWater Category = "Water & Sanitation"
	CategoryLight Category = "Street Lighting"
	CategoryParks Category = "Public Parks"
	CategoryOther Category = "Other"
)

// Priority is the urgency assigned at intake. It is set once by the
// classifier and never recomputed.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Rank maps a priority onto its sort weight: High=3, Medium=2, Low=1.
// Unknown values rank 0 so malformed rows sink to the bottom of every
// listing instead of breaking the order.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Status tracks a complaint through its lifecycle. Transitions are
// unconstrained: an admin may move a complaint from any status to any
// other, including Resolved back to Pending.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// ParseStatus validates a raw status string from a request body.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return Status(s), true
	}
	return "", false
}

// Complaint mirrors the `complaints` table. The json tags follow the
// persisted record layout used by the dashboards: the submitter is
// exposed as `userEmail` and the creation time as `date`.
//
// Fields:
//
//	ID          – primary key identifier, monotonically assigned.
//	Title       – short summary of the issue, required.
//	Description – free-text detail, may be empty.
//	Location    – free-text location, required.
//	Category    – service area assigned by the classifier at intake.
//	Priority    – urgency assigned by the classifier at intake.
//	Status      – lifecycle state, always Pending on creation.
//	UserEmail   – email of the submitting user.
//	CreatedAt   – creation timestamp, immutable.
type Complaint struct {
	ID          uint64    `json:"id,string"`   // complaints.id
	Title       string    `json:"title"`       // complaints.title
	Description string    `json:"description"` // complaints.description
	Location    string    `json:"location"`    // complaints.location
	Category    Category  `json:"category"`    // complaints.category
	Priority    Priority  `json:"priority"`    // complaints.priority
	Status      Status    `json:"status"`      // complaints.status
	UserEmail   string    `json:"userEmail"`   // complaints.user_email
	CreatedAt   time.Time `json:"date"`        // complaints.created_at
}

// StatusCounts holds the dashboard partition of complaints by status.
// Counts are derived from the live collection on every call, never
// stored, so they cannot drift from the truth.
type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}

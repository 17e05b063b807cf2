// Package queue defines message payloads exchanged over the message
// broker and the background consumer that turns them into the triage
// audit log.
package queue

// Event kinds carried on the triage.events queue.
const (
	KindSubmitted     = "complaint.submitted"
	KindStatusChanged = "complaint.status_changed"
)

// TriageEvent is published when a complaint enters the system or
// changes status. It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type TriageEvent struct {
	EventID     string `json:"event_id"`
	Kind        string `json:"kind"`
	ComplaintID uint64 `json:"complaint_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	UserEmail   string `json:"user_email"`
	OccurredAt  string `json:"occurred_at"`
}

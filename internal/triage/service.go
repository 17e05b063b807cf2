// Package triage owns the complaint intake and lifecycle pipeline:
// classification at submission, the Pending -> In Progress ->
// Resolved state changes, the canonical listing order, and the user
// directory operations the admin dashboard needs.
package triage

import (
	"context"
	"errors"
	"log"

	"github.com/iliyamo/city-issue-tracker/internal/classify"
	"github.com/iliyamo/city-issue-tracker/internal/model"
)

// ComplaintStore is the persistence contract for complaints,
// implemented by repository.ComplaintRepo and by in-memory fakes in
// tests.
type ComplaintStore interface {
	Insert(ctx context.Context, c *model.Complaint) error
	UpdateStatus(ctx context.Context, id uint64, status model.Status) (model.Complaint, error)
	List(ctx context.Context, userEmail string) ([]model.Complaint, error)
}

// UserStore is the persistence contract for the user directory.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, email string) error
}

// EventPublisher receives triage lifecycle notifications. Publishing
// is best-effort: failures are logged and never abort the operation
// that triggered them.
type EventPublisher interface {
	ComplaintSubmitted(ctx context.Context, c model.Complaint) error
	StatusChanged(ctx context.Context, c model.Complaint) error
}

// ErrInvalidDraft rejects submissions missing a title or location.
var ErrInvalidDraft = errors.New("title and location are required")

// Draft carries the user-supplied half of a complaint. Category and
// priority are never accepted from the client; the classifier
// assigns them at intake.
type Draft struct {
	Title       string
	Description string
	Location    string
	HasImage    bool
}

// Service implements the triage operations over the stores. It holds
// no state of its own; all reads produce fresh snapshots.
type Service struct {
	Complaints ComplaintStore
	Users      UserStore
	Analyzer   *classify.Analyzer
	Events     EventPublisher // optional
}

func NewService(cs ComplaintStore, us UserStore, a *classify.Analyzer, ev EventPublisher) *Service {
	return &Service{Complaints: cs, Users: us, Analyzer: a, Events: ev}
}

// Submit classifies the draft and stores it as a new Pending
// complaint owned by userEmail. The classifier result is frozen into
// the record and never recomputed.
func (s *Service) Submit(ctx context.Context, d Draft, userEmail string) (model.Complaint, error) {
	if d.Title == "" || d.Location == "" {
		return model.Complaint{}, ErrInvalidDraft
	}
	category, priority := s.Analyzer.Analyze(d.Title, d.Description, d.Location, d.HasImage)

	c := model.Complaint{
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Category:    category,
		Priority:    priority,
		UserEmail:   userEmail,
	}
	if err := s.Complaints.Insert(ctx, &c); err != nil {
		return model.Complaint{}, err
	}
	if s.Events != nil {
		if err := s.Events.ComplaintSubmitted(ctx, c); err != nil {
			log.Printf("triage: publish submitted event failed: %v", err)
		}
	}
	return c, nil
}

// SetStatus overwrites the status of a complaint. Any status may
// follow any other; the only failure modes are an unknown id
// (repository.ErrNotFound) and storage errors.
func (s *Service) SetStatus(ctx context.Context, id uint64, status model.Status) (model.Complaint, error) {
	c, err := s.Complaints.UpdateStatus(ctx, id, status)
	if err != nil {
		return model.Complaint{}, err
	}
	if s.Events != nil {
		if err := s.Events.StatusChanged(ctx, c); err != nil {
			log.Printf("triage: publish status event failed: %v", err)
		}
	}
	return c, nil
}

// List returns a fresh snapshot of complaints in the canonical order,
// optionally filtered to one submitter. When byDate is true the
// alternate recency-only order is used instead.
func (s *Service) List(ctx context.Context, userEmail string, byDate bool) ([]model.Complaint, error) {
	cs, err := s.Complaints.List(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		// An empty collection serializes as [] rather than null.
		cs = []model.Complaint{}
	}
	if byDate {
		SortByDate(cs)
	} else {
		SortCanonical(cs)
	}
	return cs, nil
}

// Counts partitions the current collection by status for the
// dashboard summary.
func (s *Service) Counts(ctx context.Context) (model.StatusCounts, error) {
	cs, err := s.Complaints.List(ctx, "")
	if err != nil {
		return model.StatusCounts{}, err
	}
	return CountByStatus(cs), nil
}

// ListUsers returns the public view of every account.
func (s *Service) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// DeleteUser removes an account by email. The store refuses to
// remove the seeded admin.
func (s *Service) DeleteUser(ctx context.Context, email string) error {
	return s.Users.Delete(ctx, email)
}

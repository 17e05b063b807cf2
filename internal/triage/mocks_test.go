package triage_test

import (
	"context"
	"time"

	"github.com/iliyamo/city-issue-tracker/internal/model"
	"github.com/iliyamo/city-issue-tracker/internal/repository"
)

// fakeComplaintStore is an in-memory ComplaintStore mirroring the
// repository semantics: monotonic ids, Pending on insert, status
// overwrite without guards, snapshot listings.
type fakeComplaintStore struct {
	complaints []model.Complaint
	nextID     uint64
	clock      time.Time
}

func newFakeComplaintStore() *fakeComplaintStore {
	return &fakeComplaintStore{nextID: 1, clock: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeComplaintStore) Insert(_ context.Context, c *model.Complaint) error {
	c.ID = f.nextID
	f.nextID++
	c.Status = model.StatusPending
	// Distinct, strictly increasing timestamps.
	f.clock = f.clock.Add(time.Minute)
	c.CreatedAt = f.clock
	f.complaints = append(f.complaints, *c)
	return nil
}

func (f *fakeComplaintStore) UpdateStatus(_ context.Context, id uint64, status model.Status) (model.Complaint, error) {
	for i := range f.complaints {
		if f.complaints[i].ID == id {
			f.complaints[i].Status = status
			return f.complaints[i], nil
		}
	}
	return model.Complaint{}, repository.ErrNotFound
}

func (f *fakeComplaintStore) List(_ context.Context, userEmail string) ([]model.Complaint, error) {
	var out []model.Complaint
	for _, c := range f.complaints {
		if userEmail == "" || c.UserEmail == userEmail {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeUserStore is an in-memory UserStore with the seeded admin
// present and protected.
type fakeUserStore struct {
	users []model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: []model.User{{
		Email:    repository.AdminEmail,
		Password: repository.AdminPassword,
		Name:     repository.AdminName,
		Role:     model.RoleAdmin,
	}}}
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), f.users...), nil
}

func (f *fakeUserStore) Delete(_ context.Context, email string) error {
	if email == repository.AdminEmail {
		return repository.ErrAdminProtected
	}
	kept := f.users[:0]
	for _, u := range f.users {
		if u.Email != email {
			kept = append(kept, u)
		}
	}
	f.users = kept
	return nil
}

// recordingPublisher counts events instead of talking to a broker.
type recordingPublisher struct {
	submitted []model.Complaint
	changed   []model.Complaint
}

func (p *recordingPublisher) ComplaintSubmitted(_ context.Context, c model.Complaint) error {
	p.submitted = append(p.submitted, c)
	return nil
}

func (p *recordingPublisher) StatusChanged(_ context.Context, c model.Complaint) error {
	p.changed = append(p.changed, c)
	return nil
}

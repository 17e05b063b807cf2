package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/city-issue-tracker/internal/model"
)

// ComplaintRepo provides access to the `complaints` collection.
// Records are insert-only apart from the status column: category,
// priority, title, location and the creation timestamp never change
// after intake, and complaints are never deleted.
type ComplaintRepo struct{ db *sql.DB }

// NewComplaintRepo returns a new ComplaintRepo bound to the given database.
func NewComplaintRepo(db *sql.DB) *ComplaintRepo { return &ComplaintRepo{db: db} }

const complaintColumns = "id,title,description,location,category,priority,status,user_email,created_at"

// Insert stores a new complaint with status Pending and the
// classifier's category/priority, assigns the next id and stamps the
// creation time. The populated record is returned.
func (r *ComplaintRepo) Insert(ctx context.Context, c *model.Complaint) error {
	c.Status = model.StatusPending
	c.CreatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO complaints (title, description, location, category, priority, status, user_email, created_at) VALUES (?,?,?,?,?,?,?,?)",
		c.Title, c.Description, c.Location, c.Category, c.Priority, c.Status, c.UserEmail, c.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// UpdateStatus overwrites the status of the complaint with the given
// id and returns the updated record. There is no transition guard:
// any status may follow any other. Returns ErrNotFound when the id
// does not exist.
func (r *ComplaintRepo) UpdateStatus(ctx context.Context, id uint64, status model.Status) (model.Complaint, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE complaints SET status=? WHERE id=?", status, id); err != nil {
		return model.Complaint{}, err
	}
	// RowsAffected cannot distinguish a missing row from a no-op
	// update to the same status, so the readback decides: it returns
	// ErrNotFound when the id does not exist.
	return r.getByID(ctx, id)
}

func (r *ComplaintRepo) getByID(ctx context.Context, id uint64) (model.Complaint, error) {
	var c model.Complaint
	err := r.db.QueryRowContext(ctx,
		"SELECT "+complaintColumns+" FROM complaints WHERE id=? LIMIT 1", id).
		Scan(&c.ID, &c.Title, &c.Description, &c.Location, &c.Category, &c.Priority, &c.Status, &c.UserEmail, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Complaint{}, ErrNotFound
	}
	if err != nil {
		return model.Complaint{}, err
	}
	return c, nil
}

// List returns complaints, optionally restricted to one submitter.
// Rows come back in insertion order; the canonical dashboard order is
// applied by the triage service on every call, not here, so the
// ordering logic stays in one place.
func (r *ComplaintRepo) List(ctx context.Context, userEmail string) ([]model.Complaint, error) {
	query := "SELECT " + complaintColumns + " FROM complaints"
	var args []interface{}
	if userEmail != "" {
		query += " WHERE user_email=?"
		args = append(args, userEmail)
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Complaint
	for rows.Next() {
		var c model.Complaint
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Location, &c.Category, &c.Priority, &c.Status, &c.UserEmail, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

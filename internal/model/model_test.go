package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/city-issue-tracker/internal/model"
)

// TestPriorityRank verifies the total order High > Medium > Low and
// that anything else ranks below Low.
func TestPriorityRank(t *testing.T) {
	assert.Greater(t, model.PriorityHigh.Rank(), model.PriorityMedium.Rank())
	assert.Greater(t, model.PriorityMedium.Rank(), model.PriorityLow.Rank())
	assert.Greater(t, model.PriorityLow.Rank(), model.Priority("Critical").Rank())
	assert.Equal(t, 0, model.Priority("").Rank())
}

// TestParseStatus verifies only the three lifecycle statuses parse.
func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "In Progress", "Resolved"} {
		s, ok := model.ParseStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, model.Status(valid), s)
	}
	_, ok := model.ParseStatus("resolved")
	assert.False(t, ok, "status values are case-sensitive")
	_, ok = model.ParseStatus("Archived")
	assert.False(t, ok)
}

// TestComplaintRecordLayout verifies the persisted field names the
// dashboards rely on: the submitter as userEmail, the creation time
// as date, and the id as an opaque string.
func TestComplaintRecordLayout(t *testing.T) {
	c := model.Complaint{
		ID:        42,
		Title:     "Streetlight out",
		Location:  "Elm St",
		Category:  model.CategoryLight,
		Priority:  model.PriorityMedium,
		Status:    model.StatusPending,
		UserEmail: "resident@example.com",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "42", m["id"])
	assert.Equal(t, "resident@example.com", m["userEmail"])
	assert.Contains(t, m, "date")
	assert.NotContains(t, m, "createdAt")
}

// TestPublicUserOmitsPassword verifies credentials never reach the
// client-facing shape.
func TestPublicUserOmitsPassword(t *testing.T) {
	u := model.User{Email: "a@b.c", Password: "secret", Name: "A", Role: model.RoleUser}
	raw, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), "a@b.c")
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/city-issue-tracker/internal/middleware"
	"github.com/iliyamo/city-issue-tracker/internal/model"
	"github.com/iliyamo/city-issue-tracker/internal/repository"
	"github.com/iliyamo/city-issue-tracker/internal/triage"
)

// AdminHandler exposes the triage dashboard operations: the full
// complaint queue, status changes, the status summary, and the user
// directory. All routes are guarded by the admin role.
type AdminHandler struct {
	Svc   *triage.Service
	Cache *middleware.ListingCache
}

func NewAdminHandler(svc *triage.Service, cache *middleware.ListingCache) *AdminHandler {
	return &AdminHandler{Svc: svc, Cache: cache}
}

type setStatusReq struct {
	Status string `json:"status"`
}

// ListAll returns every complaint. The default order is the canonical
// one; ?sort=date switches to recency only, matching the dashboard's
// sort toggle.
func (h *AdminHandler) ListAll(c echo.Context) error {
	byDate := c.QueryParam("sort") == "date"

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Svc.List(ctx, "", byDate)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// SetStatus overwrites the status of a complaint. Any known status is
// accepted regardless of the current one.
func (h *AdminHandler) SetStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status, ok := model.ParseStatus(req.Status)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	updated, err := h.Svc.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "complaint not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	h.Cache.Invalidate(ctx)
	return c.JSON(http.StatusOK, updated)
}

// Stats returns the pending / in-progress / resolved partition for
// the dashboard header.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	counts, err := h.Svc.Counts(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "stats failed"})
	}
	return c.JSON(http.StatusOK, counts)
}

// ListUsers returns the public view of every account.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Svc.ListUsers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list users failed"})
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser removes a non-admin account. Deleting the seeded admin
// is rejected; deleting an unknown email succeeds as a no-op.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Svc.DeleteUser(ctx, email); err != nil {
		if errors.Is(err, repository.ErrAdminProtected) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin account is protected"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

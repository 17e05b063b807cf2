package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/city-issue-tracker/internal/middleware"
	"github.com/iliyamo/city-issue-tracker/internal/triage"
)

// ComplaintHandler exposes the citizen-facing endpoints: submitting a
// report, listing one's own reports, and the description suggestion
// helper used by the submission form.
type ComplaintHandler struct {
	Svc   *triage.Service
	Cache *middleware.ListingCache
}

func NewComplaintHandler(svc *triage.Service, cache *middleware.ListingCache) *ComplaintHandler {
	return &ComplaintHandler{Svc: svc, Cache: cache}
}

type submitReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	HasImage    bool   `json:"has_image"`
}

type suggestReq struct {
	Title string `json:"title"`
}

// Submit classifies and stores a new complaint for the authenticated
// user. Category and priority come from the classifier; any values in
// the request body are ignored by design. The timeout leaves room for
// the simulated classifier latency on top of the storage call.
func (h *ComplaintHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	draft := triage.Draft{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		HasImage:    req.HasImage,
	}

	email, _ := c.Get("user_email").(string)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	created, err := h.Svc.Submit(ctx, draft, email)
	if err != nil {
		if errors.Is(err, triage.ErrInvalidDraft) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and location are required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit failed"})
	}
	h.Cache.Invalidate(ctx)
	return c.JSON(http.StatusCreated, created)
}

// ListMine returns the authenticated user's complaints in the
// canonical order.
func (h *ComplaintHandler) ListMine(c echo.Context) error {
	email, _ := c.Get("user_email").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Svc.List(ctx, email, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// Suggest returns a prefilled description paragraph for a complaint
// title. Assistive only: the client is free to discard or edit it.
func (h *ComplaintHandler) Suggest(c echo.Context) error {
	var req suggestReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"description": h.Svc.Analyzer.Suggest(strings.TrimSpace(req.Title)),
	})
}

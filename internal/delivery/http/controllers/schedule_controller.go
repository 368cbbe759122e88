package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "conferencecompanion/internal/delivery/http/helpers"
	"conferencecompanion/internal/domain"
)

type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// writeError maps service errors to API responses. Feed shape problems
// surface as 422 so operators can tell a bad upstream feed from a server bug.
func (c *ScheduleController) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, notFoundMsg)
		return
	}
	var conflict *domain.ClassificationConflictError
	var lookup *domain.SlotLookupError
	if errors.As(err, &conflict) || errors.As(err, &lookup) {
		h.WriteJSONError(w, http.StatusUnprocessableEntity, h.ErrCodeInvalidFeed, err.Error())
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
}

// ListDaysResponse is the response body for GET /conferences/{code}/days.
type ListDaysResponse struct {
	Days []string `json:"days"`
}

// ListDays godoc
// @Summary List schedule days
// @Description Returns the dates of the conference schedule in feed order.
// @Tags schedule
// @Produce json
// @Param code path string true "Conference code"
// @Success 200 {object} helpers.APIResponse "data contains days"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_feed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{code}/days [get]
func (c *ScheduleController) ListDays(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	days, err := c.Service.ListDays(r.Context(), code)
	if err != nil {
		c.writeError(w, r, err, "conference not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListDaysResponse{Days: days})
}

// GetDaySchedule godoc
// @Summary Get the laid-out schedule for a day
// @Description Returns room tracks with pixel geometry, the flat session list, the canvas width, and any feed diagnostics for the given day.
// @Tags schedule
// @Produce json
// @Param code path string true "Conference code"
// @Param date path string true "Day date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the day schedule"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_feed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{code}/days/{date}/schedule [get]
func (c *ScheduleController) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	date := r.PathValue("date")
	day, err := c.Service.GetDaySchedule(r.Context(), code, date)
	if err != nil {
		c.writeError(w, r, err, "day not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, day)
}

// ChronologicalList godoc
// @Summary Get the chronological session list for a day
// @Description Returns sessions grouped by start time in ascending order, with the same talk in multiple rooms collapsed into one entry.
// @Tags schedule
// @Produce json
// @Param code path string true "Conference code"
// @Param date path string true "Day date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains time groups"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_feed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{code}/days/{date}/list [get]
func (c *ScheduleController) ChronologicalList(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	date := r.PathValue("date")
	groups, err := c.Service.ChronologicalList(r.Context(), code, date)
	if err != nil {
		c.writeError(w, r, err, "day not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, groups)
}

// Search godoc
// @Summary Search sessions
// @Description Case-insensitive search over session titles and speaker names across all days. An empty query returns an empty result.
// @Tags schedule
// @Produce json
// @Param code path string true "Conference code"
// @Param q query string false "Search query"
// @Success 200 {object} helpers.APIResponse "data contains matching sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_feed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{code}/search [get]
func (c *ScheduleController) Search(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	query := r.URL.Query().Get("q")
	results, err := c.Service.Search(r.Context(), code, query)
	if err != nil {
		c.writeError(w, r, err, "conference not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, results)
}

// NextSessionResponse is the response body for GET /conferences/{code}/sessions/{slug}/next.
// Next is null when the session is the last one in its room for the day.
type NextSessionResponse struct {
	Next *domain.ItemWithDuration `json:"next"`
}

// NextSession godoc
// @Summary Get the next session in the same room
// @Description Returns the first session in the same room starting at or after the given session ends, or null when there is none.
// @Tags schedule
// @Produce json
// @Param code path string true "Conference code"
// @Param slug path string true "Session slug"
// @Success 200 {object} helpers.APIResponse "data contains next (possibly null)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_feed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{code}/sessions/{slug}/next [get]
func (c *ScheduleController) NextSession(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	slug := r.PathValue("slug")
	next, err := c.Service.NextSession(r.Context(), code, slug)
	if err != nil {
		c.writeError(w, r, err, "session not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, NextSessionResponse{Next: next})
}

// ImportFeed godoc
// @Summary Import the schedule feed
// @Description Fetches the upstream feed, stores a snapshot, rebuilds the schedule, and returns an import summary with any diagnostics. Requires authentication.
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param code path string true "Conference code"
// @Success 201 {object} helpers.APIResponse "data contains the import summary"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_feed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{code}/import [post]
func (c *ScheduleController) ImportFeed(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	summary, err := c.Service.ImportFeed(r.Context(), code)
	if err != nil {
		c.writeError(w, r, err, "conference not found")
		return
	}
	c.Logger.InfoContext(r.Context(), "feed imported",
		"conference", code,
		"days", summary.Days,
		"sessions", summary.Sessions,
		"diagnostics", len(summary.Diagnostics),
	)
	h.WriteJSONSuccess(w, http.StatusCreated, summary)
}

// ListSnapshotsResponse is the response body for GET /conferences/{code}/snapshots.
type ListSnapshotsResponse struct {
	Snapshots  []*domain.FeedSnapshot `json:"snapshots"`
	Pagination h.PaginationMeta       `json:"pagination"`
}

// ListSnapshots godoc
// @Summary List stored feed snapshots
// @Description Returns feed snapshot metadata for the conference, newest first. Requires authentication.
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param code path string true "Conference code"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains snapshots and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{code}/snapshots [get]
func (c *ScheduleController) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	params := h.ParsePagination(r)
	snapshots, total, err := c.Service.ListSnapshots(r.Context(), code, params)
	if err != nil {
		c.writeError(w, r, err, "conference not found")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListSnapshotsResponse{
		Snapshots:  snapshots,
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

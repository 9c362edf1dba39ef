package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"countdown/internal/delivery/http/helpers"
	"countdown/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// Validate implements helpers.Validator. Only presence is checked here; the
// service runs the full name and date validation so the CLI and HTTP surfaces
// apply identical rules.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /events/{name}.
type UpdateEventRequest struct {
	Date string `json:"date"`
}

// Validate implements helpers.Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Date == "" {
		errs = append(errs, "date is required")
	}
	return errs
}

// EventListResponse is the response body for GET /events.
type EventListResponse struct {
	Events []*domain.Event `json:"events"`
	Total  int             `json:"total"`
}

// EventSuccessResponse is the success envelope carrying a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope for GET /events.
type EventListSuccessResponse struct {
	Data  EventListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// writeDomainError maps core errors onto HTTP status codes. Validation and
// duplicate-name failures are 400, absence is 404, anything else is a 500
// that also gets logged.
func (c *EventController) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidDateFormat),
		errors.Is(err, domain.ErrInvalidCalendarDate),
		errors.Is(err, domain.ErrAlreadyExists):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events with freshly computed status and remaining days. Optionally filtered by ?status=ACTIVE|CURRENT|EXPIRED; an unrecognized status yields an empty list.
// @Tags events
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains events and total"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	var (
		events []*domain.Event
		err    error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		events, err = c.Service.FilterByStatus(r.Context(), status)
	} else {
		events, err = c.Service.List(r.Context())
	}
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{Events: events, Total: len(events)})
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates a countdown event. Name must be unique, at most 256 characters, without tabs or newlines; date must be a real calendar date in YYYY-MM-DD.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event name and target date"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable_entity"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req.Name, req.Date)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEvent godoc
// @Summary Get an event by name
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event name")
		return
	}
	event, found, err := c.Service.Get(r.Context(), name)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	if !found {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event's target date
// @Description Replaces the target date of an existing event. The update is delete-then-recreate under the same name; the new date is validated before the old record is removed.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Param body body UpdateEventRequest true "New target date"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable_entity"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event name")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), name, req.Date)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Success 204 "event removed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{name} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event name")
		return
	}
	removed, err := c.Service.Delete(r.Context(), name)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	if !removed {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package controllers

import (
	"log/slog"
	"net/http"

	"countdown/internal/delivery/http/helpers"
	"countdown/internal/domain"
)

// StatsSuccessResponse is the success envelope for GET /stats.
type StatsSuccessResponse struct {
	Data  *domain.Stats     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type StatsController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewStatsController(logger *slog.Logger, svc domain.EventService) *StatsController {
	return &StatsController{
		Logger:  logger,
		Service: svc,
	}
}

// GetStats godoc
// @Summary Event statistics
// @Description Returns total/active/expired counts and the next upcoming event (fewest remaining days among ACTIVE and CURRENT).
// @Tags stats
// @Produce json
// @Success 200 {object} controllers.StatsSuccessResponse "data contains the stats"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stats [get]
func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

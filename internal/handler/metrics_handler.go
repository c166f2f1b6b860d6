package handler

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/render"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/models"
)

// GetPublicationMetrics implements api.ServerInterface. Both dates are whole
// days and end_date is included.
func (h *Handler) GetPublicationMetrics(w http.ResponseWriter, r *http.Request, params api.GetPublicationMetricsParams) {
	if params.EndDate.Before(params.StartDate.Time) {
		h.sendError(w, r, http.StatusBadRequest, "INVALID_DATE_RANGE", "end_date must not be before start_date")
		return
	}

	filter := models.PublicationFilter{
		StartDate:     params.StartDate.Time,
		EndDate:       params.EndDate.AddDate(0, 0, 1),
		CountryCode:   deref(params.CountryCode),
		PlatformName:  deref(params.PlatformName),
		Source:        deref(params.Source),
		Status:        deref(params.Status),
		GatewayClient: deref(params.GatewayClient),
	}

	report, err := h.service.Publication.GetMetrics(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err, "Failed to load publication metrics")
		return
	}

	resp := api.PublicationMetricsResponse{
		Data:              make([]api.Publication, 0, len(report.Data)),
		TotalPublications: report.Totals.Total,
		TotalPublished:    report.Totals.Published,
		TotalFailed:       report.Totals.Failed,
	}
	for _, p := range report.Data {
		resp.Data = append(resp.Data, api.Publication{
			Id:            p.ID,
			PlatformName:  p.PlatformName,
			Source:        p.Source,
			Status:        p.Status,
			CountryCode:   nullString(p.CountryCode),
			GatewayClient: nullString(p.GatewayClient),
			DateCreated:   p.DateCreated,
		})
	}

	render.JSON(w, r, resp)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"hypeads-report/internal/core/domain"
	"hypeads-report/internal/core/port"
)

// progressResponse carries a derived progress metric. The label shows the
// true unclamped percentage (or a placeholder when non-finite) while the
// bar width is capped at 100 for rendering; the divergence is deliberate.
type progressResponse struct {
	Label    string  `json:"label"`
	BarWidth float64 `json:"bar_width"`
}

type summaryResponse struct {
	AgencyName           string           `json:"agency_name"`
	ClientName           string           `json:"client_name"`
	CampaignName         string           `json:"campaign_name"`
	Format               string           `json:"format"`
	StartDate            string           `json:"start_date"`
	EndDate              string           `json:"end_date"`
	Target               string           `json:"target"`
	Geo                  string           `json:"geo"`
	ObjectiveImpressions int64            `json:"objective_impressions"`
	ServedImpressions    int64            `json:"served_impressions"`
	TotalClicks          int64            `json:"total_clicks"`
	TotalCtr             float64          `json:"total_ctr"`
	TotalViewability     float64          `json:"total_viewability"`
	CPM                  decimal.Decimal  `json:"cpm"`
	Investment           decimal.Decimal  `json:"investment"`
	ConsumedBudget       decimal.Decimal  `json:"consumed_budget"`
	ImpressionsProgress  progressResponse `json:"impressions_progress"`
	BudgetProgress       progressResponse `json:"budget_progress"`
}

type totalsResponse struct {
	Impressions    int64           `json:"impressions"`
	Clicks         int64           `json:"clicks"`
	Investment     decimal.Decimal `json:"investment"`
	AvgCtr         string          `json:"avg_ctr"`
	AvgViewability string          `json:"avg_viewability"`
}

type dailyResponse struct {
	SortField string               `json:"sort_field"`
	SortOrder port.SortOrder       `json:"sort_order"`
	Rows      []domain.DailyReport `json:"rows"`
	Totals    totalsResponse       `json:"totals"`
}

type sortRequest struct {
	Field string `json:"field"`
}

// handleSummary returns the campaign summary together with the derived
// progress metrics.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	s := h.report.Summary()
	h.writeJSON(w, summaryResponse{
		AgencyName:           s.AgencyName,
		ClientName:           s.ClientName,
		CampaignName:         s.CampaignName,
		Format:               s.Format,
		StartDate:            s.StartDate,
		EndDate:              s.EndDate,
		Target:               s.Target,
		Geo:                  s.Geo,
		ObjectiveImpressions: s.ObjectiveImpressions,
		ServedImpressions:    s.ServedImpressions,
		TotalClicks:          s.TotalClicks,
		TotalCtr:             s.TotalCtr,
		TotalViewability:     s.TotalViewability,
		CPM:                  s.CPM,
		Investment:           s.Investment,
		ConsumedBudget:       s.ConsumedBudget,
		ImpressionsProgress:  newProgressResponse(s.ImpressionsProgress()),
		BudgetProgress:       newProgressResponse(s.BudgetProgress()),
	})
}

// handleDaily returns the sorted view of the daily breakdown plus the
// consolidated totals row.
func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	field, order := h.report.Sort()
	h.writeJSON(w, dailyResponse{
		SortField: field,
		SortOrder: order,
		Rows:      h.report.SortedView(),
		Totals:    newTotalsResponse(h.report.Totals()),
	})
}

// handleSort selects the sort column. Selecting the current column
// toggles the direction. Unknown fields produce HTTP 400.
func (h *Handler) handleSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.report.SetSort(req.Field); err != nil {
		if errors.Is(err, port.ErrUnknownSortField) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("set sort error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	field, order := h.report.Sort()
	h.writeJSON(w, struct {
		SortField string         `json:"sort_field"`
		SortOrder port.SortOrder `json:"sort_order"`
	}{field, order})
}

// handleInsights returns the AI narrative lines. Gateway failures are
// absorbed below this layer, so this always answers 200.
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, struct {
		Insights []string `json:"insights"`
	}{h.insights.Insights(r.Context())})
}

func newProgressResponse(pct float64) progressResponse {
	return progressResponse{
		Label:    domain.FormatPercent(pct, 1),
		BarWidth: domain.BarWidth(pct),
	}
}

func newTotalsResponse(t port.Totals) totalsResponse {
	return totalsResponse{
		Impressions: t.Impressions,
		Clicks:      t.Clicks,
		Investment:  t.Investment,
		// Means are NaN for an empty collection; formatting guards it.
		AvgCtr:         domain.FormatPercent(t.AvgCTR, 2),
		AvgViewability: domain.FormatPercent(t.AvgViewability, 2),
	}
}

// writeJSON encodes v as the response body. Encoding should rarely fail;
// failures are logged and the response left as-is.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

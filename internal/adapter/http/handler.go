package httpadapter

import (
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"hypeads-report/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound adapter for
// HTTP. It holds the report, verification and insight use cases plus the
// export adapters, and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	report        port.ReportUseCase
	verifications port.VerificationUseCase
	insights      port.InsightUseCase
	csvExporter   port.Exporter
	pdfExporter   port.Exporter
	logger        *slog.Logger
	router        chi.Router

	// exporting mirrors the report view's busy state: one document
	// generation at a time, restored on every exit path.
	exporting atomic.Bool
}

// NewHandler creates a handler with all routes configured.
func NewHandler(report port.ReportUseCase, verifications port.VerificationUseCase, insights port.InsightUseCase, csvExporter, pdfExporter port.Exporter, logger *slog.Logger) *Handler {
	h := &Handler{
		report:        report,
		verifications: verifications,
		insights:      insights,
		csvExporter:   csvExporter,
		pdfExporter:   pdfExporter,
		logger:        logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/report/summary", h.handleSummary)
		r.Get("/report/daily", h.handleDaily)
		r.Post("/report/sort", h.handleSort)
		r.Get("/report/insights", h.handleInsights)
		r.Get("/report/export/csv", h.handleExportCSV)
		r.Get("/report/export/pdf", h.handleExportPDF)
		r.Get("/verifications", h.handleVerificationList)
		r.Post("/verifications", h.handleVerificationUpload)
		r.Delete("/verifications/{id}", h.handleVerificationDelete)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

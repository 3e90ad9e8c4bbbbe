package httpadapter

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"hypeads-report/internal/core/port"
)

// handleExportCSV serves the daily breakdown as a CSV attachment. Rows
// are emitted in source order regardless of the current table sort.
func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	doc := port.ReportDocument{
		Summary: h.report.Summary(),
		Rows:    h.report.Rows(),
	}
	h.export(w, h.csvExporter, doc)
}

// handleExportPDF serves the full report as an A4 PDF attachment,
// including insights and verification metadata.
func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	doc := port.ReportDocument{
		Summary:       h.report.Summary(),
		Rows:          h.report.Rows(),
		Totals:        h.report.Totals(),
		Insights:      h.insights.Insights(r.Context()),
		Verifications: h.verifications.List(),
	}
	h.export(w, h.pdfExporter, doc)
}

// export renders the document into a buffer before touching the response,
// so a failed render surfaces as a clean HTTP 500 instead of a truncated
// attachment. The busy flag is restored on every path; a concurrent
// export answers HTTP 409.
func (h *Handler) export(w http.ResponseWriter, exporter port.Exporter, doc port.ReportDocument) {
	if !h.exporting.CompareAndSwap(false, true) {
		http.Error(w, "export already in progress", http.StatusConflict)
		return
	}
	defer h.exporting.Store(false)

	var buf bytes.Buffer
	if err := exporter.Render(&buf, doc); err != nil {
		h.logger.Error("export render error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.Filename(doc.Summary.CampaignName)))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}

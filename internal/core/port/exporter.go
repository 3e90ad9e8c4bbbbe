package port

import (
	"io"

	"hypeads-report/internal/core/domain"
)

// ReportDocument bundles everything a renderer may consume. Exporters use
// the subset they need: CSV only reads Summary and Rows, PDF renders the
// whole report. Rows are always in source order; export output does not
// depend on the current table sort.
type ReportDocument struct {
	Summary       domain.CampaignSummary
	Rows          []domain.DailyReport
	Totals        Totals
	Insights      []string
	Verifications []domain.Verification
}

// Exporter renders the report into a downloadable document.
type Exporter interface {
	// Filename derives the attachment name from the campaign name.
	Filename(campaignName string) string
	// ContentType is the MIME type of the rendered document.
	ContentType() string
	// Render writes the document to w. A failed render must leave no
	// partial state behind; callers buffer the output.
	Render(w io.Writer, doc ReportDocument) error
}

package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"hypeads-report/internal/core/domain"
	"hypeads-report/internal/core/port"
)

// PDFExporter renders the full report as an A4 portrait document:
// campaign header, progress metrics, the daily table with its totals row,
// the AI insights and the verification metadata. Interactive chrome such
// as the upload surface has no representation in the document.
type PDFExporter struct{}

// NewPDFExporter creates the PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Filename derives the attachment name from the campaign name.
func (e *PDFExporter) Filename(campaignName string) string {
	return "Reporte_Hypeads_" + sanitizeName(campaignName) + ".pdf"
}

// ContentType returns the PDF MIME type.
func (e *PDFExporter) ContentType() string {
	return "application/pdf"
}

// Render writes the paginated document to w.
func (e *PDFExporter) Render(w io.Writer, doc port.ReportDocument) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; Spanish text needs the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Reporte Hypeads - "+doc.Summary.CampaignName), false)
	pdf.AddPage()

	e.renderHeader(pdf, tr, doc.Summary)
	e.renderProgress(pdf, tr, doc.Summary)
	e.renderTable(pdf, tr, doc.Rows, doc.Totals)
	e.renderInsights(pdf, tr, doc.Insights)
	e.renderVerifications(pdf, tr, doc.Verifications)

	return pdf.Output(w)
}

func (e *PDFExporter) renderHeader(pdf *gofpdf.Fpdf, tr func(string) string, s domain.CampaignSummary) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(s.CampaignName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(s.AgencyName+" / "+s.ClientName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	meta := fmt.Sprintf("%s | %s | %s | %s - %s", s.Format, s.Geo, s.Target, s.StartDate, s.EndDate)
	pdf.CellFormat(0, 6, tr(meta), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func (e *PDFExporter) renderProgress(pdf *gofpdf.Fpdf, tr func(string) string, s domain.CampaignSummary) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Estado Campaña"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	lines := []string{
		fmt.Sprintf("Progreso Impresiones: %s (%d / %d)",
			domain.FormatPercent(s.ImpressionsProgress(), 1), s.ServedImpressions, s.ObjectiveImpressions),
		fmt.Sprintf("Presupuesto Consumido: %s ($%s / $%s)",
			domain.FormatPercent(s.BudgetProgress(), 1), s.ConsumedBudget, s.Investment),
		fmt.Sprintf("CTR Global: %v%% | Viewability Global: %v%% | Clicks Totales: %d",
			s.TotalCtr, s.TotalViewability, s.TotalClicks),
	}
	bars := []float64{s.ImpressionsProgress(), s.BudgetProgress()}
	for i, line := range lines {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
		if i < len(bars) {
			e.renderBar(pdf, bars[i])
		}
	}
	pdf.Ln(4)
}

// renderBar draws a progress bar with the visual width clamped to 100%
// even when the printed percentage exceeds it.
func (e *PDFExporter) renderBar(pdf *gofpdf.Fpdf, pct float64) {
	const barWidth = 120.0
	x, y := pdf.GetX(), pdf.GetY()
	pdf.SetFillColor(230, 230, 230)
	pdf.Rect(x, y, barWidth, 2.5, "F")
	pdf.SetFillColor(99, 52, 255)
	pdf.Rect(x, y, barWidth*domain.BarWidth(pct)/100, 2.5, "F")
	pdf.SetY(y + 4.5)
}

func (e *PDFExporter) renderTable(pdf *gofpdf.Fpdf, tr func(string) string, rows []domain.DailyReport, totals port.Totals) {
	widths := []float64{28, 34, 24, 24, 34, 34}
	headers := []string{"Fecha", "Impresiones", "Clicks", "CTR (%)", "Viewability (%)", "Inversion ($)"}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Desglose Técnico"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(245, 245, 245)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 7, tr(hd), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, tr(r.Date), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", r.Impressions), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%d", r.Clicks), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.2f", r.CTR), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.1f", r.Viewability), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, r.Investment.String(), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0], 7, tr("Totales"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", totals.Impressions), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d", totals.Clicks), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[3], 7, tr(domain.FormatPercent(totals.AvgCTR, 2)+" AVG"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[4], 7, tr(domain.FormatPercent(totals.AvgViewability, 2)+" AVG"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[5], 7, totals.Investment.String(), "1", 0, "R", true, 0, "")
	pdf.Ln(8)
}

func (e *PDFExporter) renderInsights(pdf *gofpdf.Fpdf, tr func(string) string, insights []string) {
	if len(insights) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Análisis AI"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range insights {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(3)
}

func (e *PDFExporter) renderVerifications(pdf *gofpdf.Fpdf, tr func(string) string, verifications []domain.Verification) {
	if len(verifications) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Verificaciones AI (%d)", len(verifications))), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, v := range verifications {
		line := fmt.Sprintf("%s - %s", v.Title, v.Site)
		if v.Device != "" || v.Format != "" {
			line += fmt.Sprintf(" (%s, %s)", v.Device, v.Format)
		}
		line += " - " + v.Timestamp
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

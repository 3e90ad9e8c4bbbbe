package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"hypeads-report/internal/core/port"
)

// csvHeader is the fixed column order of the daily data export.
var csvHeader = []string{"Fecha", "Impresiones", "Clicks", "CTR (%)", "Viewability (%)", "Inversion ($)"}

// CSVExporter writes the daily breakdown as comma-separated text, one row
// per day in source order. The export is independent of the table sort.
type CSVExporter struct{}

// NewCSVExporter creates the CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Filename derives the attachment name from the campaign name, replacing
// whitespace with underscores.
func (e *CSVExporter) Filename(campaignName string) string {
	return "Hypeads_Data_" + sanitizeName(campaignName) + ".csv"
}

// ContentType returns the CSV MIME type.
func (e *CSVExporter) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Render writes the header row followed by the daily rows. Investment is
// written with exact decimal formatting.
func (e *CSVExporter) Render(w io.Writer, doc port.ReportDocument) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range doc.Rows {
		record := []string{
			r.Date,
			strconv.FormatInt(r.Impressions, 10),
			strconv.FormatInt(r.Clicks, 10),
			strconv.FormatFloat(r.CTR, 'f', -1, 64),
			strconv.FormatFloat(r.Viewability, 'f', -1, 64),
			r.Investment.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// sanitizeName collapses runs of whitespace into single underscores.
func sanitizeName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

package port

import (
	"errors"

	"github.com/shopspring/decimal"

	"hypeads-report/internal/core/domain"
)

// ErrUnknownSortField is returned when a sort request names a field that
// is not a column of the daily report table.
var ErrUnknownSortField = errors.New("unknown sort field")

// SortOrder is the direction of the report table sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sortable column names of the daily report table. They match the JSON
// field names of domain.DailyReport.
const (
	FieldDate        = "date"
	FieldImpressions = "impressions"
	FieldClicks      = "clicks"
	FieldCTR         = "ctr"
	FieldViewability = "viewability"
	FieldInvestment  = "investment"
)

// ReportUseCase exposes the campaign report: the read-only summary, the
// daily breakdown with a single mutable sort key, and the consolidated
// totals row. This is the primary inbound port of the application.
type ReportUseCase interface {
	// Summary returns the campaign-level fields loaded at startup.
	Summary() domain.CampaignSummary

	// Rows returns the daily breakdown in source order, independent of
	// the current sort state. Exports consume this.
	Rows() []domain.DailyReport

	// SetSort selects the sort column. Selecting the current column
	// toggles the direction; switching to a different column always
	// resets the direction to descending. Unknown fields are rejected
	// with ErrUnknownSortField.
	SetSort(field string) error

	// Sort reports the current sort field and direction.
	Sort() (field string, order SortOrder)

	// SortedView returns a freshly ordered copy of the daily rows. The
	// source collection is never mutated. Textual values compare with
	// locale-aware collation, numeric values by magnitude.
	SortedView() []domain.DailyReport

	// Totals aggregates over the full unsorted collection: exact sums
	// for impressions, clicks and investment, arithmetic means for CTR
	// and viewability. Means are NaN for an empty collection.
	Totals() Totals
}

// Totals is the consolidated footer row of the report table.
type Totals struct {
	Impressions    int64
	Clicks         int64
	Investment     decimal.Decimal
	AvgCTR         float64
	AvgViewability float64
}

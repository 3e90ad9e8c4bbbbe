package usecase

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"hypeads-report/internal/core/domain"
	"hypeads-report/internal/core/port"
)

// ReportUseCase is the report table engine. It holds the immutable daily
// rows plus a single mutable sort key and direction, and recomputes the
// sorted view and the totals row on demand. The initial view is the date
// column in ascending order.
type ReportUseCase struct {
	mu        sync.Mutex
	summary   domain.CampaignSummary
	rows      []domain.DailyReport
	sortField string
	sortOrder port.SortOrder
	collator  *collate.Collator
}

// NewReportUseCase creates the engine over the loaded campaign data. The
// row slice is copied; callers cannot mutate the engine's collection.
func NewReportUseCase(summary domain.CampaignSummary, rows []domain.DailyReport) *ReportUseCase {
	owned := make([]domain.DailyReport, len(rows))
	copy(owned, rows)
	return &ReportUseCase{
		summary:   summary,
		rows:      owned,
		sortField: port.FieldDate,
		sortOrder: port.SortAsc,
		collator:  collate.New(language.Spanish),
	}
}

// Summary returns the campaign-level fields.
func (u *ReportUseCase) Summary() domain.CampaignSummary {
	return u.summary
}

// Rows returns the daily rows in source order.
func (u *ReportUseCase) Rows() []domain.DailyReport {
	view := make([]domain.DailyReport, len(u.rows))
	copy(view, u.rows)
	return view
}

// SetSort selects the sort column. Selecting the current column toggles
// the direction; switching columns always resets to descending, whatever
// the column type.
func (u *ReportUseCase) SetSort(field string) error {
	switch field {
	case port.FieldDate, port.FieldImpressions, port.FieldClicks,
		port.FieldCTR, port.FieldViewability, port.FieldInvestment:
	default:
		return fmt.Errorf("%w: %q", port.ErrUnknownSortField, field)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if field == u.sortField {
		if u.sortOrder == port.SortAsc {
			u.sortOrder = port.SortDesc
		} else {
			u.sortOrder = port.SortAsc
		}
		return nil
	}
	u.sortField = field
	u.sortOrder = port.SortDesc
	return nil
}

// Sort reports the current sort state.
func (u *ReportUseCase) Sort() (string, port.SortOrder) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sortField, u.sortOrder
}

// SortedView returns a freshly ordered copy of the rows. Ties may land in
// any order; rows have no secondary key.
func (u *ReportUseCase) SortedView() []domain.DailyReport {
	u.mu.Lock()
	defer u.mu.Unlock()

	view := make([]domain.DailyReport, len(u.rows))
	copy(view, u.rows)
	sort.Slice(view, func(i, j int) bool {
		c := u.compare(view[i], view[j])
		if u.sortOrder == port.SortDesc {
			return c > 0
		}
		return c < 0
	})
	return view
}

// compare orders two rows by the current sort field. Date labels compare
// with Spanish collation, so "10 dic" sorts before "2 dic" — the labels
// are text, not calendar dates. Callers must hold u.mu: the collator's
// internal buffer is not safe for concurrent use.
func (u *ReportUseCase) compare(a, b domain.DailyReport) int {
	switch u.sortField {
	case port.FieldDate:
		return u.collator.CompareString(a.Date, b.Date)
	case port.FieldImpressions:
		return compareInt64(a.Impressions, b.Impressions)
	case port.FieldClicks:
		return compareInt64(a.Clicks, b.Clicks)
	case port.FieldCTR:
		return compareFloat64(a.CTR, b.CTR)
	case port.FieldViewability:
		return compareFloat64(a.Viewability, b.Viewability)
	case port.FieldInvestment:
		return a.Investment.Cmp(b.Investment)
	}
	return 0
}

// Totals aggregates over the full unsorted collection. Sums are exact;
// investment is decimal arithmetic with no rounding loss. Means over an
// empty collection are NaN and render as a placeholder downstream.
func (u *ReportUseCase) Totals() port.Totals {
	t := port.Totals{Investment: decimal.Zero}
	var ctrSum, viewSum float64
	for _, r := range u.rows {
		t.Impressions += r.Impressions
		t.Clicks += r.Clicks
		t.Investment = t.Investment.Add(r.Investment)
		ctrSum += r.CTR
		viewSum += r.Viewability
	}
	n := len(u.rows)
	if n == 0 {
		t.AvgCTR = math.NaN()
		t.AvgViewability = math.NaN()
		return t
	}
	t.AvgCTR = ctrSum / float64(n)
	t.AvgViewability = viewSum / float64(n)
	return t
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

package usecase

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypeads-report/internal/core/domain"
	"hypeads-report/internal/core/port"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleRows is the demo campaign's daily breakdown: impressions sum to
// 730013, clicks to 4897 and investment to 2701.04.
func sampleRows() []domain.DailyReport {
	return []domain.DailyReport{
		{Date: "10 dic", Impressions: 4744, Clicks: 52, CTR: 1.43, Viewability: 64.30, Investment: money("17.55")},
		{Date: "11 dic", Impressions: 47150, Clicks: 291, CTR: 0.80, Viewability: 65.60, Investment: money("174.46")},
		{Date: "12 dic", Impressions: 88420, Clicks: 619, CTR: 0.91, Viewability: 65.90, Investment: money("327.15")},
		{Date: "13 dic", Impressions: 88386, Clicks: 607, CTR: 0.89, Viewability: 65.70, Investment: money("327.03")},
		{Date: "14 dic", Impressions: 88404, Clicks: 603, CTR: 0.89, Viewability: 65.70, Investment: money("327.09")},
		{Date: "15 dic", Impressions: 88391, Clicks: 486, CTR: 0.71, Viewability: 64.80, Investment: money("327.05")},
		{Date: "16 dic", Impressions: 88414, Clicks: 506, CTR: 0.74, Viewability: 65.00, Investment: money("327.13")},
		{Date: "17 dic", Impressions: 88438, Clicks: 535, CTR: 0.79, Viewability: 65.30, Investment: money("327.22")},
		{Date: "18 dic", Impressions: 88292, Clicks: 730, CTR: 1.07, Viewability: 67.20, Investment: money("326.68")},
		{Date: "19 dic", Impressions: 59374, Clicks: 468, CTR: 1.02, Viewability: 66.60, Investment: money("219.68")},
	}
}

func newEngine(rows []domain.DailyReport) *ReportUseCase {
	return NewReportUseCase(domain.CampaignSummary{CampaignName: "Test"}, rows)
}

func TestInitialSortState(t *testing.T) {
	u := newEngine(sampleRows())
	field, order := u.Sort()
	assert.Equal(t, port.FieldDate, field)
	assert.Equal(t, port.SortAsc, order)
}

// Selecting the current field twice toggles the direction both ways.
func TestSetSortTogglesSameField(t *testing.T) {
	u := newEngine(sampleRows())

	require.NoError(t, u.SetSort(port.FieldDate))
	_, order := u.Sort()
	assert.Equal(t, port.SortDesc, order)

	require.NoError(t, u.SetSort(port.FieldDate))
	_, order = u.Sort()
	assert.Equal(t, port.SortAsc, order)
}

// Switching fields always resets to descending, regardless of the
// previous direction or the field's type.
func TestSetSortNewFieldResetsDescending(t *testing.T) {
	u := newEngine(sampleRows())

	require.NoError(t, u.SetSort(port.FieldClicks))
	field, order := u.Sort()
	assert.Equal(t, port.FieldClicks, field)
	assert.Equal(t, port.SortDesc, order)

	// toggle to ascending, then switch again: back to descending
	require.NoError(t, u.SetSort(port.FieldClicks))
	require.NoError(t, u.SetSort(port.FieldDate))
	field, order = u.Sort()
	assert.Equal(t, port.FieldDate, field)
	assert.Equal(t, port.SortDesc, order)
}

func TestSetSortUnknownField(t *testing.T) {
	u := newEngine(sampleRows())
	err := u.SetSort("cpm")
	require.ErrorIs(t, err, port.ErrUnknownSortField)

	// state untouched after a rejected field
	field, order := u.Sort()
	assert.Equal(t, port.FieldDate, field)
	assert.Equal(t, port.SortAsc, order)
}

func TestSortedViewNumericBothDirections(t *testing.T) {
	u := newEngine(sampleRows())
	require.NoError(t, u.SetSort(port.FieldImpressions)) // switch: descending

	view := u.SortedView()
	require.Len(t, view, 10)
	for i := 1; i < len(view); i++ {
		if view[i-1].Impressions < view[i].Impressions {
			t.Fatalf("descending view out of order at %d: %d < %d", i, view[i-1].Impressions, view[i].Impressions)
		}
	}

	require.NoError(t, u.SetSort(port.FieldImpressions)) // toggle: ascending
	view = u.SortedView()
	for i := 1; i < len(view); i++ {
		if view[i-1].Impressions > view[i].Impressions {
			t.Fatalf("ascending view out of order at %d: %d > %d", i, view[i-1].Impressions, view[i].Impressions)
		}
	}
}

func TestSortedViewInvestmentDecimal(t *testing.T) {
	u := newEngine(sampleRows())
	require.NoError(t, u.SetSort(port.FieldInvestment))
	require.NoError(t, u.SetSort(port.FieldInvestment)) // ascending

	view := u.SortedView()
	for i := 1; i < len(view); i++ {
		if view[i-1].Investment.GreaterThan(view[i].Investment) {
			t.Fatalf("ascending investment out of order at %d: %s > %s", i, view[i-1].Investment, view[i].Investment)
		}
	}
}

// Date labels are text: "10 dic" sorts before "2 dic" even though day 2
// precedes day 10 on the calendar. The sample data hides this because all
// its day numbers have two digits; a single-digit day exposes it.
func TestDateSortIsLexicalNotChronological(t *testing.T) {
	rows := []domain.DailyReport{
		{Date: "9 dic", Investment: money("1")},
		{Date: "2 dic", Investment: money("1")},
		{Date: "10 dic", Investment: money("1")},
	}
	u := newEngine(rows) // initial state: date ascending

	view := u.SortedView()
	got := []string{view[0].Date, view[1].Date, view[2].Date}
	assert.Equal(t, []string{"10 dic", "2 dic", "9 dic"}, got)
}

// SortedView never mutates the source collection.
func TestSortedViewLeavesSourceOrder(t *testing.T) {
	u := newEngine(sampleRows())
	require.NoError(t, u.SetSort(port.FieldInvestment))
	_ = u.SortedView()

	rows := u.Rows()
	assert.Equal(t, "10 dic", rows[0].Date)
	assert.Equal(t, "19 dic", rows[len(rows)-1].Date)
}

func TestTotalsExactSums(t *testing.T) {
	u := newEngine(sampleRows())

	totals := u.Totals()
	assert.Equal(t, int64(730013), totals.Impressions)
	assert.Equal(t, int64(4897), totals.Clicks)
	if !totals.Investment.Equal(money("2701.04")) {
		t.Fatalf("investment sum: got %s, want 2701.04", totals.Investment)
	}

	// independent of the current sort
	require.NoError(t, u.SetSort(port.FieldViewability))
	again := u.Totals()
	assert.Equal(t, totals.Impressions, again.Impressions)
	assert.True(t, totals.Investment.Equal(again.Investment))
}

func TestTotalsAverages(t *testing.T) {
	u := newEngine(sampleRows())
	totals := u.Totals()
	assert.InDelta(t, 0.925, totals.AvgCTR, 1e-9)
	assert.InDelta(t, 65.61, totals.AvgViewability, 1e-9)
}

func TestTotalsEmptyCollection(t *testing.T) {
	u := newEngine(nil)
	totals := u.Totals()
	assert.Equal(t, int64(0), totals.Impressions)
	assert.True(t, totals.Investment.IsZero())
	assert.True(t, math.IsNaN(totals.AvgCTR))
	assert.True(t, math.IsNaN(totals.AvgViewability))
}

package domain

import "github.com/shopspring/decimal"

// DailyReport is one day of served campaign metrics. Rows are immutable
// once loaded; the table layer only reorders views over the collection.
// Date is a display label, not a parsed calendar date.
type DailyReport struct {
	Date        string          `json:"date"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	CTR         float64         `json:"ctr"`
	Viewability float64         `json:"viewability"`
	Investment  decimal.Decimal `json:"investment"`
}

// CampaignSummary holds the campaign-level fields of a report. It is
// loaded once at startup and read-only for the session. The summary is
// supplied independently of the daily breakdown and may diverge from it;
// no consistency check is performed. Monetary amounts are exact decimals.
type CampaignSummary struct {
	AgencyName           string          `json:"agencyName"`
	ClientName           string          `json:"clientName"`
	CampaignName         string          `json:"campaignName"`
	Format               string          `json:"format"`
	StartDate            string          `json:"startDate"`
	EndDate              string          `json:"endDate"`
	Target               string          `json:"target"`
	Geo                  string          `json:"geo"`
	ObjectiveImpressions int64           `json:"objectiveImpressions"`
	ServedImpressions    int64           `json:"servedImpressions"`
	TotalClicks          int64           `json:"totalClicks"`
	TotalCtr             float64         `json:"totalCtr"`
	TotalViewability     float64         `json:"totalViewability"`
	CPM                  decimal.Decimal `json:"cpm"` // carried as passive data, nothing derives from it
	Investment           decimal.Decimal `json:"investment"`
	ConsumedBudget       decimal.Decimal `json:"consumedBudget"`
}

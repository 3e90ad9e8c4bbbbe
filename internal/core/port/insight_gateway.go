package port

import (
	"context"

	"hypeads-report/internal/core/domain"
)

// InsightGateway is the outbound port to the generative AI service. Both
// operations may fail with network or service errors; callers substitute
// the fixed fallback values, implementations never need to.
type InsightGateway interface {
	// Summarize returns a free-text narrative analysis of the campaign.
	// Non-empty lines of the result are rendered as separate insights.
	Summarize(ctx context.Context, summary domain.CampaignSummary, daily []domain.DailyReport) (string, error)

	// Classify extracts structured ad metadata from a base64-encoded
	// screenshot of the given MIME type.
	Classify(ctx context.Context, imageB64, mimeType string) (domain.VerificationDetails, error)
}

// InsightUseCase serves the narrative insight lines for the report view.
type InsightUseCase interface {
	// Insights fetches the narrative and splits it into non-empty lines.
	// Failures yield the fallback line; a stale response never overwrites
	// a newer one.
	Insights(ctx context.Context) []string
}

package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"hypeads-report/internal/core/domain"
	"hypeads-report/internal/core/port"
)

// InsightUseCase fetches the AI narrative for the campaign and splits it
// into renderable lines. Overlapping fetches are tolerated: each request
// is stamped with a monotonic generation and a response only applies when
// no newer response has been applied, so a slow stale reply cannot
// overwrite a fresher one.
type InsightUseCase struct {
	gateway port.InsightGateway
	logger  *slog.Logger
	summary domain.CampaignSummary
	daily   []domain.DailyReport

	gen     atomic.Uint64
	mu      sync.Mutex
	applied uint64
	lines   []string
}

// NewInsightUseCase creates the insight service over the loaded campaign.
func NewInsightUseCase(gateway port.InsightGateway, logger *slog.Logger, summary domain.CampaignSummary, daily []domain.DailyReport) *InsightUseCase {
	return &InsightUseCase{
		gateway: gateway,
		logger:  logger,
		summary: summary,
		daily:   daily,
	}
}

// Insights fetches the narrative and returns its non-empty lines. A
// gateway failure or blank narrative yields the fixed fallback line.
func (u *InsightUseCase) Insights(ctx context.Context) []string {
	gen := u.gen.Add(1)

	text, err := u.gateway.Summarize(ctx, u.summary, u.daily)
	if err != nil {
		u.logger.Warn("insight generation failed, using fallback", slog.Any("error", err))
		text = domain.FallbackNarrative
	}
	if strings.TrimSpace(text) == "" {
		text = domain.FallbackNarrative
	}
	lines := splitLines(text)

	u.mu.Lock()
	defer u.mu.Unlock()
	if gen < u.applied {
		// A newer response already landed; serve it instead.
		return append([]string(nil), u.lines...)
	}
	u.applied = gen
	u.lines = lines
	return append([]string(nil), lines...)
}

// splitLines breaks a narrative into trimmed, non-empty lines. Each line
// is rendered as a separate insight item.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"hypeads-report/internal/core/domain"
)

// fakeGateway is a hand-rolled port.InsightGateway for tests. Behaviour
// is injected per test via function fields.
type fakeGateway struct {
	summarizeFn func(ctx context.Context, summary domain.CampaignSummary, daily []domain.DailyReport) (string, error)
	classifyFn  func(ctx context.Context, imageB64, mimeType string) (domain.VerificationDetails, error)
}

func (f *fakeGateway) Summarize(ctx context.Context, summary domain.CampaignSummary, daily []domain.DailyReport) (string, error) {
	if f.summarizeFn == nil {
		return "", errors.New("summarize not stubbed")
	}
	return f.summarizeFn(ctx, summary, daily)
}

func (f *fakeGateway) Classify(ctx context.Context, imageB64, mimeType string) (domain.VerificationDetails, error) {
	if f.classifyFn == nil {
		return domain.VerificationDetails{}, errors.New("classify not stubbed")
	}
	return f.classifyFn(ctx, imageB64, mimeType)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

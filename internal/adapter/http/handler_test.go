package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypeads-report/internal/adapter/export"
	"hypeads-report/internal/adapter/usecase"
	"hypeads-report/internal/core/domain"
)

// stubGateway always fails, so AI-backed endpoints serve fallbacks.
type stubGateway struct{}

func (stubGateway) Summarize(ctx context.Context, summary domain.CampaignSummary, daily []domain.DailyReport) (string, error) {
	return "", errors.New("gateway unavailable")
}

func (stubGateway) Classify(ctx context.Context, imageB64, mimeType string) (domain.VerificationDetails, error) {
	return domain.VerificationDetails{}, errors.New("gateway unavailable")
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	summary := domain.CampaignSummary{
		AgencyName:           "Hypeads Agency Solutions",
		CampaignName:         "Lanzamiento Verano 2025 - Premium",
		ObjectiveImpressions: 1351351,
		ServedImpressions:    730013,
		Investment:           decimal.RequireFromString("5000"),
		ConsumedBudget:       decimal.RequireFromString("2701.05"),
	}
	rows := []domain.DailyReport{
		{Date: "10 dic", Impressions: 4744, Clicks: 52, CTR: 1.43, Viewability: 64.30, Investment: decimal.RequireFromString("17.55")},
		{Date: "11 dic", Impressions: 47150, Clicks: 291, CTR: 0.81, Viewability: 65.60, Investment: decimal.RequireFromString("174.46")},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := stubGateway{}
	return NewHandler(
		usecase.NewReportUseCase(summary, rows),
		usecase.NewVerificationUseCase(gw, logger),
		usecase.NewInsightUseCase(gw, logger, summary, rows),
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		logger,
	)
}

func doRequest(h *Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleSummary(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/v1/report/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Lanzamiento Verano 2025 - Premium", resp.CampaignName)
	assert.Equal(t, "54.0%", resp.ImpressionsProgress.Label)
	assert.InDelta(t, 54.02, resp.ImpressionsProgress.BarWidth, 0.01)
	assert.Equal(t, "54.0%", resp.BudgetProgress.Label)
}

func TestHandleSortToggleAndReject(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/report/sort", strings.NewReader(`{"field":"clicks"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sort_order":"desc"`)

	rec = doRequest(h, http.MethodPost, "/api/v1/report/sort", strings.NewReader(`{"field":"clicks"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sort_order":"asc"`)

	rec = doRequest(h, http.MethodPost, "/api/v1/report/sort", strings.NewReader(`{"field":"bogus"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, http.MethodPost, "/api/v1/report/sort", strings.NewReader(`not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDailySortedView(t *testing.T) {
	h := newTestHandler(t)
	// descending impressions puts "11 dic" first
	doRequest(h, http.MethodPost, "/api/v1/report/sort", strings.NewReader(`{"field":"impressions"}`))

	rec := doRequest(h, http.MethodGet, "/api/v1/report/daily", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dailyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "11 dic", resp.Rows[0].Date)
	assert.Equal(t, int64(51894), resp.Totals.Impressions)
	assert.Equal(t, "1.12%", resp.Totals.AvgCtr)
}

func TestHandleInsightsFallback(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/v1/report/insights", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.FallbackNarrative)
}

func TestHandleExportCSV(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/v1/report/export/csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Hypeads_Data_Lanzamiento_Verano_2025_-_Premium.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Fecha,Impresiones"))
}

func TestHandleExportPDF(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/api/v1/report/export/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestVerificationUploadAndDelete(t *testing.T) {
	h := newTestHandler(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "capture.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("fake image bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/verifications", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	// the failing gateway yields the fallback details, never an error
	var created domain.Verification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Desconocido", created.Site)
	assert.Equal(t, "#", created.URL)

	rec = doRequest(h, http.MethodGet, "/api/v1/verifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list verificationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Verifications, 1)
	assert.False(t, list.Uploading)

	rec = doRequest(h, http.MethodDelete, "/api/v1/verifications/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// deleting an unknown id is still a 204
	rec = doRequest(h, http.MethodDelete, "/api/v1/verifications/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(h, http.MethodGet, "/api/v1/verifications", nil)
	var after verificationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Empty(t, after.Verifications)
}

func TestVerificationUploadMissingFile(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodPost, "/api/v1/verifications", strings.NewReader("{}"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

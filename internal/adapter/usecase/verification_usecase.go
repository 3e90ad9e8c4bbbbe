package usecase

import (
	"context"
	"encoding/base64"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"hypeads-report/internal/core/domain"
	"hypeads-report/internal/core/port"
)

// timestampLayout is the es-ES display format for verification records.
const timestampLayout = "02/01/2006, 15:04"

// VerificationUseCase exclusively owns the verification collection. All
// mutations are serialized through its operations; the collection is kept
// newest-first with no secondary index.
type VerificationUseCase struct {
	gateway port.InsightGateway
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	uploading bool
	records   []domain.Verification
}

// NewVerificationUseCase creates an empty store backed by the gateway.
func NewVerificationUseCase(gateway port.InsightGateway, logger *slog.Logger) *VerificationUseCase {
	return &VerificationUseCase{
		gateway: gateway,
		logger:  logger,
		now:     time.Now,
	}
}

// Create classifies the image and prepends the resulting record. Only one
// classification may be in flight at a time; a concurrent call fails with
// ErrUploadInProgress. Gateway failures are absorbed into the fallback
// details, so the only error this returns is the concurrency guard.
func (u *VerificationUseCase) Create(ctx context.Context, image []byte, mimeType string) (domain.Verification, error) {
	u.mu.Lock()
	if u.uploading {
		u.mu.Unlock()
		return domain.Verification{}, port.ErrUploadInProgress
	}
	u.uploading = true
	u.mu.Unlock()
	defer func() {
		u.mu.Lock()
		u.uploading = false
		u.mu.Unlock()
	}()

	encoded := base64.StdEncoding.EncodeToString(image)
	details, err := u.gateway.Classify(ctx, encoded, mimeType)
	if err != nil {
		u.logger.Warn("image classification failed, using fallback details", slog.Any("error", err))
		details = domain.FallbackVerificationDetails()
	}

	rec := domain.Verification{
		ID:        uuid.NewString(),
		Title:     details.Title,
		Site:      details.Site,
		URL:       details.URL,
		Device:    details.Device,
		Format:    details.Format,
		Timestamp: u.now().Format(timestampLayout),
		ImageURL:  "data:" + mimeType + ";base64," + encoded,
	}

	u.mu.Lock()
	u.records = append([]domain.Verification{rec}, u.records...)
	u.mu.Unlock()
	return rec, nil
}

// Delete removes the record with the given id; unknown ids are a no-op.
func (u *VerificationUseCase) Delete(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, rec := range u.records {
		if rec.ID == id {
			u.records = append(u.records[:i], u.records[i+1:]...)
			return
		}
	}
}

// List returns a snapshot of the collection, newest first.
func (u *VerificationUseCase) List() []domain.Verification {
	u.mu.Lock()
	defer u.mu.Unlock()
	view := make([]domain.Verification, len(u.records))
	copy(view, u.records)
	return view
}

// Busy reports whether a classification is in flight.
func (u *VerificationUseCase) Busy() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.uploading
}

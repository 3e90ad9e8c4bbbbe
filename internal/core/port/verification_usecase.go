package port

import (
	"context"
	"errors"

	"hypeads-report/internal/core/domain"
)

// ErrUploadInProgress is returned when a verification upload is attempted
// while another classification is still in flight. At most one upload may
// be pending at a time.
var ErrUploadInProgress = errors.New("verification upload already in progress")

// VerificationUseCase owns the session's verification collection. All
// mutations go through these operations; ordering is newest-first.
type VerificationUseCase interface {
	// Create classifies the uploaded image and prepends the resulting
	// record to the collection. A gateway failure never surfaces to the
	// caller: the record is built from fixed fallback details instead.
	// A second concurrent upload fails with ErrUploadInProgress.
	Create(ctx context.Context, image []byte, mimeType string) (domain.Verification, error)

	// Delete removes the record with the given id. Unknown ids are a
	// no-op, not an error.
	Delete(id string)

	// List returns a snapshot of the collection, newest first.
	List() []domain.Verification

	// Busy reports whether a classification is currently in flight. The
	// upload surface is disabled while this is true.
	Busy() bool
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hypeads-report/internal/core/domain"
	"hypeads-report/internal/core/port"
)

// maxUploadBytes bounds a single verification screenshot.
const maxUploadBytes = 10 << 20

type verificationListResponse struct {
	Verifications []domain.Verification `json:"verifications"`
	Uploading     bool                  `json:"uploading"`
}

// handleVerificationList returns the verification collection newest-first
// together with the upload busy flag that drives the upload surface.
func (h *Handler) handleVerificationList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, verificationListResponse{
		Verifications: h.verifications.List(),
		Uploading:     h.verifications.Busy(),
	})
}

// handleVerificationUpload accepts a single image file in the "image"
// multipart field, classifies it and returns the created record. A second
// upload while one is in flight answers HTTP 409. Classification failures
// never surface here; the record is built from fallback details instead.
func (h *Handler) handleVerificationUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("read upload error", slog.Any("error", err))
		http.Error(w, "could not read image", http.StatusBadRequest)
		return
	}
	if len(image) == 0 {
		http.Error(w, "empty image file", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	rec, err := h.verifications.Create(r.Context(), image, mimeType)
	if err != nil {
		if errors.Is(err, port.ErrUploadInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.Error("verification create error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(rec); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleVerificationDelete removes a record by id. Deleting an unknown id
// is a no-op; both cases answer HTTP 204.
func (h *Handler) handleVerificationDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	h.verifications.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

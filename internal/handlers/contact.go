package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

const maxContactBody = 64 << 10

// ContactHandler accepts contact form submissions as JSON
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.contactService.Submit(r.Context(), form)
	if err != nil {
		if errors.Is(err, services.ErrInvalidContact) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusServiceUnavailable, "Message could not be sent")
		return
	}

	respondJSON(w, http.StatusCreated, receipt)
}

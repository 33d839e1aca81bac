package contribute

import (
	"encoding/json"
	"net/http"

	"booktrace/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Submit handles POST /contribute
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON", nil)
		return
	}

	if verrs := ValidateSubmission(&sub); verrs != nil {
		details := make([]httpx.ErrorDetail, len(verrs))
		for i, ve := range verrs {
			details[i] = httpx.ErrorDetail{Field: ve.Field, Message: ve.Message}
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Submission is invalid", details)
		return
	}

	bookID, err := h.service.Submit(r.Context(), &sub)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, map[string]string{"id": bookID})
}

package handler

import (
	"encoding/json"
	"net/http"

	"calmcompass/internal/personalize"
	"calmcompass/internal/service"
)

// FeedbackHandler handles the anonymous "did this help" endpoints.
type FeedbackHandler struct {
	feedbackSvc *service.FeedbackService
}

func NewFeedbackHandler(feedbackSvc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// Submit handles POST /v1/feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input service.FeedbackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.feedbackSvc.Record(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// Export handles GET /v1/feedback/export — the retraining CSV.
func (h *FeedbackHandler) Export(w http.ResponseWriter, r *http.Request) {
	csvData, err := h.feedbackSvc.ExportCSV(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="calmcompass-feedback.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csvData))
}

// Actions handles GET /v1/feedback/actions — the fixed coping-action catalog
// so clients render the same IDs the export uses.
func (h *FeedbackHandler) Actions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"actions": personalize.Actions})
}

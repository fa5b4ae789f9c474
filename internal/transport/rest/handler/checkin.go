package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"calmcompass/internal/model"
	"calmcompass/internal/service"
)

// CheckinHandler handles the check-in flow endpoints.
type CheckinHandler struct {
	checkinSvc *service.CheckinService
}

func NewCheckinHandler(checkinSvc *service.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinSvc: checkinSvc}
}

// CreateCheckinRequest is the request body for starting a check-in.
type CreateCheckinRequest struct {
	Region string `json:"region"`
}

// SubmitAnswersRequest is the request body for one instrument's answers.
type SubmitAnswersRequest struct {
	Answers []int `json:"answers"`
}

// UpdateContextRequest merges context tags and the self-harm answer.
type UpdateContextRequest struct {
	Context  *model.Context `json:"context,omitempty"`
	SelfHarm *string        `json:"selfHarm,omitempty"`
}

// Create handles POST /v1/checkins
func (h *CheckinHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCheckinRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	checkin, err := h.checkinSvc.Create(r.Context(), req.Region)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"checkinId": checkin.ID})
}

// Instruments handles GET /v1/checkins/instruments — the catalog a client
// needs to render every question in the flow.
func (h *CheckinHandler) Instruments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"options": model.OptionLabels,
		"instruments": map[string]interface{}{
			"phq2": map[string]interface{}{"questions": model.PHQ2Questions},
			"gad2": map[string]interface{}{"questions": model.GAD2Questions},
			"phq9": map[string]interface{}{"prefix": model.PHQ9Prefix, "questions": model.PHQ9Questions},
			"gad7": map[string]interface{}{"prefix": model.GAD7Prefix, "questions": model.GAD7Questions},
			"pss4": map[string]interface{}{"questions": model.PSS4Questions},
		},
		"selfHarm": map[string]interface{}{
			"question": model.SelfHarmQuestion,
			"choices":  model.SelfHarmChoices,
		},
		"feelingToday": map[string]interface{}{
			"prompt":  model.FeelingTodayPrompt,
			"options": model.FeelingTodayOptions,
		},
		"needMost": map[string]interface{}{
			"prompt":  model.NeedMostPrompt,
			"options": model.NeedMostOptions,
		},
		"hardest": map[string]interface{}{
			"prompt":  model.HardestPrompt,
			"options": model.HardestOptions,
		},
		"contextQuestions": model.ContextQuestions,
	})
}

// SubmitAnswers handles PUT /v1/checkins/{checkinId}/answers/{instrument}
func (h *CheckinHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	checkinID := vars["checkinId"]
	inst := model.Instrument(vars["instrument"])
	if _, ok := model.ItemCount[inst]; !ok {
		writeError(w, http.StatusBadRequest, "unknown instrument")
		return
	}

	var req SubmitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	answers := make(model.AnswerSet, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = model.Answer(a)
	}

	if err := h.checkinSvc.SubmitAnswers(r.Context(), checkinID, inst, answers); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateContext handles PUT /v1/checkins/{checkinId}/context
func (h *CheckinHandler) UpdateContext(w http.ResponseWriter, r *http.Request) {
	checkinID := mux.Vars(r)["checkinId"]

	var req UpdateContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Context != nil {
		if err := h.checkinSvc.SetContext(r.Context(), checkinID, *req.Context); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	if req.SelfHarm != nil {
		if err := h.checkinSvc.SetSelfHarm(r.Context(), checkinID, model.SelfHarmAnswer(*req.SelfHarm)); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Result handles GET /v1/checkins/{checkinId}/result
func (h *CheckinHandler) Result(w http.ResponseWriter, r *http.Request) {
	checkinID := mux.Vars(r)["checkinId"]

	result, err := h.checkinSvc.Result(r.Context(), checkinID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Summary handles GET /v1/checkins/{checkinId}/summary — the plain-text
// download. Disabled (403) while the crisis gate is tripped.
func (h *CheckinHandler) Summary(w http.ResponseWriter, r *http.Request) {
	checkinID := mux.Vars(r)["checkinId"]

	text, err := h.checkinSvc.SummaryText(r.Context(), checkinID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// SaveSummary handles POST /v1/checkins/{checkinId}/summary — the explicit
// opt-in persistence path.
func (h *CheckinHandler) SaveSummary(w http.ResponseWriter, r *http.Request) {
	checkinID := mux.Vars(r)["checkinId"]

	summary, err := h.checkinSvc.SaveSummary(r.Context(), checkinID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

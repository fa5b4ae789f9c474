package handler

import (
	"net/http"

	"calmcompass/internal/crisis"
)

// SupportHandler serves the support-now content: no screening, no session,
// just the calming script and crisis lines.
type SupportHandler struct {
	defaultRegion string
}

func NewSupportHandler(defaultRegion string) *SupportHandler {
	return &SupportHandler{defaultRegion: defaultRegion}
}

// Get handles GET /v1/support
func (h *SupportHandler) Get(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		region = h.defaultRegion
	}
	res := crisis.LoadRegion(region)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"heading":        crisis.SupportNowHeading,
		"calming":        crisis.SupportNowCalming,
		"breathing":      crisis.Breathing60Sec,
		"grounding":      crisis.GroundingScript,
		"crisisMessage":  res.MessageImmediate(),
		"whenToSeekHelp": crisis.WhenToSeekHelp,
		"talkDrafts":     []string{crisis.TalkDraft(""), crisis.TalkDraft("work"), crisis.TalkDraft("family")},
	})
}

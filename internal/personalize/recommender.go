package personalize

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"calmcompass/internal/config"
	"calmcompass/internal/model"
)

// CopingAction is one concrete action the user can start now.
type CopingAction struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Short string `json:"short"`
}

// Actions is the fixed catalog. IDs must match the feedback export and any
// trained recommender.
var Actions = []CopingAction{
	{ID: "breathing_60s", Label: "60-second breathing", Short: "Breathe 4-7-8 for 60 seconds."},
	{ID: "grounding_54321", Label: "5-4-3-2-1 grounding", Short: "Name 5 things you see, 4 you feel, 3 you hear, 2 you smell, 1 you're okay about."},
	{ID: "reframe_prompt", Label: "Reframe prompt", Short: "What's one small step that would help right now? (Write or say it.)"},
	{ID: "tiny_task", Label: "2-minute cleanup", Short: "Pick one small thing (e.g. clear the desk, fill water) and do it for 2 minutes."},
	{ID: "short_walk", Label: "2-minute walk", Short: "Step outside or walk around the room for 2 minutes."},
	{ID: "reach_out", Label: "Reach out", Short: "Copy a message to send to someone you trust."},
}

// ActionByID looks up a catalog entry, or nil.
func ActionByID(id string) *CopingAction {
	for i := range Actions {
		if Actions[i].ID == id {
			return &Actions[i]
		}
	}
	return nil
}

// SuggestActionRules is the deterministic fallback: a fixed priority list
// over the same signals the model sees. The ordering is a contract.
func SuggestActionRules(phq2, gad2 int, feelingToday, workloadStress, emotionLabel string) string {
	elevatedPHQ := phq2 >= 3
	elevatedGAD := gad2 >= 3
	feeling := strings.ToLower(feelingToday)
	workload := strings.ToLower(workloadStress)
	emotion := strings.ToLower(emotionLabel)

	switch {
	case elevatedGAD || strings.Contains(emotion, "anxious") || strings.Contains(feeling, "anxiety"):
		return "breathing_60s"
	case strings.Contains(feeling, "overwhelm"):
		return "reframe_prompt"
	case strings.Contains(feeling, "low") || strings.Contains(feeling, "sad") || elevatedPHQ:
		return "reach_out"
	case strings.Contains(feeling, "stressed") || strings.Contains(workload, "stress"):
		return "short_walk"
	case strings.Contains(workload, "burnout") || strings.Contains(workload, "overwhelming"):
		return "tiny_task"
	}
	return "breathing_60s"
}

// Recommender picks one coping action, preferring the trained scorer when it
// is configured and confident.
type Recommender struct {
	cfg    *config.AIConfig
	client *http.Client
}

func NewRecommender(cfg *config.AIConfig) *Recommender {
	return &Recommender{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
	}
}

// Recommend returns the chosen action with confidence and whether the model
// drove the choice. Scores absent from the check-in are passed as 0, which
// keeps the rule path on its defaults.
func (r *Recommender) Recommend(ctx context.Context, phq2, gad2 int, c model.Context, emotionLabel string) model.RecommendedAction {
	id, conf, used := r.recommendID(ctx, phq2, gad2, c, emotionLabel)
	action := ActionByID(id)
	if action == nil {
		action = &Actions[0]
		conf, used = 0, false
	}
	return model.RecommendedAction{
		ID:         action.ID,
		Label:      action.Label,
		Short:      action.Short,
		Confidence: conf,
		ModelUsed:  used,
	}
}

func (r *Recommender) recommendID(ctx context.Context, phq2, gad2 int, c model.Context, emotionLabel string) (string, float64, bool) {
	if !r.cfg.RecommenderEnabled() {
		return SuggestActionRules(phq2, gad2, c.FeelingToday, c.WorkloadStress, emotionLabel), 0, false
	}

	reqBody := map[string]interface{}{
		"phq2_score":         phq2,
		"gad2_score":         gad2,
		"feeling_today":      c.FeelingToday,
		"workload_stress":    c.WorkloadStress,
		"need_most":          c.NeedMost,
		"text_emotion_label": emotionLabel,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return SuggestActionRules(phq2, gad2, c.FeelingToday, c.WorkloadStress, emotionLabel), 0, false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.RecommenderURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return SuggestActionRules(phq2, gad2, c.FeelingToday, c.WorkloadStress, emotionLabel), 0, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return SuggestActionRules(phq2, gad2, c.FeelingToday, c.WorkloadStress, emotionLabel), 0, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return SuggestActionRules(phq2, gad2, c.FeelingToday, c.WorkloadStress, emotionLabel), 0, false
	}

	var out struct {
		ActionID   string  `json:"action_id"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SuggestActionRules(phq2, gad2, c.FeelingToday, c.WorkloadStress, emotionLabel), 0, false
	}
	if out.Confidence < MinConfidence || ActionByID(out.ActionID) == nil {
		return SuggestActionRules(phq2, gad2, c.FeelingToday, c.WorkloadStress, emotionLabel), 0, false
	}
	return out.ActionID, out.Confidence, true
}

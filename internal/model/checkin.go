package model

import "time"

// CheckIn is the per-session state for one check-in flow. It lives in the
// session cache only; nothing persists unless the user opts in to saving
// the summary.
type CheckIn struct {
	ID        string         `json:"id"`
	Region    string         `json:"region"`
	PHQ2      AnswerSet      `json:"phq2,omitempty"`
	GAD2      AnswerSet      `json:"gad2,omitempty"`
	PHQ9      AnswerSet      `json:"phq9,omitempty"`
	GAD7      AnswerSet      `json:"gad7,omitempty"`
	PSS4      AnswerSet      `json:"pss4,omitempty"`
	Context   Context        `json:"context"`
	SelfHarm  SelfHarmAnswer `json:"selfHarm"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// DeepResult is the optional long-form outcome included when the user went
// deeper (PHQ-9 / GAD-7 / PSS-4).
type DeepResult struct {
	PHQ9             *ScoreResult `json:"phq9,omitempty"`
	PHQ9Severity     Severity     `json:"phq9Severity,omitempty"`
	PHQ9Message      string       `json:"phq9Message,omitempty"`
	GAD7             *ScoreResult `json:"gad7,omitempty"`
	GAD7Severity     Severity     `json:"gad7Severity,omitempty"`
	GAD7Message      string       `json:"gad7Message,omitempty"`
	PSS4             *ScoreResult `json:"pss4,omitempty"`
	PSS4Level        Severity     `json:"pss4Level,omitempty"`
	Elevated         bool         `json:"elevated,omitempty"`
	SuicidalIdeation bool         `json:"suicidalIdeation,omitempty"`
}

// RecommendedAction is the coping action picked by the recommender (model
// when confident, deterministic rules otherwise).
type RecommendedAction struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Short      string  `json:"short"`
	Confidence float64 `json:"confidence"`
	ModelUsed  bool    `json:"modelUsed"`
}

// CheckInResult is the full render of a check-in. When Crisis is non-nil it
// is the only populated section: no scores, no suggestion, no plan, no
// recommended action, no summary.
type CheckInResult struct {
	CheckinID      string             `json:"checkinId"`
	Crisis         *CrisisContent     `json:"crisis,omitempty"`
	PHQ2           *ScoreResult       `json:"phq2,omitempty"`
	GAD2           *ScoreResult       `json:"gad2,omitempty"`
	Suggestion     *SuggestionBundle  `json:"suggestion,omitempty"`
	Deep           *DeepResult        `json:"deep,omitempty"`
	Action         *RecommendedAction `json:"recommendedAction,omitempty"`
	CopingPlan     string             `json:"copingPlan,omitempty"`
	PlanPersonal   bool               `json:"planPersonalized,omitempty"`
	Tailored       bool               `json:"tailored,omitempty"`
	EmotionLabel   string             `json:"emotionLabel,omitempty"`
	EmotionExplain string             `json:"emotionExplain,omitempty"`
	TalkDraft      string             `json:"talkDraft,omitempty"`

	// SupportAlert asks the client to surface the crisis lines inline. Set
	// from the answer-derived signals (PHQ-9 item 9, PHQ-2 hopelessness);
	// unlike the gate it never blocks the rest of the result.
	SupportAlert bool `json:"supportAlert,omitempty"`
}

// SavedSummary is the opt-in persisted plain-text summary.
type SavedSummary struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	CheckinID string    `json:"checkinId" bson:"checkinId"`
	Text      string    `json:"text" bson:"text"`
	SavedAt   time.Time `json:"savedAt" bson:"savedAt"`
}

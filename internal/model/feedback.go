package model

import "time"

// FeedbackCSVColumns is the export column order. Retraining tooling consumes
// this file positionally, so order and presence are load-bearing.
var FeedbackCSVColumns = []string{
	"timestamp_date",
	"phq2_score",
	"gad2_score",
	"feeling_today",
	"workload_stress",
	"need_most",
	"text_emotion_label",
	"action_suggested",
	"action_taken",
	"helped_score",
	"ml_used",
	"confidence",
}

// HelpedOutcome is the 3-level "did this help" response.
type HelpedOutcome string

const (
	HelpedYes       HelpedOutcome = "yes"
	HelpedALittle   HelpedOutcome = "a_little"
	HelpedNotReally HelpedOutcome = "not_really"
)

// HelpedScores maps outcomes to the exported integer score.
var HelpedScores = map[HelpedOutcome]int{
	HelpedYes:       2,
	HelpedALittle:   1,
	HelpedNotReally: 0,
}

// SampleWeight maps a helped score to the training sample weight so the
// recommender favors actions that helped.
func SampleWeight(helpedScore int) float64 {
	switch helpedScore {
	case 2:
		return 2.0
	case 1:
		return 1.0
	default:
		return 0.25
	}
}

// FeedbackRecord is one anonymous "did this help" row. No PII: date only,
// scores, three context tags, suggested vs taken action, outcome.
type FeedbackRecord struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	TimestampDate   string    `json:"timestampDate" bson:"timestampDate"` // YYYY-MM-DD
	PHQ2Score       *int      `json:"phq2Score" bson:"phq2Score"`
	GAD2Score       *int      `json:"gad2Score" bson:"gad2Score"`
	FeelingToday    string    `json:"feelingToday" bson:"feelingToday"`
	WorkloadStress  string    `json:"workloadStress" bson:"workloadStress"`
	NeedMost        string    `json:"needMost" bson:"needMost"`
	EmotionLabel    string    `json:"emotionLabel" bson:"emotionLabel"`
	ActionSuggested string    `json:"actionSuggested" bson:"actionSuggested"`
	ActionTaken     string    `json:"actionTaken" bson:"actionTaken"`
	HelpedScore     int       `json:"helpedScore" bson:"helpedScore"`
	MLUsed          bool      `json:"mlUsed" bson:"mlUsed"`
	Confidence      float64   `json:"confidence" bson:"confidence"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

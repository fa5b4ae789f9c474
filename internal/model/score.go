package model

// ScoreResult is the outcome of scoring one instrument.
// Score is nil only when zero items were answered (short forms) or any item
// was skipped (long forms); nil means "unknown", 0 means "no symptoms".
type ScoreResult struct {
	Score    *int `json:"score"`
	Answered int  `json:"answered"`
	Total    int  `json:"total"`
}

// Partial reports whether some but not all items were answered.
func (r ScoreResult) Partial() bool {
	return r.Answered > 0 && r.Answered < r.Total
}

// Severity is a named band for a scored instrument.
type Severity string

const (
	SeverityMinimal          Severity = "minimal"
	SeverityMild             Severity = "mild"
	SeverityModerate         Severity = "moderate"
	SeverityModeratelySevere Severity = "moderately_severe"
	SeveritySevere           Severity = "severe"

	// Short-form (PHQ-2 / GAD-2) levels.
	SeverityWorthFollowingUp Severity = "worth_following_up"
	SeverityUnknown          Severity = "unknown"

	// PSS-4 levels.
	StressLow      Severity = "low"
	StressModerate Severity = "moderate"
	StressHigh     Severity = "high"
)

package screening

import "calmcompass/internal/model"

// PHQ9Severity bands a PHQ-9 score (0–27). Boundaries are inclusive on the
// low end of each band.
func PHQ9Severity(score int) model.Severity {
	switch {
	case score <= 4:
		return model.SeverityMinimal
	case score <= 9:
		return model.SeverityMild
	case score <= 14:
		return model.SeverityModerate
	case score <= 19:
		return model.SeverityModeratelySevere
	default:
		return model.SeveritySevere
	}
}

// GAD7Severity bands a GAD-7 score (0–21).
func GAD7Severity(score int) model.Severity {
	switch {
	case score <= 4:
		return model.SeverityMinimal
	case score <= 9:
		return model.SeverityMild
	case score <= 14:
		return model.SeverityModerate
	default:
		return model.SeveritySevere
	}
}

// PSS4Level bands a PSS-4 score (0–16).
func PSS4Level(score int) model.Severity {
	switch {
	case score <= 4:
		return model.StressLow
	case score <= 8:
		return model.StressModerate
	default:
		return model.StressHigh
	}
}

// ShortFormLevel bands a PHQ-2 or GAD-2 score: 0–2 minimal, 3+ worth
// following up. A nil score is unknown, not minimal.
func ShortFormLevel(score *int) model.Severity {
	if score == nil {
		return model.SeverityUnknown
	}
	if *score <= 2 {
		return model.SeverityMinimal
	}
	return model.SeverityWorthFollowingUp
}

// HasSuicidalIdeation flags the PHQ-9 suicidal-ideation item: true iff the
// set has at least 9 answers and item 9 (index 8) is "Nearly every day".
// A prefer-not-to-answer on that item never trips the flag.
func HasSuicidalIdeation(answers model.AnswerSet) bool {
	return len(answers) >= 9 && answers[8] == model.AnswerNearlyEveryDay
}

// CrisisByScore is the legacy score-derived crisis signal: PHQ-2 item 2
// (hopelessness) answered "Nearly every day". The live flow uses the
// dedicated self-harm question instead; this stays as a secondary signal.
func CrisisByScore(phq2 model.AnswerSet) bool {
	if len(phq2) < 2 {
		return false
	}
	return phq2[1] == model.AnswerNearlyEveryDay
}

// IsElevated reports whether either short-form score is present and >= 3.
func IsElevated(phq2, gad2 *int) bool {
	if phq2 != nil && *phq2 >= 3 {
		return true
	}
	if gad2 != nil && *gad2 >= 3 {
		return true
	}
	return false
}

// IsElevatedDeep reports whether either long-form score is present and >= 10.
func IsElevatedDeep(phq9, gad7 *int) bool {
	if phq9 != nil && *phq9 >= 10 {
		return true
	}
	if gad7 != nil && *gad7 >= 10 {
		return true
	}
	return false
}

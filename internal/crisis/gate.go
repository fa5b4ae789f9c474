// Package crisis implements the crisis gate: the dedicated self-harm
// question and the fixed content shown when it trips. The gate is evaluated
// before anything else and suppresses scoring, suggestions, personalization,
// and the summary.
package crisis

import "calmcompass/internal/model"

// IsCrisis is true iff the self-harm answer is exactly "Yes".
// "No", "Prefer not to say", and an unset answer all proceed to the normal
// flow — unset defaulting through is deliberate current behavior.
func IsCrisis(answer model.SelfHarmAnswer) bool {
	return answer == model.SelfHarmYes
}

// Content builds the crisis-only render for a region: fixed message,
// grounding script, and the single navigation action back to start.
func Content(region string) *model.CrisisContent {
	res := LoadRegion(region)
	return &model.CrisisContent{
		Heading:         "You’re not alone. Reach out now.",
		Message:         res.MessageImmediate(),
		ImmediateDanger: res.Crisis.ImmediateDanger,
		GroundingScript: GroundingScript,
		BackAction:      "Back to home",
	}
}

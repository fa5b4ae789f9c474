package model

// SelfHarmAnswer is the response to the dedicated self-harm question.
// The zero value means the question has not been answered yet.
type SelfHarmAnswer string

const (
	SelfHarmUnset          SelfHarmAnswer = ""
	SelfHarmNo             SelfHarmAnswer = "No"
	SelfHarmYes            SelfHarmAnswer = "Yes"
	SelfHarmPreferNotToSay SelfHarmAnswer = "Prefer not to say"
)

// Valid reports whether the answer is one of the presented choices or unset.
func (a SelfHarmAnswer) Valid() bool {
	switch a {
	case SelfHarmUnset, SelfHarmNo, SelfHarmYes, SelfHarmPreferNotToSay:
		return true
	}
	return false
}

// CrisisContent is the only output permitted once the crisis gate trips:
// a fixed message, a grounding script, and a single way back to start.
type CrisisContent struct {
	Heading         string `json:"heading"`
	Message         string `json:"message"`
	ImmediateDanger string `json:"immediateDanger"`
	GroundingScript string `json:"groundingScript"`
	BackAction      string `json:"backAction"`
}

package screening

import "calmcompass/internal/model"

// Human-language understanding messages for the deep screens. Empathetic,
// non-clinical — shown before any number.

var understandingByPHQ9 = map[model.Severity]string{
	model.SeverityMinimal:          "Your answers don’t suggest much low mood lately. That’s a good sign. Small habits—sleep, connection, a bit of movement—can help keep things steady.",
	model.SeverityMild:             "You’ve been carrying a bit more emotional weight than usual. That doesn’t mean something is wrong with you—it means you’ve been under pressure. Reaching out to someone you trust can help.",
	model.SeverityModerate:         "You may be experiencing emotional fatigue. You’ve been carrying a lot. This doesn’t mean something is wrong with you—it means your system could use some support. Talking to a professional or someone you trust is a strong next step.",
	model.SeverityModeratelySevere: "You’ve been going through a lot. What you’re feeling is real and it’s heavy. You don’t have to handle it alone. Reaching out to a professional or someone you trust can make a real difference.",
	model.SeveritySevere:           "You’ve been carrying more than anyone should have to. What you’re feeling is real. You deserve support. Please consider reaching out to a professional or someone you trust—and if you have thoughts of hurting yourself, 988 is there 24/7.",
}

var understandingByGAD7 = map[model.Severity]string{
	model.SeverityMinimal:  "Your answers don’t suggest much anxiety lately. Keeping a simple routine and short check-ins with others can help.",
	model.SeverityMild:     "It looks like your mind has been under a bit of pressure lately. This happens when we carry unresolved worries. Naming it and one small step (breathing, a walk, or sharing with someone) can help.",
	model.SeverityModerate: "Your mind has been under real pressure. That’s exhausting. You’re not overreacting—you’re carrying a lot. Grounding, breathing, and talking to someone can help.",
	model.SeveritySevere:   "Worry and anxiety have been taking up a lot of space. That’s really hard. You deserve support. Reaching out to a professional or someone you trust—and using 988 if things feel too heavy—can help.",
}

// UnderstandingPHQ9 returns the understanding line for a PHQ-9 score, or a
// gentle default when the score is absent.
func UnderstandingPHQ9(score *int) string {
	if score == nil {
		return "If you’d like to talk to someone about how you’ve been feeling, that’s always an option."
	}
	if msg, ok := understandingByPHQ9[PHQ9Severity(*score)]; ok {
		return msg
	}
	return understandingByPHQ9[model.SeverityMinimal]
}

// UnderstandingGAD7 returns the understanding line for a GAD-7 score, or a
// gentle default when the score is absent.
func UnderstandingGAD7(score *int) string {
	if score == nil {
		return "If worry or anxiety is on your mind, talking to someone can help."
	}
	if msg, ok := understandingByGAD7[GAD7Severity(*score)]; ok {
		return msg
	}
	return understandingByGAD7[model.SeverityMinimal]
}

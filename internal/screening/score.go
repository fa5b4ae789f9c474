// Package screening scores the validated instruments (PHQ-2/9, GAD-2/7,
// PSS-4). Not a diagnosis — for awareness and when to seek help only.
package screening

import (
	"fmt"

	"calmcompass/internal/model"
)

// ErrAnswerCount is returned when an AnswerSet has the wrong length for its
// instrument. This is a caller bug, not a runtime condition to recover from.
var ErrAnswerCount = fmt.Errorf("answer set has wrong length for instrument")

// capped is the 0–3 contribution of one non-sentinel item.
func capped(a model.Answer) int {
	if a > model.AnswerMaxFrequency {
		return int(model.AnswerMaxFrequency)
	}
	return int(a)
}

func hasSkip(answers model.AnswerSet) bool {
	for _, a := range answers {
		if a.Skipped() {
			return true
		}
	}
	return false
}

// scoreShort implements partial scoring for the 2-item screens: skipped
// items are excluded from the sum, zero answered items means no score.
func scoreShort(answers model.AnswerSet, inst model.Instrument) (model.ScoreResult, error) {
	total := model.ItemCount[inst]
	if len(answers) != total {
		return model.ScoreResult{}, fmt.Errorf("%s requires exactly %d answers: %w", inst, total, ErrAnswerCount)
	}
	sum, answered := 0, 0
	for _, a := range answers {
		if a.Skipped() {
			continue
		}
		sum += capped(a)
		answered++
	}
	if answered == 0 {
		return model.ScoreResult{Score: nil, Answered: 0, Total: total}, nil
	}
	s := sum
	return model.ScoreResult{Score: &s, Answered: answered, Total: total}, nil
}

// scoreStrict implements the long-form policy: any skipped item makes the
// whole score absent. The deep screens are opt-in, so a clean signal matters
// more than availability.
func scoreStrict(answers model.AnswerSet, inst model.Instrument) (model.ScoreResult, error) {
	total := model.ItemCount[inst]
	if len(answers) != total {
		return model.ScoreResult{}, fmt.Errorf("%s requires exactly %d answers: %w", inst, total, ErrAnswerCount)
	}
	if hasSkip(answers) {
		return model.ScoreResult{Score: nil, Answered: 0, Total: total}, nil
	}
	sum := 0
	for i, a := range answers {
		v := capped(a)
		if inst == model.InstrumentPSS4 && model.PSS4Reverse[i] {
			v = 3 - v
		}
		sum += v
	}
	return model.ScoreResult{Score: &sum, Answered: total, Total: total}, nil
}

// ScorePHQ2 scores the 2-item depression screen (0–6, partial allowed).
func ScorePHQ2(answers model.AnswerSet) (model.ScoreResult, error) {
	return scoreShort(answers, model.InstrumentPHQ2)
}

// ScoreGAD2 scores the 2-item anxiety screen (0–6, partial allowed).
func ScoreGAD2(answers model.AnswerSet) (model.ScoreResult, error) {
	return scoreShort(answers, model.InstrumentGAD2)
}

// ScorePHQ9 scores the full depression screen (0–27, strict).
func ScorePHQ9(answers model.AnswerSet) (model.ScoreResult, error) {
	return scoreStrict(answers, model.InstrumentPHQ9)
}

// ScoreGAD7 scores the full anxiety screen (0–21, strict).
func ScoreGAD7(answers model.AnswerSet) (model.ScoreResult, error) {
	return scoreStrict(answers, model.InstrumentGAD7)
}

// ScorePSS4 scores the 4-item Perceived Stress Scale (0–16, strict).
// Items 1 and 2 are reverse-scored as 3 minus the capped value.
func ScorePSS4(answers model.AnswerSet) (model.ScoreResult, error) {
	return scoreStrict(answers, model.InstrumentPSS4)
}

// Score dispatches to the scorer for the given instrument.
func Score(inst model.Instrument, answers model.AnswerSet) (model.ScoreResult, error) {
	switch inst {
	case model.InstrumentPHQ2:
		return ScorePHQ2(answers)
	case model.InstrumentGAD2:
		return ScoreGAD2(answers)
	case model.InstrumentPHQ9:
		return ScorePHQ9(answers)
	case model.InstrumentGAD7:
		return ScoreGAD7(answers)
	case model.InstrumentPSS4:
		return ScorePSS4(answers)
	}
	return model.ScoreResult{}, fmt.Errorf("unknown instrument %q", inst)
}

package model

// Answer is one Likert response: 0–3 frequency, or PreferNotToAnswer.
type Answer int

const (
	AnswerNotAtAll       Answer = 0
	AnswerSeveralDays    Answer = 1
	AnswerMoreThanHalf   Answer = 2
	AnswerNearlyEveryDay Answer = 3
	AnswerPreferNotToSay Answer = 4 // excluded from sums, never counted as 4
	AnswerMaxFrequency          = AnswerNearlyEveryDay
)

// OptionLabels are the response choices shown for every screening item.
var OptionLabels = []string{
	"Not at all",
	"Several days",
	"More than half the days",
	"Nearly every day",
	"Prefer not to answer",
}

// AnswerSet is an ordered set of answers for one instrument.
type AnswerSet []Answer

// Skipped reports whether the answer is the prefer-not-to-answer sentinel.
func (a Answer) Skipped() bool {
	return a == AnswerPreferNotToSay
}

// Valid reports whether the answer is one of the five presented choices.
func (a Answer) Valid() bool {
	return a >= AnswerNotAtAll && a <= AnswerPreferNotToSay
}

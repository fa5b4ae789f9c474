package model

// Context holds the optional one-tap lifestyle tags and free-text inputs
// collected in the go-deeper flow. Free text never feeds the decision core;
// it is only passed to the optional emotion classifier.
type Context struct {
	FeelingToday     string `json:"feelingToday,omitempty" bson:"feelingToday,omitempty"`
	WorkloadStress   string `json:"workloadStress,omitempty" bson:"workloadStress,omitempty"`
	SleepLastNight   string `json:"sleepLastNight,omitempty" bson:"sleepLastNight,omitempty"`
	SocialToday      string `json:"socialToday,omitempty" bson:"socialToday,omitempty"`
	PhysicalActivity string `json:"physicalActivity,omitempty" bson:"physicalActivity,omitempty"`
	NeedMost         string `json:"needMost,omitempty" bson:"needMost,omitempty"`
	Hardest          string `json:"hardest,omitempty" bson:"hardest,omitempty"`
	OneSentence      string `json:"oneSentence,omitempty" bson:"oneSentence,omitempty"`
}

// Band names the response category a check-in resolves to.
type Band string

const (
	BandMinimal         Band = "minimal"
	BandElevated        Band = "elevated"
	BandElevatedAnxiety Band = "elevated_anxiety"
	BandElevatedMood    Band = "elevated_mood"
	BandBurnout         Band = "burnout"
)

// SuggestionBundle is the fixed response shape every non-crisis check-in
// receives: one understanding line, one action, one reassurance, exactly two
// next steps, one support line. PartialNote is set only when exactly one of
// the two short-form scores is absent.
type SuggestionBundle struct {
	Band          Band     `json:"band"`
	Understanding string   `json:"understanding"`
	Action        string   `json:"action"`
	Reassurance   string   `json:"reassurance"`
	NextSteps     []string `json:"nextSteps"`
	Support       string   `json:"support"`
	PartialNote   string   `json:"partialNote,omitempty"`
}

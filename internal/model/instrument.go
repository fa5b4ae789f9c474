package model

// Instrument identifies a screening questionnaire.
type Instrument string

const (
	InstrumentPHQ2 Instrument = "phq2"
	InstrumentGAD2 Instrument = "gad2"
	InstrumentPHQ9 Instrument = "phq9"
	InstrumentGAD7 Instrument = "gad7"
	InstrumentPSS4 Instrument = "pss4"
)

// ItemCount is the fixed number of items per instrument.
var ItemCount = map[Instrument]int{
	InstrumentPHQ2: 2,
	InstrumentGAD2: 2,
	InstrumentPHQ9: 9,
	InstrumentGAD7: 7,
	InstrumentPSS4: 4,
}

var PHQ2Questions = []string{
	"Over the last 2 weeks, how often have you had little interest or pleasure in doing things?",
	"Over the last 2 weeks, how often have you been feeling down, depressed, or hopeless?",
}

var GAD2Questions = []string{
	"Over the last 2 weeks, how often have you been feeling nervous, anxious, or on edge?",
	"Over the last 2 weeks, how often have you not been able to stop or control worrying?",
}

const PHQ9Prefix = "Over the last 2 weeks, how often have you been bothered by the following?"

var PHQ9Questions = []string{
	"Little interest or pleasure in doing things",
	"Feeling down, depressed, or hopeless",
	"Trouble falling or staying asleep, or sleeping too much",
	"Feeling tired or having little energy",
	"Poor appetite or overeating",
	"Feeling bad about yourself — or that you are a failure or have let yourself or your family down",
	"Trouble concentrating on things, such as reading the newspaper or watching television",
	"Moving or speaking so slowly that other people could have noticed — or the opposite; being so fidgety or restless that you have been moving around a lot more than usual",
	"Thoughts that you would be better off dead or of hurting yourself in some way",
}

const GAD7Prefix = "Over the last 2 weeks, how often have you been bothered by the following?"

var GAD7Questions = []string{
	"Feeling nervous, anxious, or on edge",
	"Not being able to stop or control worrying",
	"Worrying too much about different things",
	"Trouble relaxing",
	"Being so restless that it's hard to sit still",
	"Becoming easily annoyed or irritable",
	"Feeling afraid as if something awful might happen",
}

var PSS4Questions = []string{
	"In the last month, how often have you felt that you were unable to control the important things in your life?",
	"In the last month, how often have you felt confident about your ability to handle your personal problems?",
	"In the last month, how often have you felt that things were going your way?",
	"In the last month, how often have you felt difficulties were piling up so high that you could not overcome them?",
}

// PSS-4 items 1 and 2 are positively worded and reverse-scored.
var PSS4Reverse = [4]bool{false, true, true, false}

const SelfHarmQuestion = "Are you having thoughts of harming yourself today?"

var SelfHarmChoices = []string{"No", "Yes", "Prefer not to say"}

const FeelingTodayPrompt = "How are you feeling today?"

var FeelingTodayOptions = []string{
	"Overwhelmed",
	"Anxious",
	"Low energy",
	"Sad",
	"Stressed",
	"Not sure",
}

const NeedMostPrompt = "What do I need right now?"

var NeedMostOptions = []string{"Rest", "Clarity", "Vent", "Motivation", "Calm"}

const HardestPrompt = "What feels hardest right now? (Pick one—we’ll suggest next steps.)"

var HardestOptions = []string{
	"Sleep",
	"Motivation",
	"Worry or anxiety",
	"Relationships",
	"Workload or stress",
}

// ContextQuestion is a one-tap lifestyle question shown in the go-deeper flow.
type ContextQuestion struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

var ContextQuestions = []ContextQuestion{
	{
		ID:      "sleep_last_night",
		Label:   "Roughly how many hours did you sleep last night?",
		Options: []string{"Under 5", "5–6", "6–7", "7–8", "8+", "Prefer not to say"},
	},
	{
		ID:      "social_today",
		Label:   "How much social connection have you had today?",
		Options: []string{"Almost none", "A little", "Some", "A lot", "Prefer not to say"},
	},
	{
		ID:      "workload_stress",
		Label:   "How does your workload or stress feel right now?",
		Options: []string{"Manageable", "A bit much", "Overwhelming", "Prefer not to say"},
	},
	{
		ID:      "physical_activity",
		Label:   "Any physical activity today (walk, stretch, exercise)?",
		Options: []string{"None", "A little", "Some", "Yes, a good amount", "Prefer not to say"},
	},
}

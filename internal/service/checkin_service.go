package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"calmcompass/internal/cache"
	"calmcompass/internal/crisis"
	"calmcompass/internal/model"
	"calmcompass/internal/personalize"
	"calmcompass/internal/repository"
	"calmcompass/internal/screening"
	"calmcompass/internal/suggest"
)

var (
	// ErrNotFound means the check-in does not exist or expired.
	ErrNotFound = cache.ErrNotFound
	// ErrCrisisActive guards the summary and feedback surfaces while the
	// crisis gate is tripped.
	ErrCrisisActive = errors.New("crisis gate active")
	// ErrBadAnswer covers out-of-range answer values and bad enums.
	ErrBadAnswer = errors.New("invalid answer value")
)

// CheckinService runs the check-in flow: session state, scoring, the crisis
// gate, and the suggestion bundle with optional personalization.
type CheckinService struct {
	cache         cache.CheckinCache
	summaryRepo   repository.SummaryRepo
	emotion       *personalize.EmotionClassifier
	planner       *personalize.PlanGenerator
	recommender   *personalize.Recommender
	defaultRegion string

	// resolve is the suggestion resolver; a field so tests can observe that
	// the crisis path never reaches it.
	resolve func(phq2, gad2 *int, ctx model.Context) model.SuggestionBundle
}

func NewCheckinService(
	checkinCache cache.CheckinCache,
	summaryRepo repository.SummaryRepo,
	emotion *personalize.EmotionClassifier,
	planner *personalize.PlanGenerator,
	recommender *personalize.Recommender,
	defaultRegion string,
) *CheckinService {
	return &CheckinService{
		cache:         checkinCache,
		summaryRepo:   summaryRepo,
		emotion:       emotion,
		planner:       planner,
		recommender:   recommender,
		defaultRegion: defaultRegion,
		resolve:       suggest.Resolve,
	}
}

// Create starts a new check-in session.
func (s *CheckinService) Create(ctx context.Context, region string) (*model.CheckIn, error) {
	if region == "" {
		region = s.defaultRegion
	}
	now := time.Now()
	checkin := &model.CheckIn{
		ID:        uuid.NewString(),
		Region:    region,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cache.Set(ctx, checkin); err != nil {
		return nil, fmt.Errorf("create check-in: %w", err)
	}
	return checkin, nil
}

// SubmitAnswers stores one instrument's answer set after validating it.
// Wrong length or out-of-range values are contract violations and fail
// loudly; they are never silently coerced.
func (s *CheckinService) SubmitAnswers(ctx context.Context, id string, inst model.Instrument, answers model.AnswerSet) error {
	for _, a := range answers {
		if !a.Valid() {
			return fmt.Errorf("answer %d out of range: %w", a, ErrBadAnswer)
		}
	}
	// Scoring doubles as length validation (screening.ErrAnswerCount).
	if _, err := screening.Score(inst, answers); err != nil {
		return err
	}

	checkin, err := s.cache.Get(ctx, id)
	if err != nil {
		return err
	}
	switch inst {
	case model.InstrumentPHQ2:
		checkin.PHQ2 = answers
	case model.InstrumentGAD2:
		checkin.GAD2 = answers
	case model.InstrumentPHQ9:
		checkin.PHQ9 = answers
	case model.InstrumentGAD7:
		checkin.GAD7 = answers
	case model.InstrumentPSS4:
		checkin.PSS4 = answers
	}
	checkin.UpdatedAt = time.Now()
	return s.cache.Set(ctx, checkin)
}

// SetContext merges the optional context tags into the session. Empty
// fields leave the stored value untouched.
func (s *CheckinService) SetContext(ctx context.Context, id string, c model.Context) error {
	checkin, err := s.cache.Get(ctx, id)
	if err != nil {
		return err
	}
	merged := checkin.Context
	if c.FeelingToday != "" {
		merged.FeelingToday = c.FeelingToday
	}
	if c.WorkloadStress != "" {
		merged.WorkloadStress = c.WorkloadStress
	}
	if c.SleepLastNight != "" {
		merged.SleepLastNight = c.SleepLastNight
	}
	if c.SocialToday != "" {
		merged.SocialToday = c.SocialToday
	}
	if c.PhysicalActivity != "" {
		merged.PhysicalActivity = c.PhysicalActivity
	}
	if c.NeedMost != "" {
		merged.NeedMost = c.NeedMost
	}
	if c.Hardest != "" {
		merged.Hardest = c.Hardest
	}
	if c.OneSentence != "" {
		merged.OneSentence = strings.TrimSpace(c.OneSentence)
	}
	checkin.Context = merged
	checkin.UpdatedAt = time.Now()
	return s.cache.Set(ctx, checkin)
}

// SetSelfHarm records the dedicated self-harm answer.
func (s *CheckinService) SetSelfHarm(ctx context.Context, id string, answer model.SelfHarmAnswer) error {
	if !answer.Valid() {
		return fmt.Errorf("self-harm answer %q: %w", answer, ErrBadAnswer)
	}
	checkin, err := s.cache.Get(ctx, id)
	if err != nil {
		return err
	}
	checkin.SelfHarm = answer
	checkin.UpdatedAt = time.Now()
	return s.cache.Set(ctx, checkin)
}

// Result renders the check-in. The crisis gate is evaluated first, from the
// stored answer, on every call; once it trips nothing below it runs — no
// scoring, no resolver, no personalization, no plan.
func (s *CheckinService) Result(ctx context.Context, id string) (*model.CheckInResult, error) {
	checkin, err := s.cache.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if crisis.IsCrisis(checkin.SelfHarm) {
		return &model.CheckInResult{
			CheckinID: checkin.ID,
			Crisis:    crisis.Content(checkin.Region),
		}, nil
	}

	phq2 := scoreOrEmpty(model.InstrumentPHQ2, checkin.PHQ2)
	gad2 := scoreOrEmpty(model.InstrumentGAD2, checkin.GAD2)

	bundle := s.resolve(phq2.Score, gad2.Score, checkin.Context)

	result := &model.CheckInResult{
		CheckinID:  checkin.ID,
		PHQ2:       &phq2,
		GAD2:       &gad2,
		Suggestion: &bundle,
		TalkDraft:  crisis.TalkDraft(""),
	}

	// Optional one-sentence tailoring: applied atomically or not at all.
	// When the classifier is off or unconfident, the keyword lexicon still
	// gives the sentence a short human read.
	emotionLabel := ""
	if checkin.Context.OneSentence != "" {
		if tailored, label := s.emotion.Tailor(ctx, checkin.Context.OneSentence); tailored != nil {
			result.Suggestion.Understanding = tailored.Understanding
			result.Suggestion.Action = tailored.Action
			result.Tailored = true
			result.EmotionLabel = label
			emotionLabel = label
		} else {
			result.EmotionExplain = personalize.ExplainEmotion(personalize.DetectEmotionLexicon(checkin.Context.OneSentence))
		}
	}

	if deep := deepResult(checkin); deep != nil {
		result.Deep = deep
		result.SupportAlert = deep.SuicidalIdeation
	}
	if screening.CrisisByScore(checkin.PHQ2) {
		result.SupportAlert = true
	}

	action := s.recommender.Recommend(ctx, intOrZero(phq2.Score), intOrZero(gad2.Score), checkin.Context, emotionLabel)
	result.Action = &action

	plan, personalized := s.planner.Generate(ctx, checkin.Context.Hardest,
		screening.ShortFormLevel(phq2.Score), screening.ShortFormLevel(gad2.Score))
	result.CopingPlan = plan
	result.PlanPersonal = personalized

	return result, nil
}

// SummaryText renders the plain-text summary. Refused while the crisis gate
// is tripped — the download surface is disabled along with everything else.
func (s *CheckinService) SummaryText(ctx context.Context, id string) (string, error) {
	checkin, err := s.cache.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if crisis.IsCrisis(checkin.SelfHarm) {
		return "", ErrCrisisActive
	}
	result, err := s.Result(ctx, id)
	if err != nil {
		return "", err
	}
	return buildSummary(result, time.Now()), nil
}

// SaveSummary persists the summary — the single user-opt-in storage path.
func (s *CheckinService) SaveSummary(ctx context.Context, id string) (*model.SavedSummary, error) {
	text, err := s.SummaryText(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := &model.SavedSummary{
		ID:        uuid.NewString(),
		CheckinID: id,
		Text:      text,
		SavedAt:   time.Now(),
	}
	if err := s.summaryRepo.Save(ctx, summary); err != nil {
		return nil, fmt.Errorf("save summary: %w", err)
	}
	return summary, nil
}

func scoreOrEmpty(inst model.Instrument, answers model.AnswerSet) model.ScoreResult {
	if len(answers) == 0 {
		return model.ScoreResult{Score: nil, Answered: 0, Total: model.ItemCount[inst]}
	}
	result, err := screening.Score(inst, answers)
	if err != nil {
		// Stored sets are validated on submit; a mismatch here means the
		// session was tampered with, so treat it as unanswered.
		return model.ScoreResult{Score: nil, Answered: 0, Total: model.ItemCount[inst]}
	}
	return result
}

func deepResult(checkin *model.CheckIn) *model.DeepResult {
	if len(checkin.PHQ9) == 0 && len(checkin.GAD7) == 0 && len(checkin.PSS4) == 0 {
		return nil
	}
	deep := &model.DeepResult{}
	if len(checkin.PHQ9) > 0 {
		r := scoreOrEmpty(model.InstrumentPHQ9, checkin.PHQ9)
		deep.PHQ9 = &r
		deep.PHQ9Message = screening.UnderstandingPHQ9(r.Score)
		if r.Score != nil {
			deep.PHQ9Severity = screening.PHQ9Severity(*r.Score)
		}
		deep.SuicidalIdeation = screening.HasSuicidalIdeation(checkin.PHQ9)
	}
	if len(checkin.GAD7) > 0 {
		r := scoreOrEmpty(model.InstrumentGAD7, checkin.GAD7)
		deep.GAD7 = &r
		deep.GAD7Message = screening.UnderstandingGAD7(r.Score)
		if r.Score != nil {
			deep.GAD7Severity = screening.GAD7Severity(*r.Score)
		}
	}
	if len(checkin.PSS4) > 0 {
		r := scoreOrEmpty(model.InstrumentPSS4, checkin.PSS4)
		deep.PSS4 = &r
		if r.Score != nil {
			deep.PSS4Level = screening.PSS4Level(*r.Score)
		}
	}
	var phq9Score, gad7Score *int
	if deep.PHQ9 != nil {
		phq9Score = deep.PHQ9.Score
	}
	if deep.GAD7 != nil {
		gad7Score = deep.GAD7.Score
	}
	deep.Elevated = screening.IsElevatedDeep(phq9Score, gad7Score)
	return deep
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func scoreLine(name string, r *model.ScoreResult) string {
	if r == nil || r.Score == nil {
		return fmt.Sprintf("  %s: not scored", name)
	}
	if r.Partial() {
		return fmt.Sprintf("  %s: %d (based on %d/%d answers)", name, *r.Score, r.Answered, r.Total)
	}
	return fmt.Sprintf("  %s: %d", name, *r.Score)
}

// buildSummary renders the line-oriented summary: date/time, score lines,
// chosen action, next steps, and the fixed support footer.
func buildSummary(result *model.CheckInResult, now time.Time) string {
	lines := []string{
		"CalmCompass — Check-in summary",
		"Date/time: " + now.Format("2006-01-02 15:04"),
		"",
		"Answers (last 2 weeks):",
		scoreLine("Mood (PHQ-2)", result.PHQ2),
		scoreLine("Worry (GAD-2)", result.GAD2),
		"",
		"Chosen action: " + result.Suggestion.Action,
		"",
		"Next steps:",
	}
	for _, step := range result.Suggestion.NextSteps {
		lines = append(lines, "  - "+step)
	}
	lines = append(lines,
		"",
		"Support: 988 (call or text), Crisis Text Line (text HOME to 741741).",
		"",
		crisis.WhenToSeekHelp,
	)
	return strings.Join(lines, "\n")
}

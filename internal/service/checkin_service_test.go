package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calmcompass/internal/cache"
	"calmcompass/internal/config"
	"calmcompass/internal/model"
	"calmcompass/internal/personalize"
	"calmcompass/internal/screening"
)

type fakeCheckinCache struct {
	items map[string]*model.CheckIn
}

func newFakeCheckinCache() *fakeCheckinCache {
	return &fakeCheckinCache{items: make(map[string]*model.CheckIn)}
}

func (f *fakeCheckinCache) Set(_ context.Context, checkin *model.CheckIn) error {
	copied := *checkin
	f.items[checkin.ID] = &copied
	return nil
}

func (f *fakeCheckinCache) Get(_ context.Context, id string) (*model.CheckIn, error) {
	checkin, ok := f.items[id]
	if !ok {
		return nil, cache.ErrNotFound
	}
	copied := *checkin
	return &copied, nil
}

func (f *fakeCheckinCache) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakeSummaryRepo struct {
	saved map[string]*model.SavedSummary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{saved: make(map[string]*model.SavedSummary)}
}

func (f *fakeSummaryRepo) Save(_ context.Context, summary *model.SavedSummary) error {
	f.saved[summary.CheckinID] = summary
	return nil
}

func (f *fakeSummaryRepo) GetByCheckin(_ context.Context, checkinID string) (*model.SavedSummary, error) {
	return f.saved[checkinID], nil
}

func newTestService() (*CheckinService, *fakeCheckinCache, *fakeSummaryRepo) {
	aiCfg := &config.AIConfig{TimeoutMS: 1000} // all collaborators disabled
	checkinCache := newFakeCheckinCache()
	summaryRepo := newFakeSummaryRepo()
	svc := NewCheckinService(
		checkinCache,
		summaryRepo,
		personalize.NewEmotionClassifier(aiCfg),
		personalize.NewPlanGenerator(aiCfg),
		personalize.NewRecommender(aiCfg),
		"us",
	)
	return svc, checkinCache, summaryRepo
}

func intPtr(v int) *int { return &v }

func TestCreate(t *testing.T) {
	svc, checkinCache, _ := newTestService()
	ctx := context.Background()

	t.Run("defaults the region", func(t *testing.T) {
		checkin, err := svc.Create(ctx, "")
		require.NoError(t, err)
		assert.NotEmpty(t, checkin.ID)
		assert.Equal(t, "us", checkin.Region)
		assert.Contains(t, checkinCache.items, checkin.ID)
	})

	t.Run("keeps an explicit region", func(t *testing.T) {
		checkin, err := svc.Create(ctx, "uk")
		require.NoError(t, err)
		assert.Equal(t, "uk", checkin.Region)
	})
}

func TestSubmitAnswers(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)

	t.Run("stores a valid set", func(t *testing.T) {
		err := svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ2, model.AnswerSet{1, 2})
		require.NoError(t, err)
		stored, err := svc.cache.Get(ctx, checkin.ID)
		require.NoError(t, err)
		assert.Equal(t, model.AnswerSet{1, 2}, stored.PHQ2)
	})

	t.Run("accepts the skip sentinel", func(t *testing.T) {
		err := svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentGAD2, model.AnswerSet{model.AnswerPreferNotToSay, 3})
		require.NoError(t, err)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		err := svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ2, model.AnswerSet{1, 5})
		assert.ErrorIs(t, err, ErrBadAnswer)
	})

	t.Run("rejects wrong-length sets", func(t *testing.T) {
		err := svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ9, model.AnswerSet{1, 2})
		assert.ErrorIs(t, err, screening.ErrAnswerCount)
	})

	t.Run("unknown session", func(t *testing.T) {
		err := svc.SubmitAnswers(ctx, "nope", model.InstrumentPHQ2, model.AnswerSet{1, 2})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSetContext_MergesFieldwise(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.SetContext(ctx, checkin.ID, model.Context{
		FeelingToday:   "Stressed",
		WorkloadStress: "A bit much",
	}))
	require.NoError(t, svc.SetContext(ctx, checkin.ID, model.Context{
		FeelingToday: "Overwhelmed",
		OneSentence:  "  too much going on  ",
	}))

	stored, err := svc.cache.Get(ctx, checkin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Overwhelmed", stored.Context.FeelingToday)
	assert.Equal(t, "A bit much", stored.Context.WorkloadStress, "untouched field survives the merge")
	assert.Equal(t, "too much going on", stored.Context.OneSentence, "sentence is trimmed")
}

func TestSetSelfHarm(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmNo))
	require.NoError(t, svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmYes))

	err = svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmAnswer("maybe"))
	assert.ErrorIs(t, err, ErrBadAnswer)
}

func TestResult_CrisisGateShortCircuits(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ2, model.AnswerSet{3, 3}))
	require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentGAD2, model.AnswerSet{3, 3}))
	require.NoError(t, svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmYes))

	resolverCalled := false
	svc.resolve = func(phq2, gad2 *int, c model.Context) model.SuggestionBundle {
		resolverCalled = true
		return model.SuggestionBundle{}
	}

	result, err := svc.Result(ctx, checkin.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Crisis)
	assert.False(t, resolverCalled, "crisis path must never reach the resolver")
	assert.Nil(t, result.PHQ2)
	assert.Nil(t, result.GAD2)
	assert.Nil(t, result.Suggestion)
	assert.Nil(t, result.Action)
	assert.Nil(t, result.Deep)
	assert.Empty(t, result.CopingPlan)
	assert.Contains(t, result.Crisis.Message, "988")

	t.Run("changing the answer back reopens the flow", func(t *testing.T) {
		require.NoError(t, svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmNo))
		result, err := svc.Result(ctx, checkin.ID)
		require.NoError(t, err)
		assert.Nil(t, result.Crisis)
		assert.True(t, resolverCalled, "resolver runs once the gate clears")
	})
}

func TestResult_FullFlow(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ2, model.AnswerSet{2, 2}))
	require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentGAD2, model.AnswerSet{0, 1}))
	require.NoError(t, svc.SetContext(ctx, checkin.ID, model.Context{
		FeelingToday:   "Overwhelmed",
		WorkloadStress: "Overwhelming",
		Hardest:        "Sleep",
	}))
	require.NoError(t, svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmNo))

	result, err := svc.Result(ctx, checkin.ID)
	require.NoError(t, err)
	assert.Nil(t, result.Crisis)

	require.NotNil(t, result.PHQ2)
	require.NotNil(t, result.PHQ2.Score)
	assert.Equal(t, 4, *result.PHQ2.Score)
	require.NotNil(t, result.GAD2)
	require.NotNil(t, result.GAD2.Score)
	assert.Equal(t, 1, *result.GAD2.Score)

	require.NotNil(t, result.Suggestion)
	assert.Equal(t, model.BandBurnout, result.Suggestion.Band)
	assert.Len(t, result.Suggestion.NextSteps, 2)

	require.NotNil(t, result.Action)
	assert.NotEmpty(t, result.Action.ID)
	assert.False(t, result.Action.ModelUsed)

	assert.False(t, result.PlanPersonal)
	assert.Contains(t, result.CopingPlan, "6. Extra focus: Sleep")

	assert.False(t, result.Tailored, "no classifier configured")
	assert.Empty(t, result.EmotionLabel)
	assert.NotEmpty(t, result.TalkDraft)
	assert.Nil(t, result.Deep, "no deep instruments answered")
}

func TestResult_EmotionExplainFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("lexicon explanation when the classifier is off", func(t *testing.T) {
		svc, _, _ := newTestService()
		checkin, err := svc.Create(ctx, "")
		require.NoError(t, err)
		require.NoError(t, svc.SetContext(ctx, checkin.ID, model.Context{OneSentence: "I feel hopeless and empty lately"}))

		result, err := svc.Result(ctx, checkin.ID)
		require.NoError(t, err)
		assert.False(t, result.Tailored)
		assert.Empty(t, result.EmotionLabel)
		assert.Equal(t, personalize.ExplainEmotion("sadness"), result.EmotionExplain)
	})

	t.Run("sentence without keywords still gets the gentle default", func(t *testing.T) {
		svc, _, _ := newTestService()
		checkin, err := svc.Create(ctx, "")
		require.NoError(t, err)
		require.NoError(t, svc.SetContext(ctx, checkin.ID, model.Context{OneSentence: "the weather is fine today"}))

		result, err := svc.Result(ctx, checkin.ID)
		require.NoError(t, err)
		assert.Equal(t, personalize.ExplainEmotion(""), result.EmotionExplain)
	})

	t.Run("no sentence means no explanation", func(t *testing.T) {
		svc, _, _ := newTestService()
		checkin, err := svc.Create(ctx, "")
		require.NoError(t, err)

		result, err := svc.Result(ctx, checkin.ID)
		require.NoError(t, err)
		assert.Empty(t, result.EmotionExplain)
	})

	t.Run("confident classifier tailors instead of explaining", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[[{"label": "sadness", "score": 0.9}]]`))
		}))
		defer srv.Close()

		aiCfg := &config.AIConfig{TimeoutMS: 1000, EmotionURL: srv.URL}
		svc := NewCheckinService(
			newFakeCheckinCache(),
			newFakeSummaryRepo(),
			personalize.NewEmotionClassifier(aiCfg),
			personalize.NewPlanGenerator(aiCfg),
			personalize.NewRecommender(aiCfg),
			"us",
		)
		checkin, err := svc.Create(ctx, "")
		require.NoError(t, err)
		require.NoError(t, svc.SetContext(ctx, checkin.ID, model.Context{OneSentence: "I feel hopeless and empty lately"}))

		result, err := svc.Result(ctx, checkin.ID)
		require.NoError(t, err)
		assert.True(t, result.Tailored)
		assert.Equal(t, "sadness", result.EmotionLabel)
		assert.Empty(t, result.EmotionExplain, "tailoring and the lexicon read are mutually exclusive")
	})
}

func TestResult_DeepScreen(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ9, model.AnswerSet{2, 2, 2, 2, 2, 2, 2, 2, 0}))
	require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPSS4, model.AnswerSet{3, 0, 0, 3}))

	result, err := svc.Result(ctx, checkin.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Deep)

	require.NotNil(t, result.Deep.PHQ9)
	require.NotNil(t, result.Deep.PHQ9.Score)
	assert.Equal(t, 16, *result.Deep.PHQ9.Score)
	assert.Equal(t, model.SeverityModeratelySevere, result.Deep.PHQ9Severity)
	assert.NotEmpty(t, result.Deep.PHQ9Message)

	assert.Nil(t, result.Deep.GAD7)

	require.NotNil(t, result.Deep.PSS4)
	require.NotNil(t, result.Deep.PSS4.Score)
	assert.Equal(t, 12, *result.Deep.PSS4.Score)
	assert.Equal(t, model.StressHigh, result.Deep.PSS4Level)

	assert.True(t, result.Deep.Elevated)
	assert.False(t, result.Deep.SuicidalIdeation)
	assert.False(t, result.SupportAlert)
}

func TestResult_SupportAlertSignals(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	t.Run("ideation item raises the alert without gating", func(t *testing.T) {
		checkin, err := svc.Create(ctx, "")
		require.NoError(t, err)
		require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ9, model.AnswerSet{0, 0, 0, 0, 0, 0, 0, 0, 3}))

		result, err := svc.Result(ctx, checkin.ID)
		require.NoError(t, err)
		assert.Nil(t, result.Crisis, "answer-derived signals never trip the gate")
		require.NotNil(t, result.Deep)
		assert.True(t, result.Deep.SuicidalIdeation)
		assert.True(t, result.SupportAlert)
		assert.NotNil(t, result.Suggestion, "the rest of the result still renders")
	})

	t.Run("hopelessness nearly every day raises the alert", func(t *testing.T) {
		checkin, err := svc.Create(ctx, "")
		require.NoError(t, err)
		require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ2, model.AnswerSet{0, 3}))

		result, err := svc.Result(ctx, checkin.ID)
		require.NoError(t, err)
		assert.Nil(t, result.Crisis)
		assert.True(t, result.SupportAlert)
	})

	t.Run("quiet check-in raises nothing", func(t *testing.T) {
		checkin, err := svc.Create(ctx, "")
		require.NoError(t, err)
		require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ2, model.AnswerSet{3, 0}))

		result, err := svc.Result(ctx, checkin.ID)
		require.NoError(t, err)
		assert.False(t, result.SupportAlert)
	})
}

func TestResult_UnansweredScoresStayAbsent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)

	result, err := svc.Result(ctx, checkin.ID)
	require.NoError(t, err)
	require.NotNil(t, result.PHQ2)
	assert.Nil(t, result.PHQ2.Score)
	assert.Equal(t, 0, result.PHQ2.Answered)
	assert.Equal(t, 2, result.PHQ2.Total)
	require.NotNil(t, result.Suggestion)
	assert.Equal(t, model.BandMinimal, result.Suggestion.Band)
}

func TestSummaryText(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)

	t.Run("refused while the gate is tripped", func(t *testing.T) {
		require.NoError(t, svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmYes))
		_, err := svc.SummaryText(ctx, checkin.ID)
		assert.ErrorIs(t, err, ErrCrisisActive)
		require.NoError(t, svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmNo))
	})

	t.Run("layout", func(t *testing.T) {
		require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ2, model.AnswerSet{1, model.AnswerPreferNotToSay}))
		require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentGAD2, model.AnswerSet{1, 1}))

		text, err := svc.SummaryText(ctx, checkin.ID)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "CalmCompass — Check-in summary"))
		assert.Contains(t, text, "Date/time: ")
		assert.Contains(t, text, "  Mood (PHQ-2): 1 (based on 1/2 answers)")
		assert.Contains(t, text, "  Worry (GAD-2): 2")
		assert.Contains(t, text, "Chosen action: ")
		assert.Contains(t, text, "Next steps:")
		assert.Contains(t, text, "Support: 988 (call or text), Crisis Text Line (text HOME to 741741).")
	})

	t.Run("not-scored line when nothing answered", func(t *testing.T) {
		fresh, err := svc.Create(ctx, "")
		require.NoError(t, err)
		text, err := svc.SummaryText(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Contains(t, text, "  Mood (PHQ-2): not scored")
		assert.Contains(t, text, "  Worry (GAD-2): not scored")
	})
}

func TestSaveSummary(t *testing.T) {
	svc, _, summaryRepo := newTestService()
	ctx := context.Background()
	checkin, err := svc.Create(ctx, "")
	require.NoError(t, err)
	require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentPHQ2, model.AnswerSet{0, 0}))
	require.NoError(t, svc.SubmitAnswers(ctx, checkin.ID, model.InstrumentGAD2, model.AnswerSet{0, 0}))

	saved, err := svc.SaveSummary(ctx, checkin.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, checkin.ID, saved.CheckinID)
	assert.Contains(t, saved.Text, "CalmCompass")

	stored, err := summaryRepo.GetByCheckin(ctx, checkin.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, saved.Text, stored.Text)

	t.Run("refused while the gate is tripped", func(t *testing.T) {
		require.NoError(t, svc.SetSelfHarm(ctx, checkin.ID, model.SelfHarmYes))
		_, err := svc.SaveSummary(ctx, checkin.ID)
		assert.ErrorIs(t, err, ErrCrisisActive)
	})
}

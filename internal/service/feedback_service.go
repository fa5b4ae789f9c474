package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"calmcompass/internal/cache"
	"calmcompass/internal/crisis"
	"calmcompass/internal/model"
	"calmcompass/internal/personalize"
	"calmcompass/internal/repository"
)

// FeedbackInput is one "did this help" response. CheckinID ties the
// submission to a live session for the crisis-gate check only; it is never
// stored with the row.
type FeedbackInput struct {
	CheckinID       string              `json:"checkinId,omitempty"`
	PHQ2Score       *int                `json:"phq2Score"`
	GAD2Score       *int                `json:"gad2Score"`
	FeelingToday    string              `json:"feelingToday"`
	WorkloadStress  string              `json:"workloadStress"`
	NeedMost        string              `json:"needMost"`
	EmotionLabel    string              `json:"emotionLabel"`
	ActionSuggested string              `json:"actionSuggested"`
	ActionTaken     string              `json:"actionTaken"`
	Helped          model.HelpedOutcome `json:"helped"`
	MLUsed          bool                `json:"mlUsed"`
	Confidence      float64             `json:"confidence"`
}

// FeedbackService records anonymous outcome feedback and exports it in the
// fixed-column CSV shape the retraining tooling expects.
type FeedbackService struct {
	repo     repository.FeedbackRepo
	checkins cache.CheckinCache
}

func NewFeedbackService(repo repository.FeedbackRepo, checkins cache.CheckinCache) *FeedbackService {
	return &FeedbackService{repo: repo, checkins: checkins}
}

// Record validates and stores one feedback row. Timestamp is date-only; no
// PII is accepted anywhere in the row.
func (s *FeedbackService) Record(ctx context.Context, input FeedbackInput) (*model.FeedbackRecord, error) {
	// Gate first, same as the result render. An expired or absent session
	// still may submit — the row is anonymous either way.
	if input.CheckinID != "" {
		if checkin, err := s.checkins.Get(ctx, input.CheckinID); err == nil && crisis.IsCrisis(checkin.SelfHarm) {
			return nil, ErrCrisisActive
		}
	}

	helpedScore, ok := model.HelpedScores[input.Helped]
	if !ok {
		return nil, fmt.Errorf("helped outcome %q: %w", input.Helped, ErrBadAnswer)
	}
	if personalize.ActionByID(input.ActionSuggested) == nil {
		return nil, fmt.Errorf("unknown suggested action %q: %w", input.ActionSuggested, ErrBadAnswer)
	}
	if input.ActionTaken != "" && personalize.ActionByID(input.ActionTaken) == nil {
		return nil, fmt.Errorf("unknown taken action %q: %w", input.ActionTaken, ErrBadAnswer)
	}
	taken := input.ActionTaken
	if taken == "" {
		taken = input.ActionSuggested
	}

	now := time.Now()
	record := &model.FeedbackRecord{
		ID:              uuid.NewString(),
		TimestampDate:   now.Format("2006-01-02"),
		PHQ2Score:       input.PHQ2Score,
		GAD2Score:       input.GAD2Score,
		FeelingToday:    input.FeelingToday,
		WorkloadStress:  input.WorkloadStress,
		NeedMost:        input.NeedMost,
		EmotionLabel:    input.EmotionLabel,
		ActionSuggested: input.ActionSuggested,
		ActionTaken:     taken,
		HelpedScore:     helpedScore,
		MLUsed:          input.MLUsed,
		Confidence:      input.Confidence,
		CreatedAt:       now,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	return record, nil
}

// ExportCSV renders all feedback rows with model.FeedbackCSVColumns order.
// Consumers are positional; do not reorder.
func (s *FeedbackService) ExportCSV(ctx context.Context) (string, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("list feedback: %w", err)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(model.FeedbackCSVColumns); err != nil {
		return "", err
	}
	for _, r := range records {
		if err := w.Write(feedbackRow(r)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func feedbackRow(r model.FeedbackRecord) []string {
	mlUsed := "0"
	if r.MLUsed {
		mlUsed = "1"
	}
	return []string{
		r.TimestampDate,
		scoreField(r.PHQ2Score),
		scoreField(r.GAD2Score),
		r.FeelingToday,
		r.WorkloadStress,
		r.NeedMost,
		r.EmotionLabel,
		r.ActionSuggested,
		r.ActionTaken,
		strconv.Itoa(r.HelpedScore),
		mlUsed,
		strconv.FormatFloat(r.Confidence, 'f', 4, 64),
	}
}

func scoreField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

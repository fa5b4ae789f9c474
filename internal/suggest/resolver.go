package suggest

import "calmcompass/internal/model"

// Resolve maps the short-form scores and context tags to one band and its
// bundle. Total over its inputs: absent scores are valid, never an error.
// First match wins, in order: burnout, anxiety-only, mood (including both
// elevated), generic elevated, minimal.
func Resolve(phq2, gad2 *int, ctx model.Context) model.SuggestionBundle {
	elevatedPHQ := phq2 != nil && *phq2 >= 3
	elevatedGAD := gad2 != nil && *gad2 >= 3
	elevated := elevatedPHQ || elevatedGAD
	bothUnknown := phq2 == nil && gad2 == nil
	anyUnknown := phq2 == nil || gad2 == nil

	// Understanding is chosen independently of the band.
	severityKey := "minimal"
	if bothUnknown {
		severityKey = "incomplete"
	} else if elevated {
		severityKey = "elevated"
	}

	var band model.Band
	switch {
	case workloadHeavy(ctx.WorkloadStress) && (feelingStrained(ctx.FeelingToday) || elevated):
		band = model.BandBurnout
	case elevated && elevatedGAD && !elevatedPHQ:
		band = model.BandElevatedAnxiety
	case elevated && elevatedPHQ:
		band = model.BandElevatedMood
	case elevated:
		// Unreachable while elevated == elevatedPHQ || elevatedGAD; kept so
		// the band table stays total over its keys.
		band = model.BandElevated
	default:
		band = model.BandMinimal
	}

	entry, ok := table.Bands[band]
	if !ok {
		entry = table.Bands[model.BandMinimal]
	}

	out := model.SuggestionBundle{
		Band:          band,
		Understanding: UnderstandingLine(severityKey),
		Action:        entry.Action,
		Reassurance:   table.Reassurance,
		NextSteps:     append([]string(nil), entry.NextSteps...),
		Support:       table.Support,
	}
	if anyUnknown && !bothUnknown {
		out.PartialNote = table.PartialNote
	}
	return out
}

// ResolveResults is Resolve over ScoreResults, the shape the service holds.
func ResolveResults(phq2, gad2 model.ScoreResult, ctx model.Context) model.SuggestionBundle {
	return Resolve(phq2.Score, gad2.Score, ctx)
}

func workloadHeavy(workload string) bool {
	return workload == "A bit much" || workload == "Overwhelming"
}

func feelingStrained(feeling string) bool {
	switch feeling {
	case "Low energy", "Overwhelmed", "Stressed":
		return true
	}
	return false
}

package personalize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"calmcompass/internal/config"
	"calmcompass/internal/model"
)

// FollowUpTips are the tailored next steps per hardest-topic choice, used by
// the static coping plan and the rule-based action path.
var FollowUpTips = map[string][]string{
	"Sleep": {
		"Try a consistent bedtime and no screens 30–60 min before bed.",
		"Keep the room cool and dark; avoid caffeine after midday.",
		"If your mind races, try writing a short to-do list for tomorrow, then put it away.",
	},
	"Motivation": {
		"One tiny step counts: get out of bed, open the curtains, or step outside for 2 minutes.",
		"Break one task into a 5-minute version and do just that.",
		"Tell someone you’re having a low-energy day so they don’t expect more than you can give.",
	},
	"Worry or anxiety": {
		"Name it: “I’m having a wave of worry.” Sometimes that alone reduces the grip.",
		"Try 4-7-8 breathing: breathe in 4, hold 7, out 8 (a few times).",
		"Write down the worst-case and one small thing you can do today about it.",
	},
	"Relationships": {
		"Send one short message: “Hey, I’ve had a tough week. Can we talk for 10 minutes?”",
		"You don’t have to explain everything—just “I’ve been stressed” is enough.",
		"If someone has offered to help, say yes to one small thing (e.g. a walk, a call).",
	},
	"Workload or stress": {
		"Pick one thing to drop or postpone this week (even if it feels “wrong”).",
		"Block 15 minutes of break in your calendar and treat it as non-negotiable.",
		"Tell your manager or a colleague you’re at capacity if you can; one sentence can open the door to support.",
	},
}

// StaticPlan builds the deterministic 1-page coping plan.
func StaticPlan(hardest string, phqLevel, gadLevel model.Severity) string {
	lines := []string{
		"—— Your CalmCompass coping plan ——",
		"",
		"1. Triggers to watch for",
		"   - Too little sleep, skipping meals, or no movement",
		"   - Long stretches without talking to anyone",
		"   - Taking on too much without saying no",
		"",
		"2. Early warning signs",
		"   - Irritability, restlessness, or feeling flat",
		"   - Avoiding people or tasks you usually do",
		"   - More negative thoughts about yourself or the future",
		"",
		"3. Three coping tools to use anytime",
		"   - Breathe: 4 counts in, 7 hold, 8 out (repeat 3–4 times)",
		"   - Move: 5 min walk, stretch, or step outside",
		"   - Connect: one short message or call to someone you trust",
		"",
		"4. Two people to contact when it’s hard",
		"   - Person 1: _______________________",
		"   - Person 2: _______________________",
		"",
		"5. When to seek help",
		"   - Mood or worry gets in the way of work, relationships, or daily life",
		"   - You’ve felt low or anxious most days for 2+ weeks",
		"   - You have thoughts of hurting yourself or others → 988 or 741741",
	}
	if tips, ok := FollowUpTips[hardest]; ok && hardest != "" {
		lines = append(lines, "", "6. Extra focus: "+hardest)
		for _, t := range tips {
			lines = append(lines, "   - "+t)
		}
	}
	lines = append(lines, "", "This tool is not a substitute for professional care.")
	return strings.Join(lines, "\n")
}

// PlanGenerator optionally asks an LLM for a richer coping plan. Advisory
// only: it never affects banding or the crisis gate, and any failure falls
// back to the static plan.
type PlanGenerator struct {
	cfg    *config.AIConfig
	client *http.Client
}

func NewPlanGenerator(cfg *config.AIConfig) *PlanGenerator {
	return &PlanGenerator{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
	}
}

// Generate returns (plan, personalized). personalized is false whenever the
// static plan was used.
func (g *PlanGenerator) Generate(ctx context.Context, hardest string, phqLevel, gadLevel model.Severity) (string, bool) {
	if !g.cfg.PlanEnabled() {
		return StaticPlan(hardest, phqLevel, gadLevel), false
	}
	plan, err := g.callOpenAI(ctx, hardest, phqLevel, gadLevel)
	if err != nil || strings.TrimSpace(plan) == "" {
		return StaticPlan(hardest, phqLevel, gadLevel), false
	}
	return strings.TrimSpace(plan), true
}

func (g *PlanGenerator) callOpenAI(ctx context.Context, hardest string, phqLevel, gadLevel model.Severity) (string, error) {
	summary := fmt.Sprintf("Mood check-in result: %s. Anxiety check-in result: %s.", phqLevel, gadLevel)
	if hardest != "" {
		summary += fmt.Sprintf(" The person said the hardest area right now is: %s.", hardest)
	}
	prompt := "You are a supportive, brief mental-health assistant. Based only on this anonymized check-in summary, " +
		"write a short, kind 1-page coping plan in plain language. Include: (1) 2-3 triggers to watch for, " +
		"(2) 2-3 early warning signs, (3) 3 simple coping tools, (4) a reminder to list 2 people to contact, " +
		"(5) when to seek professional help or call 988. Do not diagnose. Keep it under 300 words. " +
		"Summary: " + summary

	reqBody := map[string]interface{}{
		"model": g.cfg.PlanModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens": 500,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.OpenAIBaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.OpenAIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("plan generator status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty plan response")
	}
	return out.Choices[0].Message.Content, nil
}

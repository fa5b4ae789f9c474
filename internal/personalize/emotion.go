// Package personalize holds the optional collaborators: emotion classifier,
// coping-plan generator, and coping-action recommender. Every call degrades
// to a deterministic fallback; a failure here can never surface to the user.
package personalize

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"calmcompass/internal/config"
)

// MinConfidence is the floor below which a model result is discarded in
// favor of the rule-based path. Shared by the emotion classifier and the
// action recommender.
const MinConfidence = 0.35

// MinWordsForML skips classification for very short input (noisy).
const MinWordsForML = 3

// EmotionStates maps classifier labels to internal states. Labels outside
// this map are treated as no-result.
var EmotionStates = map[string]string{
	"sadness":  "low_mood",
	"joy":      "ok",
	"love":     "ok",
	"anger":    "stress",
	"fear":     "anxiety",
	"surprise": "stress",
}

// Tailored holds the understanding/action pair applied atomically when the
// classifier is confident. Never partially applied.
type Tailored struct {
	Understanding string
	Action        string
}

var tailoredByState = map[string]Tailored{
	"low_mood": {
		Understanding: "What you wrote sounds like it might reflect low mood or sadness. That’s real, and it’s okay to need support.",
		Action:        "Reach out to one person—even a short text. “I’ve been having a tough week” is enough.",
	},
	"anxiety": {
		Understanding: "What you wrote might reflect worry or anxiety. Your mind may be under pressure—a small calming step can help.",
		Action:        "Try 4-7-8 breathing: breathe in 4, hold 7, out 8. Do it 3–4 times. It can slow your nervous system.",
	},
	"stress": {
		Understanding: "What you wrote might reflect stress or frustration. Stepping back for a moment can help you choose how to respond.",
		Action:        "Step away for 2 minutes—get water, step outside, or stretch. Then name it: “I’m stressed.” Sometimes naming it helps.",
	},
	"ok": {
		Understanding: "It’s good you’re checking in. Small habits can help keep things on track.",
		Action:        "Do one small thing in the next 10 minutes: a short walk, a glass of water, or one text to someone you trust.",
	},
}

// StateFromLabel maps a classifier label to an internal state, or "" when
// the label is unknown (caller falls back).
func StateFromLabel(label string) string {
	return EmotionStates[strings.ToLower(strings.TrimSpace(label))]
}

// TailoredFor returns the tailored pair for an internal state, or nil.
func TailoredFor(state string) *Tailored {
	if t, ok := tailoredByState[state]; ok {
		return &t
	}
	return nil
}

// EmotionClassifier calls an external text-classification endpoint.
type EmotionClassifier struct {
	cfg    *config.AIConfig
	client *http.Client
}

func NewEmotionClassifier(cfg *config.AIConfig) *EmotionClassifier {
	return &EmotionClassifier{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
	}
}

// Predict classifies one sentence. Returns ("", 0) when the classifier is
// disabled, the text is empty or too short, the call fails, or the label is
// not one we know — all of which mean "use the resolver's bundle unchanged".
func (e *EmotionClassifier) Predict(ctx context.Context, text string) (string, float64) {
	text = strings.TrimSpace(text)
	if text == "" || !e.cfg.EmotionEnabled() {
		return "", 0
	}
	if len(text) > 512 {
		// Cut on a rune boundary so the endpoint never sees broken UTF-8.
		cut := 512
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	if len(strings.Fields(text)) < MinWordsForML {
		return "", 0
	}

	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return "", 0
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.EmotionURL, bytes.NewBuffer(body))
	if err != nil {
		return "", 0
	}
	req.Header.Set("Content-Type", "application/json")
	if e.cfg.EmotionToken != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.EmotionToken)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", 0
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", 0
	}

	// HuggingFace text-classification shape: [[{"label": ..., "score": ...}]]
	var out [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", 0
	}
	if len(out) == 0 || len(out[0]) == 0 {
		return "", 0
	}
	label := strings.ToLower(strings.TrimSpace(out[0][0].Label))
	if _, known := EmotionStates[label]; !known {
		return "", 0
	}
	return label, out[0][0].Score
}

// Tailor runs the classifier and returns the tailored pair plus the label,
// or nil when anything along the way disqualifies the result.
func (e *EmotionClassifier) Tailor(ctx context.Context, text string) (*Tailored, string) {
	label, conf := e.Predict(ctx, text)
	if label == "" || conf < MinConfidence {
		return nil, ""
	}
	state := StateFromLabel(label)
	if state == "" {
		return nil, ""
	}
	return TailoredFor(state), label
}

// —— Keyword lexicon fallback (explain-only, no model) ——

var emotionLexicon = map[string][]string{
	"sadness":   {"sad", "down", "low", "hopeless", "empty", "lonely", "grief", "crying", "tear", "miss", "lost"},
	"anxiety":   {"anxious", "worry", "worried", "nervous", "panic", "scared", "afraid", "overwhelm", "overwhelmed", "cant focus", "racing"},
	"anger":     {"angry", "mad", "frustrat", "irritat", "annoyed", "resent"},
	"fatigue":   {"tired", "exhausted", "drain", "burnout", "no energy", "cant get up", "heavy"},
	"overwhelm": {"overwhelm", "too much", "cant cope", "drowning", "stuck", "paralyzed", "shut down"},
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// DetectEmotionLexicon is the no-model keyword detector. Returns "" when no
// keyword matches.
func DetectEmotionLexicon(sentence string) string {
	if strings.TrimSpace(sentence) == "" {
		return ""
	}
	normalized := nonWord.ReplaceAllString(strings.ToLower(sentence), "")
	best, bestScore := "", 0
	for emotion, keywords := range emotionLexicon {
		score := 0
		for _, k := range keywords {
			if strings.Contains(normalized, k) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = emotion, score
		}
	}
	return best
}

// ExplainEmotion gives the short human-language read for a lexicon match.
func ExplainEmotion(emotion string) string {
	explanations := map[string]string{
		"sadness":   "You might be experiencing low mood or sadness. That’s real and it’s okay to need support.",
		"anxiety":   "You might be experiencing worry or anxiety. Your mind may be under pressure—naming it and a small calming step can help.",
		"anger":     "You might be feeling frustration or anger. Stepping back for a moment can help you choose how to respond.",
		"fatigue":   "You might be experiencing emotional or physical fatigue. You’re not lazy—you may be overloaded.",
		"overwhelm": "You might be feeling overwhelmed. That happens when demands feel bigger than your resources. One small step is enough.",
	}
	if msg, ok := explanations[emotion]; ok {
		return msg
	}
	if emotion == "" {
		return "Putting feelings into words can help. Try one small thing that feels doable."
	}
	return "What you’re feeling is valid. One small step can help."
}

package config

import "os"

// AIConfig holds the configuration for the three optional personalization
// collaborators. Each one is independently disabled when its key or URL is
// unset; every call path has a deterministic fallback.
type AIConfig struct {
	// OpenAIKey enables the coping-plan generator.
	OpenAIKey     string `json:"-"` // never serialize
	OpenAIBaseURL string `json:"openAIBaseUrl"`
	PlanModel     string `json:"planModel"`

	// EmotionURL enables the one-sentence emotion classifier
	// (HuggingFace-style text-classification endpoint).
	EmotionURL   string `json:"emotionUrl"`
	EmotionToken string `json:"-"`

	// RecommenderURL enables the trained coping-action scorer.
	RecommenderURL string `json:"recommenderUrl"`

	TimeoutMS int `json:"timeoutMs"`
}

func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		PlanModel:      getEnv("OPENAI_PLAN_MODEL", "gpt-4o-mini"),
		EmotionURL:     os.Getenv("EMOTION_MODEL_URL"),
		EmotionToken:   os.Getenv("EMOTION_MODEL_TOKEN"),
		RecommenderURL: os.Getenv("RECOMMENDER_URL"),
		TimeoutMS:      10000,
	}
}

func (c *AIConfig) PlanEnabled() bool        { return c.OpenAIKey != "" }
func (c *AIConfig) EmotionEnabled() bool     { return c.EmotionURL != "" }
func (c *AIConfig) RecommenderEnabled() bool { return c.RecommenderURL != "" }

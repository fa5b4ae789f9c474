package crisis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calmcompass/internal/model"
)

func TestIsCrisis(t *testing.T) {
	tests := []struct {
		name   string
		answer model.SelfHarmAnswer
		want   bool
	}{
		{name: "yes trips the gate", answer: model.SelfHarmYes, want: true},
		{name: "no proceeds", answer: model.SelfHarmNo, want: false},
		{name: "prefer not to say proceeds", answer: model.SelfHarmPreferNotToSay, want: false},
		{name: "unset proceeds", answer: model.SelfHarmUnset, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCrisis(tt.answer))
		})
	}
}

func TestContent_HasEverythingTheCrisisScreenNeeds(t *testing.T) {
	content := Content("us")
	require.NotNil(t, content)
	assert.NotEmpty(t, content.Heading)
	assert.Contains(t, content.Message, "988")
	assert.Contains(t, content.Message, "741741")
	assert.Contains(t, content.ImmediateDanger, "911")
	assert.NotEmpty(t, content.GroundingScript)
	assert.NotEmpty(t, content.BackAction)
}

func TestLoadRegion(t *testing.T) {
	t.Run("us resources", func(t *testing.T) {
		res := LoadRegion("us")
		assert.Equal(t, "988 Suicide & Crisis Lifeline", res.Crisis.Lifeline.Name)
		assert.Equal(t, "988", res.Crisis.Lifeline.Phone)
		assert.Equal(t, "HOME", res.Crisis.TextLine.Keyword)
		assert.Equal(t, "741741", res.Crisis.TextLine.Number)
	})

	t.Run("uk resources", func(t *testing.T) {
		res := LoadRegion("uk")
		assert.Equal(t, "Samaritans", res.Crisis.Lifeline.Name)
		assert.Contains(t, res.Crisis.ImmediateDanger, "999")
	})

	t.Run("unknown region falls back to us", func(t *testing.T) {
		res := LoadRegion("atlantis")
		assert.Equal(t, "988", res.Crisis.Lifeline.Phone)
	})

	t.Run("empty region falls back to us", func(t *testing.T) {
		res := LoadRegion("")
		assert.Equal(t, "988", res.Crisis.Lifeline.Phone)
	})
}

func TestMessageImmediate_Layout(t *testing.T) {
	msg := LoadRegion("us").MessageImmediate()
	lines := strings.Split(msg, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Contains(t, lines[0], "immediate danger")
	assert.Contains(t, msg, "You’re not alone. Reach out now.")
}

func TestTalkDraft(t *testing.T) {
	assert.Contains(t, TalkDraft(""), "tough week")
	assert.Contains(t, TalkDraft("work"), "pressure")
	assert.Contains(t, TalkDraft("family"), "struggling")
	assert.Equal(t, TalkDraft(""), TalkDraft("unknown"))
}

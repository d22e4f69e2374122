package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biokg/go-biokg/pkg/llm"
)

func TestExtractRelationsPrompt(t *testing.T) {
	messages, err := DefaultLibrary.ExtractRelations().Relations().Call(map[string]interface{}{
		"sentence": "Maya Park works at ApexTech.",
		"entities": []string{"Maya Park", "ApexTech"},
	})
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, llm.RoleUser, messages[1].Role)

	user := messages[1].Content
	assert.Contains(t, user, "Maya Park works at ApexTech.")
	assert.Contains(t, user, `"Maya Park"`)
	for _, pred := range []string{"works_for", "studied_at", "lives_in", "collaborates_with", "reports_to"} {
		assert.Contains(t, user, pred)
	}
	assert.Contains(t, user, "empty list")
}

func TestInferPersonalityPrompt(t *testing.T) {
	messages, err := DefaultLibrary.InferPersonality().Traits().Call(map[string]interface{}{
		"person_name": "Maya Park",
		"text":        "Maya Park is a curious analyst.",
	})
	require.NoError(t, err)
	require.Len(t, messages, 2)

	user := messages[1].Content
	assert.Contains(t, user, "Maya Park")
	assert.Contains(t, user, "big_five")
	for _, dim := range []string{"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism"} {
		assert.Contains(t, user, dim)
	}
	assert.Contains(t, user, "curious")
}

func TestRecognizeEntitiesPrompt(t *testing.T) {
	messages, err := DefaultLibrary.RecognizeEntities().Entities().Call(map[string]interface{}{
		"text": "Maya Park lives in Riverton.",
	})
	require.NoError(t, err)
	require.Len(t, messages, 2)

	user := messages[1].Content
	assert.Contains(t, user, "Maya Park lives in Riverton.")
	for _, label := range []string{"PERSON", "ORG", "GPE"} {
		assert.Contains(t, user, label)
	}
}

func TestToPromptJSON(t *testing.T) {
	s, err := ToPromptJSON([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]", s)
}

package prompts

import (
	"fmt"

	"github.com/biokg/go-biokg/pkg/llm"
)

// RecognizeEntitiesPrompt defines the interface for entity recognition prompts.
type RecognizeEntitiesPrompt interface {
	Entities() PromptVersion
}

// RecognizeEntitiesVersions holds all versions of entity recognition prompts.
type RecognizeEntitiesVersions struct {
	EntitiesPrompt PromptVersion
}

func (r *RecognizeEntitiesVersions) Entities() PromptVersion { return r.EntitiesPrompt }

// NewRecognizeEntitiesVersions creates the default entity recognition prompts.
func NewRecognizeEntitiesVersions() RecognizeEntitiesPrompt {
	return &RecognizeEntitiesVersions{
		EntitiesPrompt: NewPromptVersion(entitiesPrompt),
	}
}

// entitiesPrompt extracts named entity spans and sentence boundaries from
// a passage.
func entitiesPrompt(context map[string]interface{}) ([]llm.Message, error) {
	sysPrompt := `You are an expert named entity recognizer. You extract entity mentions and sentence boundaries from text. Output JSON only.`

	text := context["text"]

	userPrompt := fmt.Sprintf(`# TASK
Extract all named entity mentions from the TEXT below, and split the TEXT into sentences.

Entity labels:
- PERSON: names of people
- ORG: companies, universities, institutions
- GPE: cities, towns, countries
- LOC: other locations

Rules:
1. Copy each mention EXACTLY as it appears in the text.
2. Do not extract pronouns (he, she, they) as entities.
3. Report every distinct mention once, in order of first appearance.
4. Sentences must cover the whole text, trimmed of surrounding whitespace.

OUTPUT JSON ONLY in this exact format:
{
  "entities": [
    {"text": "<mention>", "label": "<PERSON|ORG|GPE|LOC>"}
  ],
  "sentences": ["<sentence 1>", "<sentence 2>"]
}

TEXT:
"""%v"""`, text)

	return []llm.Message{
		llm.NewSystemMessage(sysPrompt),
		llm.NewUserMessage(userPrompt),
	}, nil
}

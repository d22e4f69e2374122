package prompts

import (
	"fmt"

	"github.com/biokg/go-biokg/pkg/llm"
)

// ExtractRelationsPrompt defines the interface for relation extraction prompts.
type ExtractRelationsPrompt interface {
	Relations() PromptVersion
}

// ExtractRelationsVersions holds all versions of relation extraction prompts.
type ExtractRelationsVersions struct {
	RelationsPrompt PromptVersion
}

func (e *ExtractRelationsVersions) Relations() PromptVersion { return e.RelationsPrompt }

// NewExtractRelationsVersions creates the default relation extraction prompts.
func NewExtractRelationsVersions() ExtractRelationsPrompt {
	return &ExtractRelationsVersions{
		RelationsPrompt: NewPromptVersion(relationsPrompt),
	}
}

// relationsPrompt extracts relation triples from a single sentence.
func relationsPrompt(context map[string]interface{}) ([]llm.Message, error) {
	sysPrompt := `You are an information extraction assistant. Extract only factual relationships that fit the given schema. Do not infer beyond the sentence. Output JSON only.`

	sentence := context["sentence"]
	entities := context["entities"]

	entitiesJSON, err := ToPromptJSON(entities)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entities: %w", err)
	}

	userPrompt := fmt.Sprintf(`Extract only factual relationships that fit this schema. Do not infer beyond the sentence.

ALLOWED PREDICATES (use EXACT spelling):
- works_for
- studied_at
- lives_in
- collaborates_with
- reports_to

STRICT RULES:
- Use ONLY the above predicates. Do NOT invent others (e.g., do NOT use has_trait).
- The subject and object MUST be copied EXACTLY from the Entities list below. Do NOT invent or alter names.
- If the sentence uses pronouns (he, she, they), REPLACE them with the correct full entity name from the Entities list. If you are unsure, DROP the triple.
- Enforce type constraints:
  - works_for: PERSON -> ORG
  - studied_at: PERSON -> ORG
  - lives_in: PERSON -> GPE or LOC
  - collaborates_with: PERSON <-> PERSON
  - reports_to: PERSON -> PERSON
- If no valid triple exists, return an empty list.

OUTPUT JSON ONLY in this exact format:
{
  "relations": [
    {"subject": "<entity from list>", "predicate": "<one of the allowed>", "object": "<entity from list>"}
  ]
}

Sentence:
"""%v"""

Entities (copy names EXACTLY from here):
%s`, sentence, entitiesJSON)

	return []llm.Message{
		llm.NewSystemMessage(sysPrompt),
		llm.NewUserMessage(userPrompt),
	}, nil
}

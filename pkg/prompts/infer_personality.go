package prompts

import (
	"fmt"

	"github.com/biokg/go-biokg/pkg/llm"
)

// InferPersonalityPrompt defines the interface for personality inference prompts.
type InferPersonalityPrompt interface {
	Traits() PromptVersion
}

// InferPersonalityVersions holds all versions of personality inference prompts.
type InferPersonalityVersions struct {
	TraitsPrompt PromptVersion
}

func (i *InferPersonalityVersions) Traits() PromptVersion { return i.TraitsPrompt }

// NewInferPersonalityVersions creates the default personality inference prompts.
func NewInferPersonalityVersions() InferPersonalityPrompt {
	return &InferPersonalityVersions{
		TraitsPrompt: NewPromptVersion(traitsPrompt),
	}
}

// traitsPrompt estimates Big Five scores and descriptive adjectives for
// one person from a short biography text.
func traitsPrompt(context map[string]interface{}) ([]llm.Message, error) {
	sysPrompt := `You are a personality analysis assistant. Estimate Big Five personality traits from short biography texts. Output JSON only.`

	personName := context["person_name"]
	text := context["text"]

	userPrompt := fmt.Sprintf(`Given a short biography text, estimate the Big Five personality traits of %v and list 2-3 descriptive adjectives that best represent those traits.

Big Five traits:
- openness
- conscientiousness
- extraversion
- agreeableness
- neuroticism

Rules:
- Assign a numeric score between 0.0 and 1.0 for each trait.
  Use this guideline: 0.2 = low, 0.5 = average, 0.8 = high.
- Select adjectives only from the approved vocabulary below.
  If none fit perfectly, choose the closest match - do NOT invent new words.

Approved trait vocabulary:
[curious, inventive, reflective, organized, meticulous, pragmatic, outspoken, energetic, sociable, empathetic, diplomatic, cooperative, resilient, anxious]

Output format (JSON only):
{
  "big_five": {
    "openness": ...,
    "conscientiousness": ...,
    "extraversion": ...,
    "agreeableness": ...,
    "neuroticism": ...
  },
  "traits": ["...", "..."]
}

Text:
"""%v"""`, personName, text)

	return []llm.Message{
		llm.NewSystemMessage(sysPrompt),
		llm.NewUserMessage(userPrompt),
	}, nil
}

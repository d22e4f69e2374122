// Package nlp holds the entity-recognition boundary of the pipeline.
// Named entity recognition is an external collaborator: the pipeline only
// depends on the Recognizer interface and ships one LLM-backed
// implementation.
package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/biokg/go-biokg/pkg/llm"
	"github.com/biokg/go-biokg/pkg/prompts"
	"github.com/biokg/go-biokg/pkg/types"
)

// Recognizer produces entity spans and sentence boundaries for a passage.
type Recognizer interface {
	Annotate(ctx context.Context, text string) (types.DocAnnotation, error)
}

// LLMRecognizer implements Recognizer with a single structured-output
// call per document.
type LLMRecognizer struct {
	llm     llm.Client
	prompts prompts.Library
}

// NewLLMRecognizer creates a recognizer backed by the given LLM client.
func NewLLMRecognizer(client llm.Client) *LLMRecognizer {
	return &LLMRecognizer{
		llm:     client,
		prompts: prompts.DefaultLibrary,
	}
}

// Annotate extracts entity mentions and sentences from text. Character
// offsets are byte offsets of the first occurrence of each surface in
// the passage; a surface the model invented (not present in the text)
// is dropped.
func (r *LLMRecognizer) Annotate(ctx context.Context, text string) (types.DocAnnotation, error) {
	messages, err := r.prompts.RecognizeEntities().Entities().Call(map[string]interface{}{
		"text": text,
	})
	if err != nil {
		return types.DocAnnotation{}, fmt.Errorf("failed to build recognition prompt: %w", err)
	}

	raw, err := r.llm.ChatWithStructuredOutput(ctx, messages, llm.GenerateSchema(prompts.RecognizedEntities{}))
	if err != nil {
		return types.DocAnnotation{}, fmt.Errorf("entity recognition call failed: %w", err)
	}

	var parsed prompts.RecognizedEntities
	if err := llm.UnmarshalResponse(string(raw), &parsed); err != nil {
		return types.DocAnnotation{}, err
	}

	annotation := types.DocAnnotation{Sentences: parsed.Sentences}
	for _, e := range parsed.Entities {
		start := strings.Index(text, e.Text)
		if e.Text == "" || start < 0 {
			continue
		}
		annotation.Entities = append(annotation.Entities, types.EntitySpan{
			Text:  e.Text,
			Label: types.ParseEntityLabel(e.Label),
			Start: start,
			End:   start + len(e.Text),
		})
	}

	if len(annotation.Sentences) == 0 {
		annotation.Sentences = []string{strings.TrimSpace(text)}
	}
	return annotation, nil
}

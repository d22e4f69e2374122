package extract

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/biokg/go-biokg/pkg/fileio"
	"github.com/biokg/go-biokg/pkg/llm"
	"github.com/biokg/go-biokg/pkg/prompts"
	"github.com/biokg/go-biokg/pkg/types"
)

// PersonalityInferrer estimates Big Five scores and trait adjectives for
// every person mentioned in a document, one LLM call per person.
type PersonalityInferrer struct {
	llm     llm.Client
	prompts prompts.Library
	logger  *log.Logger
}

// NewPersonalityInferrer creates a personality inference stage.
func NewPersonalityInferrer(client llm.Client, logger *log.Logger) *PersonalityInferrer {
	if logger == nil {
		logger = log.Default()
	}
	return &PersonalityInferrer{
		llm:     client,
		prompts: prompts.DefaultLibrary,
		logger:  logger.With("stage", "personality"),
	}
}

// Run infers personalities for every annotated document in inputPath and
// writes the filename-to-estimates map to outputPath. The inner map is
// keyed by person surface name.
func (p *PersonalityInferrer) Run(ctx context.Context, inputPath, outputPath string) (map[string]map[string]types.TraitEstimate, error) {
	var docs map[string]types.DocAnnotation
	if err := fileio.LoadJSON(inputPath, &docs); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]map[string]types.TraitEstimate, len(docs))
	for _, name := range names {
		p.logger.Info("inferring personalities", "doc", name)
		results[name] = p.InferDocument(ctx, docs[name])
	}

	if err := fileio.SaveJSON(outputPath, results); err != nil {
		return nil, err
	}
	p.logger.Info("trait estimates written", "path", outputPath, "docs", len(results))
	return results, nil
}

// InferDocument analyzes each PERSON span independently against the
// whole document text. A person whose response fails or cannot be parsed
// is skipped; the rest of the document still gets estimates.
func (p *PersonalityInferrer) InferDocument(ctx context.Context, ann types.DocAnnotation) map[string]types.TraitEstimate {
	text := strings.Join(ann.Sentences, " ")
	estimates := make(map[string]types.TraitEstimate)

	for _, person := range ann.PersonSpans() {
		estimate, err := p.InferPerson(ctx, person, text)
		if err != nil {
			if errors.Is(err, llm.ErrUnparseable) {
				p.logger.Warn("unparseable personality response", "person", person, "err", err)
			} else {
				p.logger.Warn("personality inference call failed", "person", person, "err", err)
			}
			continue
		}
		estimates[person] = estimate
	}
	return estimates
}

// InferPerson runs one personality inference call for a named person.
func (p *PersonalityInferrer) InferPerson(ctx context.Context, personName, text string) (types.TraitEstimate, error) {
	messages, err := p.prompts.InferPersonality().Traits().Call(map[string]interface{}{
		"person_name": personName,
		"text":        text,
	})
	if err != nil {
		return types.TraitEstimate{}, fmt.Errorf("failed to build personality prompt: %w", err)
	}

	raw, err := p.llm.ChatWithStructuredOutput(ctx, messages, llm.GenerateSchema(prompts.InferredPersonality{}))
	if err != nil {
		return types.TraitEstimate{}, fmt.Errorf("personality inference call failed: %w", err)
	}

	var parsed prompts.InferredPersonality
	if err := llm.UnmarshalResponse(string(raw), &parsed); err != nil {
		return types.TraitEstimate{}, err
	}

	return types.TraitEstimate{
		BigFive: bigFiveFromMap(parsed.BigFive),
		Traits:  parsed.Traits,
	}, nil
}

// bigFiveFromMap fills the fixed trait vector from a loose response map.
// Absent dimensions default to zero.
func bigFiveFromMap(m map[string]float64) types.BigFive {
	return types.BigFive{
		Openness:          m["openness"],
		Conscientiousness: m["conscientiousness"],
		Extraversion:      m["extraversion"],
		Agreeableness:     m["agreeableness"],
		Neuroticism:       m["neuroticism"],
	}
}

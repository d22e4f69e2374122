// Package extract implements the LLM-backed extraction stages: relation
// triples per sentence and personality estimates per person. Calls are
// sequential with no batching or retry; a failed or unparseable response
// degrades to an empty result for that unit of work.
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

// pronounSurfaces are rejected outright as relation arguments.
var pronounSurfaces = map[string]bool{
	"he": true, "she": true, "they": true,
	"him": true, "her": true, "them": true,
}

// RelationExtractor prompts the model sentence by sentence and applies a
// precision-focused filter to its output.
type RelationExtractor struct {
	llm     llm.Client
	prompts prompts.Library
	logger  *log.Logger
}

// NewRelationExtractor creates a relation extraction stage.
func NewRelationExtractor(client llm.Client, logger *log.Logger) *RelationExtractor {
	if logger == nil {
		logger = log.Default()
	}
	return &RelationExtractor{
		llm:     client,
		prompts: prompts.DefaultLibrary,
		logger:  logger.With("stage", "relations"),
	}
}

// Run extracts relations for every annotated document in inputPath and
// writes the filename-to-relations map to outputPath.
func (e *RelationExtractor) Run(ctx context.Context, inputPath, outputPath string) (map[string]types.DocRelations, error) {
	var docs map[string]types.DocAnnotation
	if err := fileio.LoadJSON(inputPath, &docs); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]types.DocRelations, len(docs))
	for _, name := range names {
		e.logger.Info("extracting relations", "doc", name)
		results[name] = types.DocRelations{
			Relations: e.ExtractDocument(ctx, docs[name]),
		}
	}

	if err := fileio.SaveJSON(outputPath, results); err != nil {
		return nil, err
	}
	e.logger.Info("relations written", "path", outputPath, "docs", len(results))
	return results, nil
}

// ExtractDocument runs relation extraction over each sentence of an
// annotated document, filters the output, and deduplicates the
// accumulated triples.
func (e *RelationExtractor) ExtractDocument(ctx context.Context, ann types.DocAnnotation) []types.ExtractedRelation {
	surfaces := make([]string, 0, len(ann.Entities))
	for _, ent := range ann.Entities {
		surfaces = append(surfaces, ent.Text)
	}

	var all []types.ExtractedRelation
	for _, sentence := range ann.Sentences {
		rels, err := e.ExtractSentence(ctx, sentence, surfaces)
		if err != nil {
			// Degrade to an empty result for this sentence; the
			// distinction between "nothing found" and "unparseable"
			// is preserved in the log.
			if errors.Is(err, llm.ErrUnparseable) {
				e.logger.Warn("unparseable relation response", "err", err)
			} else {
				e.logger.Warn("relation extraction call failed", "err", err)
			}
			continue
		}
		all = append(all, FilterRelations(ann, rels)...)
	}

	return dedupeRelations(all)
}

// ExtractSentence prompts the model for triples in one sentence. The
// caller provides the document's entity surfaces so the model can copy
// names exactly. An unparseable reply is reported as llm.ErrUnparseable,
// never silently swallowed.
func (e *RelationExtractor) ExtractSentence(ctx context.Context, sentence string, entitySurfaces []string) ([]types.ExtractedRelation, error) {
	messages, err := e.prompts.ExtractRelations().Relations().Call(map[string]interface{}{
		"sentence": sentence,
		"entities": entitySurfaces,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build relation prompt: %w", err)
	}

	raw, err := e.llm.ChatWithStructuredOutput(ctx, messages, llm.GenerateSchema(prompts.ExtractedRelations{}))
	if err != nil {
		return nil, fmt.Errorf("relation extraction call failed: %w", err)
	}

	var parsed prompts.ExtractedRelations
	if err := llm.UnmarshalResponse(string(raw), &parsed); err != nil {
		return nil, err
	}

	rels := make([]types.ExtractedRelation, 0, len(parsed.Relations))
	for _, r := range parsed.Relations {
		rels = append(rels, types.ExtractedRelation{
			Subject:   r.Subject,
			Predicate: r.Predicate,
			Object:    r.Object,
		})
	}
	return rels, nil
}

// FilterRelations applies the strict precision-focused contract:
//   - the predicate must normalize into the allowed set,
//   - subject and object must be exact entity surfaces from the document,
//   - pronouns are rejected even if the model let one through,
//   - per-predicate type constraints are enforced against the span labels.
func FilterRelations(ann types.DocAnnotation, rels []types.ExtractedRelation) []types.ExtractedRelation {
	surfaceLabels := make(map[string]types.EntityLabel, len(ann.Entities))
	for _, ent := range ann.Entities {
		surfaceLabels[ent.Text] = ent.Label
	}

	var cleaned []types.ExtractedRelation
	for _, r := range rels {
		pred, ok := types.ParsePredicate(r.Predicate)
		if !ok {
			continue
		}
		if pronounSurfaces[strings.ToLower(r.Subject)] || pronounSurfaces[strings.ToLower(r.Object)] {
			continue
		}

		subjectLabel, subjectKnown := surfaceLabels[r.Subject]
		objectLabel, objectKnown := surfaceLabels[r.Object]
		if !subjectKnown || !objectKnown {
			continue
		}
		if !predicateTypesOK(pred, subjectLabel, objectLabel) {
			continue
		}

		cleaned = append(cleaned, types.ExtractedRelation{
			Subject:   r.Subject,
			Predicate: string(pred),
			Object:    r.Object,
		})
	}
	return cleaned
}

// predicateTypesOK enforces the schema's subject/object label constraints.
func predicateTypesOK(pred types.Predicate, subject, object types.EntityLabel) bool {
	switch pred {
	case types.PredicateWorksFor, types.PredicateStudiedAt:
		return subject == types.LabelPerson && object == types.LabelOrg
	case types.PredicateLivesIn:
		return subject == types.LabelPerson && (object == types.LabelGPE || object == types.LabelLocation)
	case types.PredicateCollaboratesWith, types.PredicateReportsTo:
		return subject == types.LabelPerson && object == types.LabelPerson
	}
	return false
}

// dedupeRelations drops exact duplicate triples, keeping first-seen order.
func dedupeRelations(rels []types.ExtractedRelation) []types.ExtractedRelation {
	seen := make(map[types.ExtractedRelation]bool, len(rels))
	out := rels[:0]
	for _, r := range rels {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

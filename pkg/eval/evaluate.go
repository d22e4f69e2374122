package eval

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/biokg/go-biokg/pkg/fileio"
	"github.com/biokg/go-biokg/pkg/types"
)

// ErrNoDocuments reports that the ground truth contains no documents, in
// which case the per-document entity averages are undefined.
var ErrNoDocuments = errors.New("ground truth contains no documents")

// PersonalityScores holds the personality-inference metrics. Both fields
// are nil when no prediction matched a ground-truth person.
type PersonalityScores struct {
	MAE          *float64 `json:"MAE"`
	TraitJaccard *float64 `json:"trait_jaccard"`
}

// Result is the merged evaluation output, persisted as
// evaluation_metrics.json.
type Result struct {
	EntityExtraction     Scores            `json:"entity_extraction"`
	RelationExtraction   Scores            `json:"relation_extraction"`
	PersonalityInference PersonalityScores `json:"personality_inference"`
}

// EvaluateEntities scores entity extraction per document over
// lowercase-normalized surfaces, then averages precision, recall, and F1
// arithmetically across documents.
func EvaluateEntities(gt *types.GroundTruth, pred map[string]types.DocAnnotation) (Scores, error) {
	if len(gt.DocIndex) == 0 {
		return Scores{}, ErrNoDocuments
	}

	var precisions, recalls, f1s []float64
	for docName, docGT := range gt.DocIndex {
		truth := make([]string, 0, len(docGT.Mentions))
		for _, m := range docGT.Mentions {
			truth = append(truth, strings.ToLower(m.Surface))
		}

		var predicted []string
		for _, span := range pred[docName].Entities {
			predicted = append(predicted, strings.ToLower(span.Text))
		}

		s := PrecisionRecallF1(truth, predicted)
		precisions = append(precisions, s.Precision)
		recalls = append(recalls, s.Recall)
		f1s = append(f1s, s.F1)
	}

	return Scores{
		Precision: mean(precisions),
		Recall:    mean(recalls),
		F1:        mean(f1s),
	}, nil
}

// nameTriple is a fully surface-level relation fact used for comparison.
type nameTriple struct {
	subject   string
	predicate string
	object    string
}

// EvaluateRelations translates ground-truth triples from identifiers to
// lowercased display names and compares them globally against the
// predicted triples. Predicates on both sides are lowercased with
// internal whitespace collapsed to underscores before matching.
func EvaluateRelations(gt *types.GroundTruth, pred map[string]types.DocRelations) Scores {
	idToName := gt.EntityNames()
	lookup := func(id string) string {
		if name, ok := idToName[id]; ok {
			return strings.ToLower(name)
		}
		return strings.ToLower(id)
	}

	truthSet := make(map[nameTriple]struct{}, len(gt.Relations))
	for _, t := range gt.Relations {
		truthSet[nameTriple{
			subject:   lookup(t.Subject),
			predicate: types.NormalizePredicate(string(t.Predicate)),
			object:    lookup(t.Object),
		}] = struct{}{}
	}

	predSet := make(map[nameTriple]struct{})
	for _, doc := range pred {
		for _, r := range doc.Relations {
			predSet[nameTriple{
				subject:   strings.ToLower(r.Subject),
				predicate: types.NormalizePredicate(r.Predicate),
				object:    strings.ToLower(r.Object),
			}] = struct{}{}
		}
	}

	return precisionRecallF1Sets(truthSet, predSet)
}

// EvaluatePersonality pairs every predicted (document, person-name) entry
// with the first ground-truth person whose name matches
// case-insensitively, then averages mean absolute error over the Big
// Five vector and Jaccard similarity over the descriptor sets
// independently across all matched pairs. Unmatched predictions are
// silently skipped, not penalized.
func EvaluatePersonality(gt *types.GroundTruth, pred map[string]map[string]types.TraitEstimate) PersonalityScores {
	// Names are unique at generation time; the sorted-id scan below is
	// only defensive ordering for inputs that violate that invariant.
	pids := make([]string, 0, len(gt.Personality))
	for pid := range gt.Personality {
		pids = append(pids, pid)
	}
	sort.Strings(pids)

	var maeScores, jaccardScores []float64
	for _, docPred := range pred {
		for pname, estimate := range docPred {
			match, ok := matchPerson(gt, pids, pname)
			if !ok {
				continue
			}

			if mae, ok := MeanAbsoluteError(match.BigFive.Values(), estimate.BigFive.Values()); ok {
				maeScores = append(maeScores, mae)
			}
			jaccardScores = append(jaccardScores, JaccardIndex(match.Traits, estimate.Traits))
		}
	}

	var scores PersonalityScores
	if len(maeScores) > 0 {
		m := mean(maeScores)
		scores.MAE = &m
	}
	if len(jaccardScores) > 0 {
		j := mean(jaccardScores)
		scores.TraitJaccard = &j
	}
	return scores
}

// matchPerson finds the first ground-truth person whose name equals the
// predicted name case-insensitively.
func matchPerson(gt *types.GroundTruth, pids []string, name string) (types.PersonalityRecord, bool) {
	for _, pid := range pids {
		record := gt.Personality[pid]
		if strings.EqualFold(record.Name, name) {
			return record, true
		}
	}
	return types.PersonalityRecord{}, false
}

// Evaluator runs the three comparisons and persists the merged result.
type Evaluator struct {
	logger *log.Logger
}

// NewEvaluator creates an evaluation stage.
func NewEvaluator(logger *log.Logger) *Evaluator {
	if logger == nil {
		logger = log.Default()
	}
	return &Evaluator{logger: logger.With("stage", "evaluate")}
}

// Run loads the ground truth and the three prediction files, computes
// all metrics, writes the merged result to outputPath, and returns it.
func (e *Evaluator) Run(groundTruthPath, entitiesPath, relationsPath, traitsPath, outputPath string) (*Result, error) {
	var gt types.GroundTruth
	if err := fileio.LoadJSON(groundTruthPath, &gt); err != nil {
		return nil, err
	}

	var entitiesPred map[string]types.DocAnnotation
	if err := fileio.LoadJSON(entitiesPath, &entitiesPred); err != nil {
		return nil, err
	}
	var relationsPred map[string]types.DocRelations
	if err := fileio.LoadJSON(relationsPath, &relationsPred); err != nil {
		return nil, err
	}
	var traitsPred map[string]map[string]types.TraitEstimate
	if err := fileio.LoadJSON(traitsPath, &traitsPred); err != nil {
		return nil, err
	}

	entityScores, err := EvaluateEntities(&gt, entitiesPred)
	if err != nil {
		return nil, err
	}

	result := &Result{
		EntityExtraction:     entityScores,
		RelationExtraction:   EvaluateRelations(&gt, relationsPred),
		PersonalityInference: EvaluatePersonality(&gt, traitsPred),
	}

	if err := fileio.SaveJSON(outputPath, result); err != nil {
		return nil, err
	}
	e.logger.Info("evaluation complete", "path", outputPath)
	return result, nil
}

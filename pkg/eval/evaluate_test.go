package eval

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biokg/go-biokg/pkg/fileio"
	"github.com/biokg/go-biokg/pkg/types"
)

func sampleGroundTruth() *types.GroundTruth {
	return &types.GroundTruth{
		Entities: []types.Entity{
			{ID: "p001", Label: types.LabelPerson, Name: "Maya Park"},
			{ID: "o001", Label: types.LabelOrg, Name: "ApexTech"},
			{ID: "l001", Label: types.LabelLocation, Name: "Riverton"},
		},
		Relations: []types.Triple{
			{Subject: "p001", Predicate: types.PredicateWorksFor, Object: "o001"},
			{Subject: "p001", Predicate: types.PredicateLivesIn, Object: "l001"},
		},
		Personality: map[string]types.PersonalityRecord{
			"p001": {
				Name:    "Maya Park",
				BigFive: types.BigFive{Openness: 0.8, Conscientiousness: 0.6, Extraversion: 0.4, Agreeableness: 0.7, Neuroticism: 0.3},
				Traits:  []string{"curious", "organized"},
			},
		},
		DocIndex: map[string]types.DocMentions{
			"doc_001.txt": {Mentions: []types.Mention{
				{Surface: "Maya Park", EntityID: "p001"},
				{Surface: "ApexTech", EntityID: "o001"},
			}},
		},
	}
}

func TestEvaluateEntitiesNoDocuments(t *testing.T) {
	_, err := EvaluateEntities(&types.GroundTruth{}, nil)
	require.ErrorIs(t, err, ErrNoDocuments)
}

func TestEvaluateEntitiesCaseInsensitive(t *testing.T) {
	gt := sampleGroundTruth()
	pred := map[string]types.DocAnnotation{
		"doc_001.txt": {Entities: []types.EntitySpan{
			{Text: "MAYA PARK", Label: types.LabelPerson},
			{Text: "apextech", Label: types.LabelOrg},
		}},
	}

	s, err := EvaluateEntities(gt, pred)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Precision, 1e-9)
	assert.InDelta(t, 1.0, s.Recall, 1e-9)
	assert.InDelta(t, 1.0, s.F1, 1e-9)
}

func TestEvaluateEntitiesMissingPrediction(t *testing.T) {
	gt := sampleGroundTruth()

	// A document with no prediction entry counts fully against recall.
	s, err := EvaluateEntities(gt, map[string]types.DocAnnotation{})
	require.NoError(t, err)
	assert.Zero(t, s.Recall)
	assert.Zero(t, s.Precision)
}

func TestEvaluateRelationsNormalization(t *testing.T) {
	gt := sampleGroundTruth()
	pred := map[string]types.DocRelations{
		"doc_001.txt": {Relations: []types.ExtractedRelation{
			{Subject: "Maya Park", Predicate: "works for", Object: "ApexTech"},
			{Subject: "maya park", Predicate: "LIVES IN", Object: "Riverton"},
		}},
	}

	s := EvaluateRelations(gt, pred)
	assert.InDelta(t, 1.0, s.Precision, 1e-9)
	assert.InDelta(t, 1.0, s.Recall, 1e-9)
}

func TestEvaluateRelationsNormalizesBothSides(t *testing.T) {
	// A ground truth carrying a denormalized predicate still matches a
	// normalized prediction; both sides go through the same rule.
	gt := sampleGroundTruth()
	gt.Relations = []types.Triple{
		{Subject: "p001", Predicate: types.Predicate("Works For"), Object: "o001"},
	}
	pred := map[string]types.DocRelations{
		"doc_001.txt": {Relations: []types.ExtractedRelation{
			{Subject: "Maya Park", Predicate: "works_for", Object: "ApexTech"},
		}},
	}

	s := EvaluateRelations(gt, pred)
	assert.InDelta(t, 1.0, s.Precision, 1e-9)
	assert.InDelta(t, 1.0, s.Recall, 1e-9)
}

func TestEvaluateRelationsGlobalSet(t *testing.T) {
	gt := sampleGroundTruth()
	// The same correct triple predicted in two documents counts once.
	rel := types.ExtractedRelation{Subject: "Maya Park", Predicate: "works_for", Object: "ApexTech"}
	pred := map[string]types.DocRelations{
		"doc_001.txt": {Relations: []types.ExtractedRelation{rel}},
		"doc_002.txt": {Relations: []types.ExtractedRelation{rel}},
	}

	s := EvaluateRelations(gt, pred)
	assert.InDelta(t, 1.0, s.Precision, 1e-9)
	assert.InDelta(t, 0.5, s.Recall, 1e-9)
}

func TestEvaluatePersonalityMatching(t *testing.T) {
	gt := sampleGroundTruth()
	pred := map[string]map[string]types.TraitEstimate{
		"doc_001.txt": {
			// Case-insensitive name match against the ground truth.
			"MAYA PARK": {
				BigFive: types.BigFive{Openness: 0.8, Conscientiousness: 0.6, Extraversion: 0.4, Agreeableness: 0.7, Neuroticism: 0.3},
				Traits:  []string{"curious", "organized"},
			},
			// Unknown person, silently skipped.
			"Evan Cole": {Traits: []string{"sociable"}},
		},
	}

	scores := EvaluatePersonality(gt, pred)
	require.NotNil(t, scores.MAE)
	require.NotNil(t, scores.TraitJaccard)
	assert.InDelta(t, 0.0, *scores.MAE, 1e-9)
	assert.InDelta(t, 1.0, *scores.TraitJaccard, 1e-9)
}

func TestEvaluatePersonalityNoMatches(t *testing.T) {
	gt := sampleGroundTruth()
	pred := map[string]map[string]types.TraitEstimate{
		"doc_001.txt": {"Nobody Known": {}},
	}

	scores := EvaluatePersonality(gt, pred)
	assert.Nil(t, scores.MAE)
	assert.Nil(t, scores.TraitJaccard)
}

func TestEvaluatorRun(t *testing.T) {
	dir := t.TempDir()
	gt := sampleGroundTruth()

	require.NoError(t, fileio.SaveJSON(filepath.Join(dir, "ground_truth.json"), gt))
	require.NoError(t, fileio.SaveJSON(filepath.Join(dir, "entities.json"), map[string]types.DocAnnotation{
		"doc_001.txt": {Entities: []types.EntitySpan{{Text: "Maya Park", Label: types.LabelPerson}}},
	}))
	require.NoError(t, fileio.SaveJSON(filepath.Join(dir, "relations.json"), map[string]types.DocRelations{
		"doc_001.txt": {Relations: []types.ExtractedRelation{
			{Subject: "Maya Park", Predicate: "works_for", Object: "ApexTech"},
		}},
	}))
	require.NoError(t, fileio.SaveJSON(filepath.Join(dir, "traits.json"), map[string]map[string]types.TraitEstimate{
		"doc_001.txt": {"Maya Park": {Traits: []string{"curious"}}},
	}))

	outPath := filepath.Join(dir, "evaluation_metrics.json")
	result, err := NewEvaluator(nil).Run(
		filepath.Join(dir, "ground_truth.json"),
		filepath.Join(dir, "entities.json"),
		filepath.Join(dir, "relations.json"),
		filepath.Join(dir, "traits.json"),
		outPath,
	)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.EntityExtraction.Recall, 1e-9)
	assert.InDelta(t, 1.0, result.RelationExtraction.Precision, 1e-9)
	require.NotNil(t, result.PersonalityInference.TraitJaccard)

	var onDisk Result
	require.NoError(t, fileio.LoadJSON(outPath, &onDisk))
	assert.Equal(t, result.EntityExtraction, onDisk.EntityExtraction)
}

func TestEvaluatorRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := NewEvaluator(nil).Run(
		filepath.Join(dir, "ground_truth.json"),
		filepath.Join(dir, "entities.json"),
		filepath.Join(dir, "relations.json"),
		filepath.Join(dir, "traits.json"),
		filepath.Join(dir, "out.json"),
	)
	require.Error(t, err)
}

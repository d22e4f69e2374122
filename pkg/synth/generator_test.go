package synth

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biokg/go-biokg/pkg/types"
)

func TestGenerateDeterministic(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	cfg := Config{NumPeople: 10, NumDocs: 10, Seed: 42}

	cfg.OutputDir = dirA
	_, err := NewGenerator(cfg, nil).Generate()
	require.NoError(t, err)

	cfg.OutputDir = dirB
	_, err = NewGenerator(cfg, nil).Generate()
	require.NoError(t, err)

	for _, name := range []string{GroundTruthFile, "doc_001.txt", "doc_010.txt"} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), "file %s differs between runs", name)
	}
}

func TestGenerateCorpusShape(t *testing.T) {
	dir := t.TempDir()
	gt, err := NewGenerator(Config{OutputDir: dir, NumPeople: 10, NumDocs: 10, Seed: 42}, nil).Generate()
	require.NoError(t, err)

	// 10 people + 6 companies + 4 universities + 7 locations.
	assert.Len(t, gt.Entities, 27)
	assert.Len(t, gt.Personality, 10)
	assert.Len(t, gt.DocIndex, 10)

	for i := 1; i <= 10; i++ {
		name := fmt.Sprintf("doc_%03d.txt", i)
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(string(data), "\n"))
		assert.False(t, strings.Contains(string(data), "{"), "unsubstituted placeholder in %s", name)

		mentions := gt.DocIndex[name].Mentions
		require.Len(t, mentions, 4)
		// Every declared surface actually occurs in the text.
		for _, m := range mentions {
			assert.Contains(t, string(data), m.Surface)
		}
	}

	// Every person references registry entities that exist.
	names := gt.EntityNames()
	for _, triple := range gt.Relations {
		assert.Contains(t, names, triple.Subject)
		assert.Contains(t, names, triple.Object)
	}
}

func TestGenerateDocsCappedToPeople(t *testing.T) {
	dir := t.TempDir()
	gt, err := NewGenerator(Config{OutputDir: dir, NumPeople: 3, NumDocs: 10, Seed: 1}, nil).Generate()
	require.NoError(t, err)

	assert.Len(t, gt.DocIndex, 3)
	_, err = os.Stat(filepath.Join(dir, "doc_004.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMakeRosterTooLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := makeRoster(rng, NewRegistry(), len(firstNames)*len(lastNames)+1)
	require.ErrorIs(t, err, ErrRosterTooLarge)
}

func TestMakeRosterUniqueNames(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	people, err := makeRoster(rng, NewRegistry(), 50)
	require.NoError(t, err)
	require.Len(t, people, 50)

	seen := make(map[string]bool)
	for _, p := range people {
		assert.False(t, seen[p.Name], "duplicate name %s", p.Name)
		seen[p.Name] = true
	}
	assert.Equal(t, "p001", people[0].ID)
	assert.Equal(t, "p050", people[49].ID)
}

func TestRandomBigFiveBoundsAndRounding(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		for _, v := range randomBigFive(rng).Values() {
			assert.GreaterOrEqual(t, v, 0.2)
			assert.LessOrEqual(t, v, 0.9)
			cents := v * 100
			assert.InDelta(t, cents, float64(int(cents+0.5)), 1e-9, "score %v not rounded to 2 decimals", v)
		}
	}
}

func TestDescriptorsFromBigFive(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	vocab := make(map[string]bool)
	for _, w := range DescriptorVocabulary {
		vocab[w] = true
	}

	high := types.BigFive{Openness: 0.9, Conscientiousness: 0.9, Extraversion: 0.9, Agreeableness: 0.9, Neuroticism: 0.9}
	got := descriptorsFromBigFive(rng, high)
	// One descriptor per dimension, first match wins, capped at three.
	assert.Equal(t, []string{"curious", "organized", "outspoken"}, got)

	low := types.BigFive{Openness: 0.2, Conscientiousness: 0.2, Extraversion: 0.2, Agreeableness: 0.2, Neuroticism: 0.2}
	got = descriptorsFromBigFive(rng, low)
	// Only "resilient" fires (inverted, 0.2 <= 0.3); the list is padded.
	assert.Contains(t, got, "resilient")
	assert.GreaterOrEqual(t, len(got), 2)
	assert.LessOrEqual(t, len(got), 3)

	for i := 0; i < 100; i++ {
		descriptors := descriptorsFromBigFive(rng, randomBigFive(rng))
		assert.GreaterOrEqual(t, len(descriptors), 2)
		assert.LessOrEqual(t, len(descriptors), 3)
		for _, w := range descriptors {
			assert.True(t, vocab[w], "descriptor %q outside vocabulary", w)
		}
	}
}

func TestMakeRelations(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	people, err := makeRoster(rng, NewRegistry(), 10)
	require.NoError(t, err)

	triples := makeRelations(rng, people)

	// 3 structural triples per person, 5 symmetric collaboration pairs,
	// one reporting link.
	assert.Len(t, triples, 30+10+1)

	collab := make(map[[2]string]bool)
	for _, tr := range triples {
		if tr.Predicate == types.PredicateCollaboratesWith {
			assert.NotEqual(t, tr.Subject, tr.Object, "self-collaboration")
			collab[[2]string{tr.Subject, tr.Object}] = true
		}
	}
	for pair := range collab {
		assert.True(t, collab[[2]string{pair[1], pair[0]}], "collaboration %v lacks its mirror", pair)
	}
}

func TestMakeRelationsSmallRoster(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	people, err := makeRoster(rng, NewRegistry(), 3)
	require.NoError(t, err)

	triples := makeRelations(rng, people)
	assert.Len(t, triples, 9)
	for _, tr := range triples {
		assert.Contains(t, []types.Predicate{
			types.PredicateWorksFor, types.PredicateStudiedAt, types.PredicateLivesIn,
		}, tr.Predicate)
	}
}

func TestRegistryIDsAndOrder(t *testing.T) {
	reg := NewRegistry()

	assert.Len(t, reg.OrgIDs, len(companies))
	assert.Len(t, reg.UniIDs, len(universities))
	assert.Len(t, reg.LocIDs, len(locations))
	assert.Equal(t, "o001", reg.OrgIDs[0])
	assert.Equal(t, "ApexTech", reg.Name("o001"))
	assert.Equal(t, "u001", reg.UniIDs[0])
	assert.Equal(t, "Northbridge University", reg.Name("u001"))
	assert.Equal(t, "l001", reg.LocIDs[0])
	assert.Equal(t, "Riverton", reg.Name("l001"))

	entities := reg.Entities()
	require.NotEmpty(t, entities)
	assert.Equal(t, "o001", entities[0].ID)
	assert.Equal(t, "company", entities[0].Attrs["category"])
}

func TestRenderDocumentPronouns(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	reg := NewRegistry()
	person := types.Person{
		ID: "p001", Name: "Maya Park", Role: "data analyst",
		CompanyID: "o001", UniversityID: reg.UniIDs[0], LocationID: "l001",
		Gender: "f",
		Traits: []string{"curious", "organized"},
	}

	text, mentions := renderDocument(rng, person, reg)
	assert.Contains(t, text, "Maya Park")
	assert.Contains(t, text, "ApexTech")
	assert.NotContains(t, text, "{")
	assert.NotContains(t, text, " he ")
	require.Len(t, mentions, 4)
	assert.Equal(t, types.Mention{Surface: "Maya Park", EntityID: "p001"}, mentions[0])
}

package synth

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/biokg/go-biokg/pkg/fileio"
	"github.com/biokg/go-biokg/pkg/types"
)

// GroundTruthFile is the name of the serialized ground truth within the
// corpus directory.
const GroundTruthFile = "ground_truth.json"

// Config holds generation parameters.
type Config struct {
	OutputDir string
	NumPeople int
	NumDocs   int
	Seed      int64
}

// Generator produces a synthetic biography corpus together with its
// ground truth. All randomness flows through a single seeded source, so
// two runs with the same configuration produce byte-identical output.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg Config, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger.With("stage", "generate"),
	}
}

// Generate builds the registry, roster, relations, and documents, writes
// one doc_NNN.txt per rendered document plus ground_truth.json, and
// returns the assembled ground truth.
func (g *Generator) Generate() (*types.GroundTruth, error) {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	reg := NewRegistry()

	people, err := makeRoster(g.rng, reg, g.cfg.NumPeople)
	if err != nil {
		return nil, fmt.Errorf("failed to create roster: %w", err)
	}

	triples := makeRelations(g.rng, people)

	nDocs := g.cfg.NumDocs
	if nDocs > len(people) {
		nDocs = len(people)
	}

	docIndex := make(map[string]types.DocMentions, nDocs)
	for i, person := range people[:nDocs] {
		text, mentions := renderDocument(g.rng, person, reg)
		fname := fmt.Sprintf("doc_%03d.txt", i+1)

		path := filepath.Join(g.cfg.OutputDir, fname)
		if err := os.WriteFile(path, []byte(strings.TrimSpace(text)+"\n"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", fname, err)
		}
		docIndex[fname] = types.DocMentions{Mentions: mentions}
	}

	gt := assembleGroundTruth(people, reg, triples, docIndex)

	if err := fileio.SaveJSON(filepath.Join(g.cfg.OutputDir, GroundTruthFile), gt); err != nil {
		return nil, err
	}

	g.logger.Info("synthetic corpus written",
		"dir", g.cfg.OutputDir,
		"people", len(people),
		"docs", nDocs,
		"relations", len(triples))
	return gt, nil
}

// assembleGroundTruth merges the registry, roster, relation list, and
// per-document mention records into one structure. Pure aggregation: no
// validation happens here.
func assembleGroundTruth(
	people []types.Person,
	reg *Registry,
	triples []types.Triple,
	docIndex map[string]types.DocMentions,
) *types.GroundTruth {
	entities := make([]types.Entity, 0, len(people)+len(reg.Entities()))

	for _, p := range people {
		entities = append(entities, types.Entity{
			ID:    p.ID,
			Label: types.LabelPerson,
			Name:  p.Name,
			Attrs: map[string]string{
				"role":       p.Role,
				"works_for":  p.CompanyID,
				"studied_at": p.UniversityID,
				"lives_in":   p.LocationID,
			},
		})
	}
	entities = append(entities, reg.Entities()...)

	personality := make(map[string]types.PersonalityRecord, len(people))
	for _, p := range people {
		personality[p.ID] = types.PersonalityRecord{
			Name:    p.Name,
			BigFive: p.BigFive,
			Traits:  p.Traits,
		}
	}

	return &types.GroundTruth{
		Entities:    entities,
		Relations:   triples,
		Personality: personality,
		DocIndex:    docIndex,
	}
}

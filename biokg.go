// Package biokg wires the full biography knowledge-graph pipeline:
// synthetic corpus generation, entity recognition, LLM relation and
// personality extraction, graph assembly, and evaluation against the
// generated ground truth.
package biokg

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/biokg/go-biokg/pkg/config"
	"github.com/biokg/go-biokg/pkg/eval"
	"github.com/biokg/go-biokg/pkg/extract"
	"github.com/biokg/go-biokg/pkg/fileio"
	"github.com/biokg/go-biokg/pkg/kg"
	"github.com/biokg/go-biokg/pkg/llm"
	"github.com/biokg/go-biokg/pkg/nlp"
	"github.com/biokg/go-biokg/pkg/synth"
	"github.com/biokg/go-biokg/pkg/types"
)

// Artifact filenames written under the output directory. Graph exports
// go into their own subdirectory.
const (
	EntitiesFile  = "entities.json"
	RelationsFile = "relations.json"
	TraitsFile    = "traits.json"
	MetricsFile   = "evaluation_metrics.json"
	GraphsDir     = "graphs"
)

// Pipeline runs the stages end to end over a shared configuration.
// Construct it with New; the zero value is not usable.
type Pipeline struct {
	llm        llm.Client
	recognizer nlp.Recognizer
	cfg        *config.Config
	logger     *log.Logger
}

// New creates a pipeline. The llm client is required: the relation and
// personality stages always call it, even when a separate recognizer
// handles entities. The recognizer may be nil, in which case an
// LLM-backed recognizer over llmClient is used. A nil config gets the
// package defaults.
func New(llmClient llm.Client, recognizer nlp.Recognizer, cfg *config.Config, logger *log.Logger) (*Pipeline, error) {
	if llmClient == nil {
		return nil, fmt.Errorf("pipeline requires an llm client")
	}
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if logger == nil {
		logger = log.Default()
	}
	if recognizer == nil {
		recognizer = nlp.NewLLMRecognizer(llmClient)
	}
	return &Pipeline{
		llm:        llmClient,
		recognizer: recognizer,
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// Generate writes the synthetic corpus and its ground truth into the
// configured data directory.
func (p *Pipeline) Generate() error {
	gen := synth.NewGenerator(synth.Config{
		OutputDir: p.cfg.Pipeline.DataDir,
		NumPeople: p.cfg.Synth.NumPeople,
		NumDocs:   p.cfg.Synth.NumDocs,
		Seed:      p.cfg.Synth.Seed,
	}, p.logger)
	_, err := gen.Generate()
	return err
}

// Extract runs entity recognition, relation extraction, and personality
// inference over the corpus, writing one JSON artifact per stage.
func (p *Pipeline) Extract(ctx context.Context) error {
	dataDir := p.cfg.Pipeline.DataDir
	outDir := p.cfg.Pipeline.OutputDir

	pre := nlp.NewPreprocessor(p.recognizer, p.logger)
	if _, err := pre.Run(ctx, dataDir, filepath.Join(outDir, EntitiesFile)); err != nil {
		return fmt.Errorf("entity recognition failed: %w", err)
	}

	relExtractor := extract.NewRelationExtractor(p.llm, p.logger)
	if _, err := relExtractor.Run(ctx, filepath.Join(outDir, EntitiesFile), filepath.Join(outDir, RelationsFile)); err != nil {
		return fmt.Errorf("relation extraction failed: %w", err)
	}

	inferrer := extract.NewPersonalityInferrer(p.llm, p.logger)
	if _, err := inferrer.Run(ctx, filepath.Join(outDir, EntitiesFile), filepath.Join(outDir, TraitsFile)); err != nil {
		return fmt.Errorf("personality inference failed: %w", err)
	}
	return nil
}

// BuildGraph merges the three extraction artifacts into a knowledge
// graph and exports it as GEXF, GraphML, and an interactive HTML page.
func (p *Pipeline) BuildGraph() (*kg.Graph, error) {
	outDir := p.cfg.Pipeline.OutputDir

	var entities map[string]types.DocAnnotation
	if err := fileio.LoadJSON(filepath.Join(outDir, EntitiesFile), &entities); err != nil {
		return nil, err
	}
	var relations map[string]types.DocRelations
	if err := fileio.LoadJSON(filepath.Join(outDir, RelationsFile), &relations); err != nil {
		return nil, err
	}
	var traits map[string]map[string]types.TraitEstimate
	if err := fileio.LoadJSON(filepath.Join(outDir, TraitsFile), &traits); err != nil {
		return nil, err
	}

	graphDir := filepath.Join(outDir, GraphsDir)
	graph := kg.NewBuilder(p.logger).Build(entities, relations, traits)
	if err := graph.Export(graphDir); err != nil {
		return nil, err
	}
	if err := graph.WriteHTML(filepath.Join(graphDir, kg.HTMLFile), kg.DefaultHighlightTrait); err != nil {
		return nil, err
	}
	return graph, nil
}

// Evaluate scores the extraction artifacts against the ground truth and
// writes evaluation_metrics.json.
func (p *Pipeline) Evaluate() (*eval.Result, error) {
	outDir := p.cfg.Pipeline.OutputDir
	evaluator := eval.NewEvaluator(p.logger)
	return evaluator.Run(
		filepath.Join(p.cfg.Pipeline.DataDir, synth.GroundTruthFile),
		filepath.Join(outDir, EntitiesFile),
		filepath.Join(outDir, RelationsFile),
		filepath.Join(outDir, TraitsFile),
		filepath.Join(outDir, MetricsFile),
	)
}

// Run executes the whole pipeline: generate, extract, build, evaluate.
func (p *Pipeline) Run(ctx context.Context) (*eval.Result, error) {
	if err := p.Generate(); err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	if err := p.Extract(ctx); err != nil {
		return nil, err
	}
	if _, err := p.BuildGraph(); err != nil {
		return nil, fmt.Errorf("graph construction failed: %w", err)
	}
	result, err := p.Evaluate()
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}
	return result, nil
}

// Close releases the pipeline's LLM resources.
func (p *Pipeline) Close() error {
	if p.llm != nil {
		return p.llm.Close()
	}
	return nil
}

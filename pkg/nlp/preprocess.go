package nlp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/biokg/go-biokg/pkg/fileio"
	"github.com/biokg/go-biokg/pkg/types"
)

// Preprocessor runs the recognizer over a corpus directory and persists
// the per-document annotations.
type Preprocessor struct {
	recognizer Recognizer
	logger     *log.Logger
}

// NewPreprocessor creates a preprocessing stage around a recognizer.
func NewPreprocessor(recognizer Recognizer, logger *log.Logger) *Preprocessor {
	if logger == nil {
		logger = log.Default()
	}
	return &Preprocessor{
		recognizer: recognizer,
		logger:     logger.With("stage", "preprocess"),
	}
}

// Run reads every .txt document in inputDir (sorted by filename),
// annotates each, and writes the filename-to-annotation map to
// outputPath. A missing input directory is fatal for the run.
func (p *Preprocessor) Run(ctx context.Context, inputDir, outputPath string) (map[string]types.DocAnnotation, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".txt") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	results := make(map[string]types.DocAnnotation, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(inputDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		p.logger.Info("annotating document", "doc", name)
		annotation, err := p.recognizer.Annotate(ctx, strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to annotate %s: %w", name, err)
		}
		results[name] = annotation
	}

	if err := fileio.SaveJSON(outputPath, results); err != nil {
		return nil, err
	}
	p.logger.Info("annotations written", "path", outputPath, "docs", len(results))
	return results, nil
}

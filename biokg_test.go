package biokg

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biokg/go-biokg/pkg/config"
	"github.com/biokg/go-biokg/pkg/kg"
	"github.com/biokg/go-biokg/pkg/llm"
	"github.com/biokg/go-biokg/pkg/synth"
)

// stubLLM answers each prompt kind with a fixed empty-but-valid payload,
// so the pipeline can run end to end without a real model.
type stubLLM struct {
	calls int
}

func (s *stubLLM) Chat(ctx context.Context, messages []llm.Message) (*llm.Response, error) {
	return &llm.Response{Content: "{}"}, nil
}

func (s *stubLLM) ChatWithStructuredOutput(ctx context.Context, messages []llm.Message, schema any) (json.RawMessage, error) {
	s.calls++
	user := messages[len(messages)-1].Content
	switch {
	case strings.Contains(user, "ALLOWED PREDICATES"):
		return json.RawMessage(`{"relations": []}`), nil
	case strings.Contains(user, "Big Five"):
		return json.RawMessage(`{"big_five": {}, "traits": []}`), nil
	default:
		return json.RawMessage(`{"entities": [], "sentences": []}`), nil
	}
}

func (s *stubLLM) Close() error { return nil }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	return &config.Config{
		Pipeline: config.PipelineConfig{
			DataDir:   filepath.Join(base, "data"),
			OutputDir: filepath.Join(base, "outputs"),
		},
		Synth: config.SynthConfig{NumPeople: 3, NumDocs: 3, Seed: 7},
	}
}

func TestPipelineRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	client := &stubLLM{}

	pipeline, err := New(client, nil, cfg, nil)
	require.NoError(t, err)
	defer pipeline.Close()

	result, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	// The stub finds nothing, so every score bottoms out.
	assert.Zero(t, result.EntityExtraction.F1)
	assert.Zero(t, result.RelationExtraction.F1)
	assert.Nil(t, result.PersonalityInference.MAE)
	assert.Nil(t, result.PersonalityInference.TraitJaccard)
	assert.Greater(t, client.calls, 0)

	for _, name := range []string{
		filepath.Join(cfg.Pipeline.DataDir, "doc_001.txt"),
		filepath.Join(cfg.Pipeline.DataDir, synth.GroundTruthFile),
		filepath.Join(cfg.Pipeline.OutputDir, EntitiesFile),
		filepath.Join(cfg.Pipeline.OutputDir, RelationsFile),
		filepath.Join(cfg.Pipeline.OutputDir, TraitsFile),
		filepath.Join(cfg.Pipeline.OutputDir, MetricsFile),
		filepath.Join(cfg.Pipeline.OutputDir, GraphsDir, kg.GEXFFile),
		filepath.Join(cfg.Pipeline.OutputDir, GraphsDir, kg.GraphMLFile),
		filepath.Join(cfg.Pipeline.OutputDir, GraphsDir, kg.HTMLFile),
	} {
		_, err := os.Stat(name)
		assert.NoError(t, err, "expected artifact %s", name)
	}
}

func TestNewRequiresClient(t *testing.T) {
	_, err := New(nil, nil, testConfig(t), nil)
	require.Error(t, err)

	// A recognizer alone is not enough: the extraction stages always
	// need the llm client.
	pipeline, err := New(&stubLLM{}, nil, testConfig(t), nil)
	require.NoError(t, err)
	recognizer := pipeline.recognizer

	_, err = New(nil, recognizer, testConfig(t), nil)
	require.Error(t, err)
}

func TestGenerateOnly(t *testing.T) {
	cfg := testConfig(t)
	pipeline, err := New(&stubLLM{}, nil, cfg, nil)
	require.NoError(t, err)

	require.NoError(t, pipeline.Generate())
	_, err = os.Stat(filepath.Join(cfg.Pipeline.DataDir, synth.GroundTruthFile))
	assert.NoError(t, err)
}

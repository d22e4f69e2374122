package nlp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biokg/go-biokg/pkg/fileio"
	"github.com/biokg/go-biokg/pkg/llm"
	"github.com/biokg/go-biokg/pkg/types"
)

type mockLLM struct {
	response string
}

func (m *mockLLM) Chat(ctx context.Context, messages []llm.Message) (*llm.Response, error) {
	return &llm.Response{Content: m.response}, nil
}

func (m *mockLLM) ChatWithStructuredOutput(ctx context.Context, messages []llm.Message, schema any) (json.RawMessage, error) {
	return json.RawMessage(m.response), nil
}

func (m *mockLLM) Close() error { return nil }

func TestAnnotateOffsetsAndInventedSurfaces(t *testing.T) {
	text := "Maya Park is a data analyst at ApexTech. She lives in Riverton."
	client := &mockLLM{response: `{
		"entities": [
			{"text": "Maya Park", "label": "PERSON"},
			{"text": "ApexTech", "label": "ORG"},
			{"text": "Riverton", "label": "GPE"},
			{"text": "Atlantis", "label": "GPE"},
			{"text": "", "label": "ORG"}
		],
		"sentences": ["Maya Park is a data analyst at ApexTech.", "She lives in Riverton."]
	}`}

	ann, err := NewLLMRecognizer(client).Annotate(context.Background(), text)
	require.NoError(t, err)

	// Invented and empty surfaces are dropped.
	require.Len(t, ann.Entities, 3)
	assert.Len(t, ann.Sentences, 2)

	maya := ann.Entities[0]
	assert.Equal(t, "Maya Park", maya.Text)
	assert.Equal(t, types.LabelPerson, maya.Label)
	assert.Equal(t, 0, maya.Start)
	assert.Equal(t, len("Maya Park"), maya.End)

	apex := ann.Entities[1]
	assert.Equal(t, text[apex.Start:apex.End], "ApexTech")
}

func TestAnnotateSentenceFallback(t *testing.T) {
	client := &mockLLM{response: `{"entities": [], "sentences": []}`}
	ann, err := NewLLMRecognizer(client).Annotate(context.Background(), "  One lone sentence.  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"One lone sentence."}, ann.Sentences)
}

func TestAnnotateUnknownLabel(t *testing.T) {
	client := &mockLLM{response: `{"entities": [{"text": "Monday", "label": "DATE"}], "sentences": ["Monday."]}`}
	ann, err := NewLLMRecognizer(client).Annotate(context.Background(), "Monday.")
	require.NoError(t, err)
	require.Len(t, ann.Entities, 1)
	assert.Equal(t, types.LabelUnknown, ann.Entities[0].Label)
}

func TestPreprocessorRun(t *testing.T) {
	inputDir := t.TempDir()
	outDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "doc_001.txt"),
		[]byte("Maya Park works at ApexTech.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "ground_truth.json"),
		[]byte("{}"), 0o644))

	client := &mockLLM{response: `{
		"entities": [{"text": "Maya Park", "label": "PERSON"}],
		"sentences": ["Maya Park works at ApexTech."]
	}`}

	outPath := filepath.Join(outDir, "entities.json")
	results, err := NewPreprocessor(NewLLMRecognizer(client), nil).Run(context.Background(), inputDir, outPath)
	require.NoError(t, err)

	// Only .txt files are annotated.
	require.Len(t, results, 1)
	require.Contains(t, results, "doc_001.txt")

	var onDisk map[string]types.DocAnnotation
	require.NoError(t, fileio.LoadJSON(outPath, &onDisk))
	assert.Equal(t, results["doc_001.txt"].Entities, onDisk["doc_001.txt"].Entities)
}

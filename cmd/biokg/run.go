package biokg

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	root "github.com/biokg/go-biokg"
	"github.com/biokg/go-biokg/pkg/config"
	"github.com/biokg/go-biokg/pkg/cost"
	"github.com/biokg/go-biokg/pkg/llm"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: generate, extract, build, evaluate",
	Long: `Run every stage in order: generate the synthetic corpus, recognize
entities, extract relations and personality estimates with the LLM,
assemble the knowledge graph, and score the results against the ground
truth. Requires OPENAI_API_KEY (or an openai-compatible endpoint via
OPENAI_BASE_URL).`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("people", 10, "number of people in the roster")
	runCmd.Flags().Int("docs", 10, "number of documents to write")
	runCmd.Flags().Int64("seed", 42, "random seed")
	runCmd.Flags().String("model", "", "LLM model name")

	viper.BindPFlag("synth.num_people", runCmd.Flags().Lookup("people"))
	viper.BindPFlag("synth.num_docs", runCmd.Flags().Lookup("docs"))
	viper.BindPFlag("synth.seed", runCmd.Flags().Lookup("seed"))
	viper.BindPFlag("llm.model", runCmd.Flags().Lookup("model"))
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("no LLM API key configured; set OPENAI_API_KEY")
	}

	tracker := cost.NewTracker(cfg.LLM.Model)
	client := llm.NewOpenAIClient(cfg.LLM.APIKey, llm.Config{
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: &cfg.LLM.Temperature,
		MaxTokens:   &cfg.LLM.MaxTokens,
	}).WithUsageRecorder(tracker)

	pipeline, err := root.New(client, nil, cfg, log.Default())
	if err != nil {
		return err
	}
	defer pipeline.Close()

	result, err := pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}

	printResult(result)

	usage := tracker.Summary()
	log.Info("llm usage",
		"calls", usage.Calls,
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"estimated_usd", fmt.Sprintf("%.4f", usage.EstimatedUSD),
	)
	return nil
}

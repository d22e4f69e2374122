package biokg

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	root "github.com/biokg/go-biokg"
	"github.com/biokg/go-biokg/pkg/config"
	"github.com/biokg/go-biokg/pkg/eval"
	"github.com/biokg/go-biokg/pkg/synth"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Score existing extraction artifacts against the ground truth",
	Long: `Recompute evaluation metrics from artifacts already on disk. Expects
ground_truth.json in the data directory and entities.json,
relations.json, and traits.json in the output directory.`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	outDir := cfg.Pipeline.OutputDir
	evaluator := eval.NewEvaluator(log.Default())
	result, err := evaluator.Run(
		filepath.Join(cfg.Pipeline.DataDir, synth.GroundTruthFile),
		filepath.Join(outDir, root.EntitiesFile),
		filepath.Join(outDir, root.RelationsFile),
		filepath.Join(outDir, root.TraitsFile),
		filepath.Join(outDir, root.MetricsFile),
	)
	if err != nil {
		return err
	}

	printResult(result)
	return nil
}

func printResult(result *eval.Result) {
	fmt.Println("Entity extraction:")
	printScores(result.EntityExtraction)
	fmt.Println("Relation extraction:")
	printScores(result.RelationExtraction)
	fmt.Println("Personality inference:")
	if result.PersonalityInference.MAE != nil {
		fmt.Printf("  MAE:           %.4f\n", *result.PersonalityInference.MAE)
	} else {
		fmt.Println("  MAE:           n/a (no matched predictions)")
	}
	if result.PersonalityInference.TraitJaccard != nil {
		fmt.Printf("  Trait Jaccard: %.4f\n", *result.PersonalityInference.TraitJaccard)
	} else {
		fmt.Println("  Trait Jaccard: n/a (no matched predictions)")
	}
}

func printScores(s eval.Scores) {
	fmt.Printf("  Precision: %.4f\n", s.Precision)
	fmt.Printf("  Recall:    %.4f\n", s.Recall)
	fmt.Printf("  F1:        %.4f\n", s.F1)
}

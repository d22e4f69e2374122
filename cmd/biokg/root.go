package biokg

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "biokg",
	Short: "Biography knowledge-graph extraction pipeline",
	Long: `biokg generates a synthetic biography corpus with known ground truth,
extracts entities, relations, and Big Five personality estimates from it
using an LLM, assembles the results into a knowledge graph, and scores
the extraction against the ground truth.

Configuration can be provided through a config file, environment
variables, or command-line flags.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./biokg.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the synthetic corpus")
	rootCmd.PersistentFlags().String("output-dir", "", "directory for pipeline artifacts")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("pipeline.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("pipeline.output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
}

// initConfig reads the config file and environment. A missing .env or
// config file is fine; explicit --config paths must exist.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("biokg")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BIOKG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "failed to read config file: %v\n", err)
			os.Exit(1)
		}
	}

	configureLogger()
}

func configureLogger() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)
}

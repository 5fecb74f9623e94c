package main

import (
	"fmt"
	"os"

	"viralreel/engine"
	"viralreel/templates"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var templatesFile string

	rootCmd := &cobra.Command{
		Use:   "viralreel",
		Short: "Generate ready-to-post short-form video packages",
		Long: `viralreel turns a content category into a complete short-form video package:
a timed script, narration, scene directions, an editing plan, word-level subtitles
and a distribution toolkit. Output is deterministic for a category and template bank.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&templatesFile, "templates", os.Getenv("TEMPLATES_FILE"),
		"YAML template bank (defaults to the built-in bank)")

	loadEngine := func() (*engine.Engine, error) {
		bank, err := templates.LoadOrDefault(templatesFile)
		if err != nil {
			return nil, err
		}
		return engine.New(bank)
	}

	rootCmd.AddCommand(newGenerateCmd(loadEngine))
	rootCmd.AddCommand(newBatchCmd(loadEngine))
	rootCmd.AddCommand(newPreviewCmd(loadEngine))
	rootCmd.AddCommand(newTemplatesCmd())
	return rootCmd
}

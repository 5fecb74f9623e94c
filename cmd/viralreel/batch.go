package main

import (
	"fmt"

	"viralreel/batch"
	"viralreel/engine"
	"viralreel/publish"

	"github.com/spf13/cobra"
)

func newBatchCmd(loadEngine func() (*engine.Engine, error)) *cobra.Command {
	cfg := batch.ConfigFromEnv()
	var upload bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate packages for every category in a file",
		Long: `Generate packages for every category listed in a file (one per line, # for comments)
and write <id>.json and <id>.srt into the output directory. With --upload the packages
are also published to the S3 bucket named by S3_BUCKET.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.File == "" {
				return fmt.Errorf("--file is required")
			}
			eng, err := loadEngine()
			if err != nil {
				return err
			}

			var publisher batch.PackagePublisher
			if upload {
				p, err := publish.NewFromEnv(cmd.Context())
				if err != nil {
					return err
				}
				if p == nil {
					return fmt.Errorf("--upload requires S3_BUCKET")
				}
				publisher = p
			}

			summary, err := batch.NewRunner(eng, cfg, publisher).RunFile(cmd.Context(), cfg.File)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range summary.Files {
				fmt.Fprintln(out, f)
			}
			if upload {
				fmt.Fprintf(out, "published %d, skipped %d\n", summary.Published, summary.Skipped)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.File, "file", cfg.File, "Category file, one per line")
	cmd.Flags().StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory")
	cmd.Flags().IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Packages generated in parallel")
	cmd.Flags().BoolVar(&upload, "upload", false, "Publish packages to S3")
	return cmd
}

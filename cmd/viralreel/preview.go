package main

import (
	"fmt"
	"strings"

	"viralreel/engine"
	"viralreel/video"

	"github.com/spf13/cobra"
)

func newPreviewCmd(loadEngine func() (*engine.Engine, error)) *cobra.Command {
	var p video.Preview
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "preview <category>",
		Short: "Burn the package subtitles into a background clip",
		Long: `Render a silent 1080x1920 preview: the background video is looped, center cropped
to 9:16 and overlaid with the word-highlighted ASS subtitles for the category.
Requires ffmpeg on PATH. --dry-run writes the .ass file and prints the ffmpeg command.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			pkg := eng.Generate(strings.Join(args, " "))

			if dryRun {
				ff, err := p.Prepare(pkg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ff.Args, " "))
				return nil
			}

			if err := p.Render(pkg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Output)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.Background, "background", "", "Background video")
	cmd.Flags().StringVarP(&p.Output, "out", "o", "preview.mp4", "Output video")
	cmd.Flags().StringVar(&p.ASSPath, "ass", "", "Where to write the subtitles (default: next to --out)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the ffmpeg command instead of running it")
	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"viralreel/engine"
	"viralreel/render"
	"viralreel/subtitles"
	"viralreel/types"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newGenerateCmd(loadEngine func() (*engine.Engine, error)) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "generate <category>",
		Short: "Generate the package for a category",
		Long: `Generate the package for a category and print it.
Formats: json, yaml, text, ssml (narration only), srt, vtt, ass (subtitles only).
Multiple arguments are joined into one category.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine()
			if err != nil {
				return err
			}

			pkg := eng.Generate(strings.Join(args, " "))
			if err := engine.Validate(pkg); err != nil {
				return fmt.Errorf("generated package failed validation: %w", err)
			}
			return writePackage(cmd.OutOrStdout(), format, pkg)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json|yaml|text|ssml|srt|vtt|ass")
	return cmd
}

func writePackage(w io.Writer, format string, pkg types.Package) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pkg)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pkg); err != nil {
			return err
		}
		return enc.Close()
	case "text", "txt":
		_, err := io.WriteString(w, render.Text(pkg))
		return err
	case "ssml":
		_, err := io.WriteString(w, render.SSML(pkg)+"\n")
		return err
	}

	subFormat, err := subtitles.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("unknown format %q (want json, yaml, text, ssml, srt, vtt or ass)", format)
	}
	return subtitles.Render(w, subFormat, subtitles.Lines(pkg), render.Headline(pkg))
}

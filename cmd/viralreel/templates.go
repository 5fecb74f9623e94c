package main

import (
	"fmt"

	"viralreel/templates"

	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect and export template banks",
	}

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Write the built-in template bank as YAML",
		Long:  "Write the built-in template bank as YAML so it can be edited and loaded with --templates or TEMPLATES_FILE.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := templates.Write(templates.Default(), args[0]); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a YAML template bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := templates.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (version %s, segments %v)\n", args[0], bank.Version, bank.Labels())
			return nil
		},
	}

	cmd.AddCommand(dumpCmd)
	cmd.AddCommand(checkCmd)
	return cmd
}

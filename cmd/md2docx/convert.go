package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgonek/md-docx-converter/converter"
)

func newConvertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <input.md|->",
		Short: "Convert a Markdown file to .docx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			logger, err := cfg.logger()
			if err != nil {
				return err
			}

			md, err := readMarkdown(input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := cfg.forInput(input)
			opts.Logger = logger
			result, err := converter.Convert(cmd.Context(), md, opts)
			if err != nil {
				return err
			}

			target := output
			if target == "" {
				target = defaultOutputPath(input)
			}
			if err := os.WriteFile(target, result.DOCX, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			stderr := cmd.ErrOrStderr()
			for _, warning := range result.Warnings {
				fmt.Fprintf(stderr, "warning: line %d: %s\n", warning.Line, warning.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes, %d warnings)\n", target, len(result.DOCX), len(result.Warnings))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output .docx path (default: input name with .docx)")
	return cmd
}

// defaultOutputPath swaps the input extension for .docx. Stdin input is
// written to document.docx in the working directory.
func defaultOutputPath(input string) string {
	if input == "-" {
		return "document.docx"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".docx"
}

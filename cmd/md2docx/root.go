package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "md2docx",
		Short:         "Convert Markdown documents to Word .docx files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to a YAML config file")
	flags.String("preset", presetDefault, "style preset: default, compact, large")
	flags.String("mode", "", "document mode: document or report")
	flags.String("title", "", "document title stored in the package properties")
	flags.String("author", "", "document author")
	flags.String("code-theme", "", "chroma style for fenced code")
	flags.Duration("image-timeout", 0, "timeout for each image fetch (0 disables)")
	flags.String("log-level", "error", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "console", "log format: console, json, pretty")

	cmd.AddCommand(newConvertCmd(), newStyleCmd(), newNodesCmd())
	return cmd
}

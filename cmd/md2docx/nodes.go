package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/rgonek/md-docx-converter/converter"
	"github.com/rgonek/md-docx-converter/document"
)

type nodesOutput struct {
	Document document.Document  `json:"document"`
	Warnings []document.Warning `json:"warnings,omitempty"`
	Tables   int                `json:"tables"`
}

func newNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes <input.md|->",
		Short: "Print the parsed document nodes as JSON",
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
			conv, err := converter.New(opts)
			if err != nil {
				return err
			}
			parsed, err := conv.Parse(cmd.Context(), md)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(nodesOutput{Document: parsed.Document, Warnings: parsed.Warnings, Tables: parsed.Tables})
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newStyleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Print the resolved style as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Options.Validate(); err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg.Options.Style.WithDefaults())
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Check a gallery config without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("validate", args[0])
			if err != nil {
				root.log.Error(err, "config rejected")
				return err
			}
			components := 0
			for _, page := range cfg.Pages {
				components += len(page.Components)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d pages, %d components\n", args[0], len(cfg.Pages), components)
			return nil
		},
	}
}

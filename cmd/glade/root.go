package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glade/internal/logger"
)

type rootFlags struct {
	logLevel string
	human    bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glade",
		Short:         "Glade renders and previews interactive UI component galleries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: flags.human,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return newCommandError("start", "configuring logging", err, "Use one of trace, debug, info, warn or error for --log-level.")
			}
			flags.log = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", true, "Write human readable logs instead of JSON")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSnapshotCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

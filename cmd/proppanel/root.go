package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "proppanel",
		Short:         "Inspect the property panel the page designer shows for an element",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a proppanel configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newControlsCmd(flags))
	cmd.AddCommand(newClassesCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newPanelCmd(flags))
	cmd.AddCommand(newFormatCmd(flags))
	cmd.AddCommand(newParseCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

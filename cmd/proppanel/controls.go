package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
)

type controlsOptions struct {
	group      string
	jsonOutput bool
}

func newControlsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &controlsOptions{}

	cmd := &cobra.Command{
		Use:   "controls",
		Short: "List the control catalog sorted by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runControls(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.group, "group", "", "Only list controls of this group")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runControls(cmd *cobra.Command, rootFlags *rootFlags, opts *controlsOptions) error {
	app, _, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	defs := app.Controls.Sorted()
	if opts.group != "" {
		group := control.Group(opts.group)
		if !group.Valid() {
			return newCommandError("list controls", "group "+opts.group, fmt.Errorf("unknown group"), fmt.Sprintf("Use one of %v.", control.Groups()))
		}
		defs = app.Controls.ByGroup(group)
		control.SortByPriority(defs)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Count    int                  `json:"count"`
			Controls []control.Definition `json:"controls"`
		}{Count: len(defs), Controls: defs})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TYPE\tLABEL\tGROUP\tPRIORITY\tRESPONSIVE\tHOVER")
	for _, def := range defs {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\t%s\n",
			def.Type, def.Label, def.Group, def.Priority, yesNo(def.Responsive), yesNo(def.Hover))
	}
	return writer.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

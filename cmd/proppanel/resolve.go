package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
)

type resolveOptions struct {
	element    elementOptions
	jsonOutput bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show which controls apply to an element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts)
		},
	}

	opts.element.bind(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions) error {
	app, ctx, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	req, err := opts.element.request(app.Config.Panel.DefaultElement)
	if err != nil {
		return newCommandError("resolve controls", "reading the element", err, "Pass --classes and --tag, or --html with --selector.")
	}

	set := app.Panel.ResolveControls(ctx, req.Classes, req.Tag, req.BlockType)
	types := set.Types()
	if types == nil {
		types = []control.Type{}
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Tag      string         `json:"tag"`
			Classes  []string       `json:"classes"`
			Block    string         `json:"blockType,omitempty"`
			Controls []control.Type `json:"controls"`
		}{Tag: req.Tag, Classes: req.Classes, Block: req.BlockType, Controls: types})
	}

	for _, t := range types {
		fmt.Fprintln(cmd.OutOrStdout(), t)
	}
	return nil
}

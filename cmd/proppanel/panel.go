package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

type panelOptions struct {
	element    elementOptions
	jsonOutput bool
}

func newPanelCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &panelOptions{}

	cmd := &cobra.Command{
		Use:   "panel",
		Short: "Assemble the full property panel for an element",
		Long: `Panel resolves the controls, tabs, defaults and current values the page
designer shows for one element. Describe the element with --classes, --tag and
--style, or point --html and --selector at a saved page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(cmd, rootFlags, opts)
		},
	}

	opts.element.bind(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPanel(cmd *cobra.Command, rootFlags *rootFlags, opts *panelOptions) error {
	app, ctx, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	req, err := opts.element.request(app.Config.Panel.DefaultElement)
	if err != nil {
		return newCommandError("assemble panel", "reading the element", err, "Pass --classes and --tag, or --html with --selector.")
	}

	cfg := app.Panel.BuildConfiguration(ctx, req)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	}

	return renderPanel(cmd.OutOrStdout(), cfg, supportsUnicode(cmd.OutOrStdout()))
}

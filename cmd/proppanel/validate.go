package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
)

type validateOptions struct {
	element    elementOptions
	strict     bool
	jsonOutput bool
}

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an element's current values against its controls",
		Long: `Validate reports color and size values the panel would flag. Problems are
advisory; pass --strict to exit with an error when any are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootFlags, opts)
		},
	}

	opts.element.bind(cmd)
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any value is invalid")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runValidate(cmd *cobra.Command, rootFlags *rootFlags, opts *validateOptions) error {
	app, ctx, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	req, err := opts.element.request(app.Config.Panel.DefaultElement)
	if err != nil {
		return newCommandError("validate values", "reading the element", err, "Pass --classes, --tag and --style, or --html with --selector.")
	}

	cfg := app.Panel.BuildConfiguration(ctx, req)
	problems := app.Panel.ValidateValues(cfg.Values.Flat, cfg.Controls.Definitions())

	types := make([]control.Type, 0, len(problems))
	for t := range problems {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(struct {
			Valid  bool                      `json:"valid"`
			Errors map[control.Type][]string `json:"errors"`
		}{Valid: len(problems) == 0, Errors: problems}); err != nil {
			return err
		}
	} else if len(problems) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All values are valid.")
	} else {
		for _, t := range types {
			for _, msg := range problems[t] {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", t, msg)
			}
		}
	}

	if opts.strict && len(problems) > 0 {
		return newCommandError("validate values", fmt.Sprintf("%d control(s) with invalid values", len(problems)),
			fmt.Errorf("validation failed"), "Fix the reported values or drop --strict.")
	}
	return nil
}

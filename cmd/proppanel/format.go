package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
	"github.com/alexisbeaulieu97/proppanel/internal/cssvalue"
	"github.com/alexisbeaulieu97/proppanel/internal/formatter"
	"github.com/alexisbeaulieu97/proppanel/pkg/diff"
)

type formatOptions struct {
	against    string
	jsonOutput bool
}

func newFormatCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format <control-type> <json-value>",
		Short: "Convert a control value into CSS declarations",
		Example: `  proppanel format box-model '{"margin":{"top":"10px","linked":true}}'
  proppanel format color '"#ff0000"'
  proppanel format typography '{"fontSize":"2rem"}' --against "font-size: 1rem; color: red"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, rootFlags, opts, control.Type(args[0]), args[1])
		},
	}

	cmd.Flags().StringVar(&opts.against, "against", "", "Show the change to this inline style instead of the bare declarations")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runFormat(cmd *cobra.Command, rootFlags *rootFlags, opts *formatOptions, controlType control.Type, raw string) error {
	app, _, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	if !app.Controls.Has(controlType) && !formatter.IsSimpleProperty(controlType) {
		return newCommandError("format value", string(controlType), fmt.Errorf("unknown control type"), "Run 'proppanel controls' to list control types.")
	}

	value, err := cssvalue.Decode([]byte(raw))
	if err != nil {
		return newCommandError("format value", string(controlType), err, "Pass the value as JSON, quoting plain strings.")
	}

	css := app.Panel.FormatToCSS(controlType, value)

	if opts.against != "" {
		return renderStyleDiff(cmd, opts.against, css)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(css)
	}

	fmt.Fprintln(cmd.OutOrStdout(), css.String())
	return nil
}

// renderStyleDiff shows how applying css changes the current inline style.
func renderStyleDiff(cmd *cobra.Command, current string, css cssprop.Properties) error {
	before, err := cssprop.ParseInline(current)
	if err != nil {
		return newCommandError("format value", "parsing --against", err, "Pass declarations as in a style attribute, e.g. \"color: red\".")
	}

	after := cssprop.Properties{}
	after.Merge(before)
	after.Merge(css)

	out := diff.Unified(declarationLines(before), declarationLines(after), "current", "updated")
	if out == "" {
		out = "No changes.\n"
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func declarationLines(props cssprop.Properties) string {
	var b strings.Builder
	for _, name := range props.Names() {
		fmt.Fprintf(&b, "%s: %s;\n", name, props[name])
	}
	return b.String()
}

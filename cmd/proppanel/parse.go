package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/cssprop"
)

func newParseCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parse <control-type> <inline-css>",
		Short:   "Convert CSS declarations into a control value",
		Example: `  proppanel parse typography "font-size: 2rem; text-align: center"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, rootFlags, control.Type(args[0]), args[1])
		},
	}

	return cmd
}

func runParse(cmd *cobra.Command, rootFlags *rootFlags, controlType control.Type, inline string) error {
	app, ctx, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	if !app.Controls.Has(controlType) {
		return newCommandError("parse css", string(controlType), fmt.Errorf("unknown control type"), "Run 'proppanel controls' to list control types.")
	}

	css, err := cssprop.ParseInline(inline)
	if err != nil {
		return newCommandError("parse css", inline, err, "Pass declarations as in a style attribute, e.g. \"color: red\".")
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(app.Panel.ParseCSS(ctx, controlType, css))
}

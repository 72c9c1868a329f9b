package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type classesOptions struct {
	styles     []string
	jsonOutput bool
}

func newClassesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &classesOptions{}

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List mapped CSS classes by group",
		Long: `Classes lists the mapped CSS classes grouped as in the class picker. With
--styles it instead prints the theme styles the given storefront classes
apply together, later classes winning.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.styles, "styles", nil, "Print the merged theme styles of these classes")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runClasses(cmd *cobra.Command, rootFlags *rootFlags, opts *classesOptions) error {
	app, _, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	if len(opts.styles) > 0 {
		return renderThemeStyles(cmd.OutOrStdout(), app.Base.MergedStyles(opts.styles), opts.jsonOutput)
	}

	groups := app.Classes.GroupedClasses()

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(groups)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "GROUP\tCLASS\tCONTROLS\tREADONLY\tDESCRIPTION")
	for _, group := range groups {
		for _, class := range group.Classes {
			fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\n",
				group.Name, class.Name, class.ControlCount, yesNo(class.Readonly), valueOrFallback(class.Description, "-"))
		}
	}
	return writer.Flush()
}

func renderThemeStyles(w io.Writer, styles map[string]string, jsonOutput bool) error {
	if jsonOutput {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(styles)
	}

	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PROPERTY\tVALUE")
	for _, name := range names {
		fmt.Fprintf(writer, "%s\t%s\n", name, styles[name])
	}
	return writer.Flush()
}

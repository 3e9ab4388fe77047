package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"geotjs/internal/domain/tjs10"
)

func newInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect [CLASS]",
		Short: "list model classes or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := tjs10.DefaultFactory().Registry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if len(args) == 0 {
				if asJSON {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(reg.List())
				}
				fmt.Fprintln(w, "ID\tCLASS\tFEATURES")
				for _, def := range reg.List() {
					fmt.Fprintf(w, "%d\t%s\t%d\n", def.ID, def.Name, len(def.Features))
				}
				return w.Flush()
			}

			def, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", tjs10.ErrInvalidClassifier, args[0])
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(def)
			}
			fmt.Fprintln(w, "ID\tFEATURE\tXML\tKIND\tTYPE\tDEFAULT")
			for _, f := range def.Features {
				dflt := ""
				if f.Default != nil {
					dflt = fmt.Sprint(f.Default)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", f.ID, f.Name, f.XMLName, f.Kind, f.Type, dflt)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

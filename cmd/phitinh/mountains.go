package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var mountainsCmd = &cobra.Command{
	Use:   "mountains",
	Short: "List the 24 mountains",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tLABEL\tCENTER\tRANGE\tOCTANT\tYUAN\tPOLARITY")
		for _, m := range newService().Mountains() {
			fmt.Fprintf(tw, "%s\t%s\t%g\t%g-%g\t%s\t%s\t%s\n", m.Key, m.Label, m.Center, m.Start, m.End, m.Octant, m.Yuan, m.Polarity)
		}
		return tw.Flush()
	},
}

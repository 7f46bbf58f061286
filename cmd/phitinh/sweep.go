package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var sweepYear int

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Summarise the chart on every mountain's centre line",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, st, err := newService().Sweep(cmd.Context(), sweepYear)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MOUNTAIN\tCENTER\tSITTING\tSON\tHUONG\tGATE")
		for _, e := range entries {
			gate := "-"
			if e.Gate != nil {
				gate = fmt.Sprintf("%s (%s)", e.Gate.Palace, e.Gate.Kind)
			}
			fmt.Fprintf(tw, "%s\t%g\t%s\t%d\t%d\t%s\n", e.Label, e.Center, e.Sitting, e.SittingStar, e.FacingStar, gate)
		}
		log.Debug("sweep done", "charts", st.Charts, "dur", st.Duration)
		return tw.Flush()
	},
}

func init() {
	sweepCmd.Flags().IntVar(&sweepYear, "year", time.Now().Year(), "construction year")
}

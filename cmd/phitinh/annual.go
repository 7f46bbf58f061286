package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var annualYear int

var annualCmd = &cobra.Command{
	Use:   "annual [direction]",
	Short: "Show the annual star and advice for a direction (bac, dong-bac, ...)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rd, err := newService().Annual(cmd.Context(), annualYear, args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Vận %d, sao năm %d\n%s\n%s\n",
			rd.Period, rd.AnnualStar, rd.DirectionAdvice, rd.StarMeaning)
		return err
	},
}

func init() {
	annualCmd.Flags().IntVar(&annualYear, "year", time.Now().Year(), "year")
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/render"
)

var (
	chartYear     int
	chartFacing   float64
	chartMountain string
	chartJSON     bool
	chartSave     string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw the flying star chart for a year and facing",
	Long: `Draws the chart for a building built in --year facing --facing degrees
(or the centre line of --mountain, e.g. "Tý" or "ty").

Example:
  phitinh chart --year 2024 --facing 187.5
  phitinh chart --year 1984 --mountain Ngọ --json`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().IntVar(&chartYear, "year", time.Now().Year(), "construction year")
	chartCmd.Flags().Float64Var(&chartFacing, "facing", 0, "facing angle in degrees")
	chartCmd.Flags().StringVar(&chartMountain, "mountain", "", "facing mountain name instead of degrees")
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "print JSON instead of boxes")
	chartCmd.Flags().StringVar(&chartSave, "save", "", "also save the chart under this name")
}

func runChart(cmd *cobra.Command, args []string) error {
	if math.IsNaN(chartFacing) || math.IsInf(chartFacing, 0) {
		return fmt.Errorf("--facing must be a finite angle, got %v", chartFacing)
	}
	ctx := cmd.Context()
	uc := newService()

	var (
		res *domain.BoardResult
		err error
	)
	facing := chartFacing
	if chartMountain != "" {
		if cmd.Flags().Changed("facing") {
			return errors.New("use either --facing or --mountain")
		}
		res, _, err = uc.ChartByMountain(ctx, chartYear, chartMountain)
		if err == nil {
			facing = res.Facing.Degrees
		}
	} else {
		res, _, err = uc.Chart(ctx, chartYear, chartFacing)
	}
	if err != nil {
		return err
	}

	if chartSave != "" {
		st, closer, err := openStorage(ctx, cfg)
		if err != nil {
			return err
		}
		defer closer.Close()
		uc.Storage = st
		c := &domain.Chart{Name: chartSave, Year: chartYear, Facing: facing}
		if err := uc.Save(ctx, c); err != nil {
			return fmt.Errorf("save chart: %w", err)
		}
		log.Info("chart saved", "id", c.ID, "name", c.Name)
	}

	out := cmd.OutOrStdout()
	if chartJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = fmt.Fprint(out, render.Chart(*res))
	return err
}

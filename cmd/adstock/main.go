package main

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/adstock"
	"github.com/ZanzyTHEbar/adstock/internal/fixture"
)

var (
	dataPath string
	outPath  string
	halflife float64
	rounding int
)

var rootCmd = &cobra.Command{
	Use:   "adstock",
	Short: "Apply exponential carryover decay to a weekly channel series",
	Long: `adstock reads a two-column CSV of weekly observations and carries each
week's value forward with geometric decay at the requested half-life. The
transformed series is written as CSV to stdout, or to a file with --out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAdstock,
}

func init() {
	rootCmd.Flags().StringVar(&dataPath, "data", getEnvOrDefault("ADSTOCK_DATA", filepath.Join("data", "raw", "raw_data.csv")), "Path to the raw series CSV")
	rootCmd.Flags().StringVar(&outPath, "out", "", "Write the adstocked series to this path instead of stdout")
	rootCmd.Flags().Float64Var(&halflife, "halflife", 2.5, "Periods until carryover halves")
	rootCmd.Flags().IntVar(&rounding, "rounding", adstock.DefaultRounding, "Decimal places kept in the output")
}

func main() {
	// Structured logging setup; the series itself owns stdout
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Adstock run failed", "error", err)
		os.Exit(1)
	}
}

func runAdstock(cmd *cobra.Command, args []string) error {
	series, err := fixture.Load(dataPath)
	if err != nil {
		return err
	}

	slog.Info("Loaded series",
		"path", dataPath,
		"column", series.ValueColumn,
		"rows", series.Len())

	result, err := adstock.ApplyHalflifeRounded(series.Values, halflife, rounding)
	if err != nil {
		return err
	}

	adstocked := &fixture.Series{
		PeriodColumn: series.PeriodColumn,
		ValueColumn:  series.ValueColumn + "_adstocked",
		Periods:      series.Periods,
		Values:       make([]float64, len(result)),
	}
	for i, v := range result {
		adstocked.Values[i] = float64(v)
	}

	if outPath != "" {
		if err := fixture.Write(outPath, adstocked, rounding); err != nil {
			return err
		}
		slog.Info("Wrote adstocked series", "path", outPath, "rows", adstocked.Len())
		return nil
	}

	return printSeries(adstocked)
}

func printSeries(s *fixture.Series) error {
	writer := csv.NewWriter(os.Stdout)
	if err := writer.Write([]string{s.PeriodColumn, s.ValueColumn}); err != nil {
		return err
	}

	for i, period := range s.Periods {
		record := []string{
			period.Format(fixture.DateLayout),
			strconv.FormatFloat(s.Values[i], 'f', rounding, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

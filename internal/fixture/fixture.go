package fixture

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DateLayout is the period format used by series fixtures.
const DateLayout = "2006-01-02"

// Series is one named weekly metric keyed by period start date.
type Series struct {
	PeriodColumn string
	ValueColumn  string
	Periods      []time.Time
	Values       []float64
}

// Len returns the number of observations in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Load reads a two-column CSV fixture: a header row naming the period and
// value columns, then one row per period. Periods must parse as DateLayout
// dates and arrive in strictly ascending order.
func Load(path string) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open series file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read series header: %w", err)
	}

	series := &Series{
		PeriodColumn: header[0],
		ValueColumn:  header[1],
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read series row: %w", err)
		}

		period, err := time.Parse(DateLayout, record[0])
		if err != nil {
			return nil, fmt.Errorf("failed to parse period %q: %w", record[0], err)
		}

		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for period %s: %w", record[1], record[0], err)
		}

		if n := len(series.Periods); n > 0 && !period.After(series.Periods[n-1]) {
			return nil, fmt.Errorf("series periods out of order: %s does not follow %s",
				record[0], series.Periods[n-1].Format(DateLayout))
		}

		series.Periods = append(series.Periods, period)
		series.Values = append(series.Values, value)
	}

	return series, nil
}

// Write stores the series as a two-column CSV, values formatted with the
// given number of decimal places. Parent directories are created as needed.
func Write(path string, s *Series, decimals int) error {
	if len(s.Periods) != len(s.Values) {
		return fmt.Errorf("series has %d periods but %d values", len(s.Periods), len(s.Values))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create series directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create series file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{s.PeriodColumn, s.ValueColumn}); err != nil {
		return fmt.Errorf("failed to write series header: %w", err)
	}

	for i, period := range s.Periods {
		record := []string{
			period.Format(DateLayout),
			strconv.FormatFloat(s.Values[i], 'f', decimals, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write series row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush series file: %w", err)
	}

	return nil
}

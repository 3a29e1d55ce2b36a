package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/schema"
)

// metricDefinition describes one chartable metric for the static help display.
type metricDefinition struct {
	Name     schema.MetricKind `json:"name"`
	Column   schema.Column     `json:"column"`
	Purpose  string            `json:"purpose"`
	Derived  bool              `json:"derived"`
	Formula  string            `json:"formula,omitempty"`
	NeedsCol string            `json:"requires_column,omitempty"`
}

// metricDefinitions lists every chartable metric in presentation order.
func metricDefinitions() []metricDefinition {
	return []metricDefinition{
		{
			Name:    schema.WeightMetric,
			Column:  schema.ColumnWeight,
			Purpose: "Hive gross weight in kilograms, as read from the scale",
		},
		{
			Name:     schema.WeightDeltaMetric,
			Column:   schema.ColumnWeight,
			Purpose:  "Day-over-day weight change per colony",
			Derived:  true,
			Formula:  "weight[i] - weight[i-1], first observation per colony has no value",
			NeedsCol: string(schema.ColumnWeight),
		},
		{
			Name:     schema.MiteRateMetric,
			Column:   schema.ColumnMiteRate,
			Purpose:  "Varroa mite fall per day over the counting period",
			Derived:  true,
			Formula:  "mite_count / max(mite_days, 1)",
			NeedsCol: string(schema.ColumnMiteCount),
		},
		{
			Name:    schema.StrengthMetric,
			Column:  schema.ColumnStrength,
			Purpose: "Colony strength rating, shifted up by one for display (weak=2, normal=3, strong=4)",
		},
	}
}

// WriteMetricDefinitions displays the definitions of all chartable metrics.
// This is a static display that does not require a data file.
func WriteMetricDefinitions(cfg *contract.Config) error {
	defs := metricDefinitions()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsCSV(w, defs)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsText(w, defs)
		}, "Wrote text")
	}
}

// printMetricsText displays metrics in human-readable text format.
func printMetricsText(w io.Writer, defs []metricDefinition) error {
	if _, err := fmt.Fprintf(w, "🐝 Hivetrend Metrics\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "====================\n\n"); err != nil {
		return err
	}

	for _, def := range defs {
		if _, err := fmt.Fprintf(w, "%s: %s\n", def.Name, def.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Column: %s\n", def.Column); err != nil {
			return err
		}
		if def.Derived {
			if _, err := fmt.Fprintf(w, "   Formula: %s\n", def.Formula); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "   Requires: %s column in the input\n", def.NeedsCol); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Zero-fill replaces missing values with 0; otherwise rows without the\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "active metric are dropped from the chart.\n"); err != nil {
		return err
	}
	return nil
}

// printMetricsCSV displays metrics in CSV format.
func printMetricsCSV(w io.Writer, defs []metricDefinition) error {
	header := []string{"name", "column", "purpose", "derived", "formula"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, def := range defs {
			derivedStr := "false"
			if def.Derived {
				derivedStr = "true"
			}
			row := []string{
				string(def.Name),
				string(def.Column),
				def.Purpose,
				derivedStr,
				def.Formula,
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

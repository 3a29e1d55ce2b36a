package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteProjection outputs the projected metric rows, dispatching based on
// the output format configured.
func WriteProjection(proj *schema.Projection, report *schema.LoadReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForChart(proj, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForChart(proj, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printChartTable(proj, report, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing chart table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForChart handles opening the file and calling the JSON writer.
func printJSONResultsForChart(proj *schema.Projection, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForChart(w, proj)
	}, "Wrote JSON chart results")
}

// printCSVResultsForChart handles opening the file and calling the CSV writer.
func printCSVResultsForChart(proj *schema.Projection, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForChart(csvWriter, proj, fmtFloat)
	}, "Wrote CSV chart results")
}

// printChartTable prints the projection as a table. The first column is
// the calendar date, or the ordinal position when the timeline is
// compressed. Weight rows carry an extra feed status column.
func printChartTable(proj *schema.Projection, report *schema.LoadReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if proj.Empty() {
		fmt.Println("No observations for the current selection and time range.")
		printMissingColonies(proj.Missing)
		return nil
	}

	// Use os.Stdout, consistent with existing table printing
	table := tablewriter.NewWriter(os.Stdout)

	// --- 1. Define Headers ---
	dateHeader := "Date"
	if proj.Compressed {
		dateHeader = "#"
	}
	headers := []string{dateHeader, "Colony", string(proj.Metric)}
	showStatus := proj.Metric == schema.WeightMetric
	if showStatus {
		headers = append(headers, "Status")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	maxLabel := GetMaxTableLabelWidth(cfg)
	var data [][]string
	for _, r := range proj.Rows {
		dateCell := r.Date.Format(contract.DateFormat)
		if proj.Compressed {
			dateCell = fmt.Sprintf("%d", r.Ordinal)
		}
		row := []string{
			dateCell,
			contract.TruncateLabel(r.Colony, maxLabel),
			fmtFloat(r.Value),
		}
		if showStatus {
			row = append(row, feedStatusCell(r.Value, cfg.UseColor))
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	printMissingColonies(proj.Missing)
	fmt.Printf("Chart of %s for %s completed in %v. Source: %s\n",
		proj.Metric, schema.FormatColonies(proj.Colonies), duration, report.Source)
	return nil
}

// feedStatusCell renders the feed status for a weight value, with or
// without color depending on the configuration.
func feedStatusCell(weightKg float64, useColor bool) string {
	if useColor {
		return contract.GetFeedColorLabel(&weightKg)
	}
	return contract.GetFeedLabel(&weightKg)
}

// printMissingColonies warns about selected colonies that had no rows in
// the projected range.
func printMissingColonies(missing []string) {
	for _, name := range missing {
		fmt.Println(contract.WarnColor.Sprintf("No data in range for colony %q", name))
	}
}

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

// WriteColonySummaries outputs the per-colony status report, dispatching
// based on the output format configured.
func WriteColonySummaries(summaries []schema.ColonySummary, report *schema.LoadReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForColonies(summaries, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForColonies(summaries, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printColoniesTable(summaries, report, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing colonies table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForColonies handles opening the file and calling the JSON writer.
func printJSONResultsForColonies(summaries []schema.ColonySummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForColonies(w, summaries)
	}, "Wrote JSON colony report")
}

// printCSVResultsForColonies handles opening the file and calling the CSV writer.
func printCSVResultsForColonies(summaries []schema.ColonySummary, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForColonies(csvWriter, summaries, fmtFloat)
	}, "Wrote CSV colony report")
}

// printColoniesTable prints the colony status report as a table.
func printColoniesTable(summaries []schema.ColonySummary, report *schema.LoadReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if len(summaries) == 0 {
		fmt.Println("No colonies in the dataset.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Colony", "Entries", "First", "Last", "Weight", "Feed", "Strength"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := GetMaxTableLabelWidth(cfg)
	var data [][]string
	for _, s := range summaries {
		weightStr := contract.NoReading
		if s.LatestWeight != nil {
			weightStr = fmtFloat(*s.LatestWeight)
		}
		feedStr := contract.GetFeedLabel(s.LatestWeight)
		if cfg.UseColor {
			feedStr = contract.GetFeedColorLabel(s.LatestWeight)
		}
		row := []string{
			contract.TruncateLabel(s.Colony, maxLabel),
			fmt.Sprintf("%d", s.Entries),
			s.FirstDate.Format(contract.DateFormat),
			s.LastDate.Format(contract.DateFormat),
			weightStr,
			feedStr,
			strengthLabel(s.LatestStrength),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Colony report for %d colonies completed in %v. Source: %s\n",
		len(summaries), duration, report.Source)
	return nil
}

// strengthLabel maps a stored strength rating back to its input wording.
func strengthLabel(rating *float64) string {
	if rating == nil {
		return contract.NoReading
	}
	switch int(*rating) {
	case schema.StrengthWeak:
		return "weak"
	case schema.StrengthNormal:
		return "normal"
	case schema.StrengthStrong:
		return "strong"
	default:
		return contract.NoReading
	}
}

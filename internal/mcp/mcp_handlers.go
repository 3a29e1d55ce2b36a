package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/apiarylab/hivetrend/core"
	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/apiarylab/hivetrend/internal/parquet"
	"github.com/apiarylab/hivetrend/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.SnapshotManager
}

func (h *toolHandler) handleListColonies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("data_file", ""); f != "" {
		cfg.DataFile = f
	}

	summaries, _, err := core.GetColonySummaries(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleChartMetric(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("data_file", ""); f != "" {
		cfg.DataFile = f
	}
	if c := request.GetString("colonies", ""); c != "" {
		cfg.Colonies = cfg.Colonies[:0]
		for part := range strings.SplitSeq(c, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				cfg.Colonies = append(cfg.Colonies, trimmed)
			}
		}
	}
	if m := request.GetString("metric", ""); m != "" {
		metric := schema.MetricKind(strings.ToLower(m))
		if _, ok := schema.ValidMetricKinds[metric]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid metric %q", m)), nil
		}
		cfg.Metric = metric
	}
	if r := request.GetString("range", ""); r != "" {
		// Unknown tokens fall back to the first standard option at
		// resolution time, so no validation happens here.
		cfg.TimeRange = schema.RangeToken(strings.TrimSpace(r))
	}
	cfg.ZeroFill = request.GetBool("zero_fill", cfg.ZeroFill)
	cfg.CompressTimeline = request.GetBool("compress_timeline", cfg.CompressTimeline)

	proj, _, err := core.GetChartProjection(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("projection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(proj, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// datasetStatus is the response shape for the dataset_status tool.
type datasetStatus struct {
	Report   schema.LoadReport        `json:"report"`
	Columns  map[schema.Column]string `json:"columns"`
	Colonies []string                 `json:"colonies"`
	Years    []int                    `json:"years"`
}

func (h *toolHandler) handleDatasetStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("data_file", ""); f != "" {
		cfg.DataFile = f
	}

	ds, report, err := core.LoadDatasetFromFile(cfg.DataFile, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	colonies := ds.Colonies()
	schema.SortNatural(colonies)
	status := datasetStatus{
		Report:   *report,
		Columns:  ds.Columns,
		Colonies: colonies,
		Years:    ds.Years(),
	}

	jsonData, _ := json.MarshalIndent(status, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleExportDataset(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("data_file", ""); f != "" {
		cfg.DataFile = f
	}
	format := strings.ToLower(request.GetString("format", "csv"))

	ds, _, err := core.LoadDatasetFromFile(cfg.DataFile, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	outputFile := request.GetString("output_file", "")
	switch format {
	case "parquet":
		if outputFile == "" {
			outputFile = core.ExportFileName(time.Now()) + ".parquet"
		}
		records := parquet.ConvertEntries(0, ds.Entries)
		if err := parquet.WriteEntriesParquet(records, outputFile); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
		}
	case "csv":
		if outputFile == "" {
			outputFile = core.ExportFileName(time.Now())
		}
		file, err := contract.SelectOutputFile(outputFile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
		}
		defer func() { _ = file.Close() }()
		if err := core.WriteCanonicalCSV(file, ds); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid format %q", format)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("exported %d rows to %s", len(ds.Entries), outputFile)), nil
}

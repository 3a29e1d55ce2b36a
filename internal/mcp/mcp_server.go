// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/apiarylab/hivetrend/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Hivetrend MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.SnapshotManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Hivetrend Inspection Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: list_colonies ---
	s.AddTool(mcp.NewTool("list_colonies",
		mcp.WithDescription("List all colonies in the inspection export with their latest weight, feed status and strength."),
		mcp.WithString("data_file", mcp.Description("Path to the inspection CSV export (defaults to the configured data file).")),
	), h.handleListColonies)

	// --- 2. Tool: chart_metric ---
	s.AddTool(mcp.NewTool("chart_metric",
		mcp.WithDescription("Project a metric over time for selected colonies."),
		mcp.WithString("data_file", mcp.Description("Path to the inspection CSV export.")),
		mcp.WithString("colonies", mcp.Description("Comma-separated colony names (defaults to the first colony).")),
		mcp.WithString("metric", mcp.Description("Metric to chart (weight, weight-delta, mite-rate, strength). Defaults to 'weight'."), mcp.Enum("weight", "weight-delta", "mite-rate", "strength")),
		mcp.WithString("range", mcp.Description("Time range token: '7 days', '1 month', '6 months', 'all', or a 4-digit year.")),
		mcp.WithBoolean("zero_fill", mcp.Description("Replace missing metric values with 0 instead of dropping rows.")),
		mcp.WithBoolean("compress_timeline", mcp.Description("Replace the calendar axis with an ordinal axis over observed dates.")),
	), h.handleChartMetric)

	// --- 3. Tool: dataset_status ---
	s.AddTool(mcp.NewTool("dataset_status",
		mcp.WithDescription("Report how an inspection export decodes: delimiter, encoding, resolved columns, kept and dropped rows."),
		mcp.WithString("data_file", mcp.Description("Path to the inspection CSV export.")),
	), h.handleDatasetStatus)

	// --- 4. Tool: export_dataset ---
	s.AddTool(mcp.NewTool("export_dataset",
		mcp.WithDescription("Export the canonical dataset to a semicolon-delimited latin-1 CSV or a Parquet file."),
		mcp.WithString("data_file", mcp.Description("Path to the inspection CSV export.")),
		mcp.WithString("output_file", mcp.Description("Path to write the export to (defaults to a date-stamped file name).")),
		mcp.WithString("format", mcp.Description("Export format (csv or parquet). Defaults to 'csv'."), mcp.Enum("csv", "parquet")),
	), h.handleExportDataset)

	return s
}

// StartMCPServer starts the Hivetrend MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.SnapshotManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

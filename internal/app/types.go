package app

import "platform-tools/internal/types"

type ReportRequest struct {
	TargetsPath   string
	WorkspaceRoot string
	ReportPath    string
}

type ReportResult struct {
	Targets       []string
	Projects      []types.WorkspaceProject
	DirectMatches []types.DirectMatch
	RowsAppended  int
	ReportPath    string
}

type FetchLayerRequest struct {
	Region    string
	Runtime   string
	OutputDir string
}

type FetchLayerResult struct {
	Version    int64
	VersionARN string
	OutputDir  string
}

type InventoryRequest struct {
	Region    string
	Profile   string
	OutputDir string
	TagKeys   []string
}

type InventoryResult struct {
	Summary types.InventorySummary
	Reports types.InventoryReportSet
}

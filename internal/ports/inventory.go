package ports

import (
	"context"

	"platform-tools/internal/types"
)

// ResourceScannerPort inventories one cloud service. Scanners log and
// skip resources they cannot describe; a returned error means the
// whole service listing failed.
type ResourceScannerPort interface {
	Service() string
	Scan(ctx context.Context) ([]types.Resource, error)
}

// ScannerSourcePort connects to the cloud account and hands back one
// scanner per supported service.
type ScannerSourcePort interface {
	Connect(ctx context.Context, region string, profile string, tagKeys []string) ([]ResourceScannerPort, error)
}

// InventoryOutputPort writes the report set for one inventory run.
// Each writer returns the path it produced.
type InventoryOutputPort interface {
	WriteJSON(grouped map[string][]types.Resource) (string, error)
	WriteCSV(grouped map[string][]types.Resource) (string, error)
	WriteSummary(summary types.InventorySummary) (string, error)
}

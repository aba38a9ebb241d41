package app

import (
	"time"

	"platform-tools/internal/adapters"
	"platform-tools/internal/ports"
)

type Service struct {
	TargetList    ports.TargetListPort
	Workspace     ports.WorkspacePort
	Manifests     ports.ManifestPort
	UsageQuery    ports.UsageQueryPort
	LayerRegistry ports.LayerRegistryPort
	Archive       ports.ArchiveFetcherPort
	Scanners      ports.ScannerSourcePort
	Clock         func() time.Time
}

func NewService() Service {
	return Service{
		TargetList:    adapters.NewTargetListAdapter(),
		Workspace:     adapters.NewWorkspaceAdapter(),
		Manifests:     adapters.NewManifestScanAdapter(),
		UsageQuery:    adapters.NewPnpmWhyAdapter(),
		LayerRegistry: adapters.NewLayerRegistryAWSAdapter(""),
		Archive:       adapters.NewArchiveHTTPAdapter(),
		Scanners:      adapters.NewAWSScannerSource(),
		Clock:         time.Now,
	}
}

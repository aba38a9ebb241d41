package ports

import (
	"context"

	"platform-tools/internal/types"
)

// LayerRegistryPort resolves published layer versions and their
// download locations from the function service's control plane.
type LayerRegistryPort interface {
	LatestVersion(ctx context.Context, ref types.LayerRef) (types.LayerVersion, error)
	DownloadLocation(ctx context.Context, ref types.LayerRef, versionARN string) (string, error)
}

// ArchiveFetcherPort downloads and unpacks layer archives.
type ArchiveFetcherPort interface {
	Fetch(ctx context.Context, url string, destPath string) error
	Unpack(archivePath string, destDir string) error
}

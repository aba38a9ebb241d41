package adapters

import (
	"os"

	"github.com/rs/zerolog/log"

	"platform-tools/internal/core"
	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

type ManifestScanAdapter struct{}

func NewManifestScanAdapter() ManifestScanAdapter {
	return ManifestScanAdapter{}
}

// FindDeclarations reports every direct declaration of the target
// across the given manifests. Unreadable manifests are skipped so one
// broken file does not abort the whole report.
func (a ManifestScanAdapter) FindDeclarations(paths []string, target string) ([]types.DirectMatch, error) {
	var matches []types.DirectMatch
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("skipping unreadable manifest")
			continue
		}
		matches = append(matches, core.FindDeclarations(path, data, target)...)
	}
	return matches, nil
}

var _ ports.ManifestPort = ManifestScanAdapter{}

package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"platform-tools/internal/adapters"
	"platform-tools/internal/core"
	"platform-tools/internal/types"
)

// FetchLayer resolves the newest published vendor layer for a runtime
// and downloads it into the output directory. The pipeline is strictly
// linear and fails fast; only the bookkeeping cleanup at the end is
// best effort.
func (s Service) FetchLayer(ctx context.Context, req FetchLayerRequest) (FetchLayerResult, error) {
	ref := types.LayerRef{
		Region:  strings.TrimSpace(req.Region),
		Runtime: strings.TrimSpace(req.Runtime),
	}
	if err := core.ValidateLayerRef(ctx, ref); err != nil {
		return FetchLayerResult{}, err
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return FetchLayerResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	// Resolve before touching the filesystem so a failed lookup
	// leaves no output directory behind.
	latest, err := s.LayerRegistry.LatestVersion(ctx, ref)
	if err != nil {
		return FetchLayerResult{}, err
	}
	log.Debug().Int64("version", latest.Version).Str("arn", latest.ARN).Msg("resolved latest layer version")

	dir := adapters.NewLayerDirAdapter(outputDir)
	if err := dir.WriteVersionFile(latest.Version); err != nil {
		return FetchLayerResult{}, err
	}
	location, err := s.LayerRegistry.DownloadLocation(ctx, ref, latest.ARN)
	if err != nil {
		return FetchLayerResult{}, err
	}
	if err := dir.WriteLocationFile(location); err != nil {
		return FetchLayerResult{}, err
	}
	if err := s.Archive.Fetch(ctx, location, dir.ArchivePath()); err != nil {
		return FetchLayerResult{}, err
	}
	if err := s.Archive.Unpack(dir.ArchivePath(), outputDir); err != nil {
		return FetchLayerResult{}, err
	}
	dir.RemoveBookkeeping()

	return FetchLayerResult{
		Version:    latest.Version,
		VersionARN: core.LayerVersionARN(ref, latest.Version),
		OutputDir:  outputDir,
	}, nil
}

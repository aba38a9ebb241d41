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

// Inventory scans the region's resources service by service,
// attributes each resource to an application by its tags, and writes
// the JSON, CSV and summary reports. A failing service is logged and
// skipped; the reports cover whatever was collected.
func (s Service) Inventory(ctx context.Context, req InventoryRequest) (InventoryResult, error) {
	region := strings.TrimSpace(req.Region)
	if region == "" {
		return InventoryResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("region is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		outputDir = "."
	}

	scanners, err := s.Scanners.Connect(ctx, region, strings.TrimSpace(req.Profile), req.TagKeys)
	if err != nil {
		return InventoryResult{}, err
	}

	log.Info().Str("region", region).Msg("starting resource inventory")
	var resources []types.Resource
	for _, scanner := range scanners {
		log.Info().Str("service", scanner.Service()).Msg("inventorying service")
		found, err := scanner.Scan(ctx)
		if err != nil {
			log.Error().Str("service", scanner.Service()).Err(err).Msg("service inventory failed")
			continue
		}
		resources = append(resources, found...)
	}
	log.Info().Int("resources", len(resources)).Msg("inventory complete")

	grouped := core.GroupByApp(resources)
	summary := core.SummarizeInventory(grouped)

	output := adapters.NewInventoryReportAdapter(outputDir, s.Clock())
	jsonPath, err := output.WriteJSON(grouped)
	if err != nil {
		return InventoryResult{}, err
	}
	csvPath, err := output.WriteCSV(grouped)
	if err != nil {
		return InventoryResult{}, err
	}
	summaryPath, err := output.WriteSummary(summary)
	if err != nil {
		return InventoryResult{}, err
	}
	return InventoryResult{
		Summary: summary,
		Reports: types.InventoryReportSet{
			JSONPath:    jsonPath,
			CSVPath:     csvPath,
			SummaryPath: summaryPath,
		},
	}, nil
}

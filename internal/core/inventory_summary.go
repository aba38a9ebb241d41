package core

import (
	"sort"

	"platform-tools/internal/types"
)

// GroupByApp indexes resources by their attributed application.
func GroupByApp(resources []types.Resource) map[string][]types.Resource {
	grouped := map[string][]types.Resource{}
	for _, resource := range resources {
		grouped[resource.App] = append(grouped[resource.App], resource)
	}
	return grouped
}

// SummarizeInventory aggregates grouped resources into per-app and
// per-service counts. Apps and services are sorted by name so report
// output is stable across runs.
func SummarizeInventory(grouped map[string][]types.Resource) types.InventorySummary {
	var summary types.InventorySummary
	apps := make([]string, 0, len(grouped))
	for app := range grouped {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	for _, app := range apps {
		resources := grouped[app]
		counts := map[string]int{}
		for _, resource := range resources {
			counts[resource.Service]++
		}
		services := make([]string, 0, len(counts))
		for service := range counts {
			services = append(services, service)
		}
		sort.Strings(services)
		appSummary := types.AppSummary{App: app, Total: len(resources)}
		for _, service := range services {
			appSummary.Services = append(appSummary.Services, types.AppServiceCount{
				Service: service,
				Count:   counts[service],
			})
		}
		summary.Apps = append(summary.Apps, appSummary)
		summary.Total += len(resources)
	}
	return summary
}

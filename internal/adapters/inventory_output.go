package adapters

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

var inventoryCSVHeader = []string{"App Name", "Service", "Resource Type", "Resource Name", "ARN", "Additional Info"}

// InventoryReportAdapter writes the report files for one inventory
// run. All three files share the run's timestamp so they sort
// together in the output directory.
type InventoryReportAdapter struct {
	Dir   string
	stamp string
}

func NewInventoryReportAdapter(dir string, now time.Time) InventoryReportAdapter {
	return InventoryReportAdapter{Dir: dir, stamp: now.Format("20060102_150405")}
}

func (a InventoryReportAdapter) WriteJSON(grouped map[string][]types.Resource) (string, error) {
	path, err := a.ensurePath(fmt.Sprintf("aws_inventory_%s.json", a.stamp))
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(grouped, "", "  ")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode inventory").
			WithCause(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write json report").
			WithCause(err)
	}
	log.Debug().Str("path", path).Msg("wrote json report")
	return path, nil
}

// WriteCSV flattens the grouped inventory into one row per resource.
// The per-resource details travel in the last column as a JSON
// object so the fixed header works for every service.
func (a InventoryReportAdapter) WriteCSV(grouped map[string][]types.Resource) (string, error) {
	path, err := a.ensurePath(fmt.Sprintf("aws_inventory_%s.csv", a.stamp))
	if err != nil {
		return "", err
	}
	file, err := os.Create(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create csv report").
			WithCause(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(inventoryCSVHeader); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write csv report").
			WithCause(err)
	}
	apps := make([]string, 0, len(grouped))
	for app := range grouped {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	for _, app := range apps {
		for _, resource := range grouped[app] {
			info, err := additionalInfo(resource)
			if err != nil {
				return "", err
			}
			row := []string{app, resource.Service, resource.Type, resource.Name, resource.ARN, info}
			if err := writer.Write(row); err != nil {
				return "", errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to write csv report").
					WithCause(err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write csv report").
			WithCause(err)
	}
	log.Debug().Str("path", path).Msg("wrote csv report")
	return path, nil
}

func (a InventoryReportAdapter) WriteSummary(summary types.InventorySummary) (string, error) {
	path, err := a.ensurePath(fmt.Sprintf("aws_inventory_summary_%s.txt", a.stamp))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("AWS Resource Inventory Summary\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	for _, app := range summary.Apps {
		fmt.Fprintf(&b, "Application: %s\n", app.App)
		b.WriteString(strings.Repeat("-", 30) + "\n")
		for _, service := range app.Services {
			fmt.Fprintf(&b, "  %s: %d resources\n", service.Service, service.Count)
		}
		fmt.Fprintf(&b, "  Total: %d resources\n\n", app.Total)
	}
	fmt.Fprintf(&b, "OVERALL TOTAL: %d resources across %d applications\n", summary.Total, len(summary.Apps))

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write summary report").
			WithCause(err)
	}
	log.Debug().Str("path", path).Msg("wrote summary report")
	return path, nil
}

func (a InventoryReportAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

// additionalInfo serializes everything that has no column of its own.
func additionalInfo(resource types.Resource) (string, error) {
	details := resource.Details
	if details == nil {
		details = map[string]any{}
	}
	data, err := json.Marshal(details)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode resource details").
			WithCause(err)
	}
	return string(data), nil
}

var _ ports.InventoryOutputPort = InventoryReportAdapter{}

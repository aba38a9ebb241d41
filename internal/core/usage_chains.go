package core

import (
	"strings"
	"unicode"

	"platform-tools/internal/types"
)

// ParseUsageChains turns the raw output of a recursive pnpm why query
// into report rows. The output interleaves project boundary lines with
// dependency chain lines:
//
//	checkout-web@1.4.0 /repo/apps/checkout-web (PRIVATE)
//
//	dependencies:
//	lodash 4.17.21
//
// A boundary line names a workspace project together with the absolute
// path it lives at. Every following non-blank line belongs to that
// project until the next boundary. Lines before the first boundary are
// preamble and are dropped.
func ParseUsageChains(target string, output string) []types.ReportRow {
	var rows []types.ReportRow
	workspace := ""
	for _, raw := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if trimmed == "" {
			continue
		}
		if name, ok := projectBoundary(trimmed); ok {
			workspace = name
			continue
		}
		if workspace == "" {
			continue
		}
		rows = append(rows, types.ReportRow{Target: target, Workspace: workspace, Reason: trimmed})
	}
	return rows
}

// projectBoundary reports whether a line is a project header of the
// form "name@version /absolute/path ..." and returns the project name.
func projectBoundary(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || !strings.HasPrefix(fields[1], "/") {
		return "", false
	}
	return projectName(fields[0])
}

// projectName splits "name@version" at the rightmost separator so
// scoped names like "@acme/ui@2.0.1" keep their scope prefix.
func projectName(field string) (string, bool) {
	idx := strings.LastIndex(field, "@")
	if idx <= 0 || idx == len(field)-1 {
		return "", false
	}
	version := field[idx+1:]
	if !unicode.IsDigit(rune(version[0])) {
		return "", false
	}
	return field[:idx], true
}

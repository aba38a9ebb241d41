package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"platform-tools/internal/adapters"
	"platform-tools/internal/core"
)

// Report traces every target package through the workspace: direct
// manifest declarations are collected for stdout, transitive usage
// chains are appended to the CSV report. Targets without usable query
// output contribute nothing; the batch never stops for one target.
func (s Service) Report(ctx context.Context, req ReportRequest) (ReportResult, error) {
	targetsPath := strings.TrimSpace(req.TargetsPath)
	if targetsPath == "" {
		return ReportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target list path is required")
	}
	reportPath := strings.TrimSpace(req.ReportPath)
	if reportPath == "" {
		return ReportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is required")
	}
	workspaceRoot := strings.TrimSpace(req.WorkspaceRoot)
	if workspaceRoot == "" {
		workspaceRoot = "."
	}

	// The target list and the workspace walk must both succeed before
	// the report file is opened, so a failed run leaves no report.
	targets, err := s.TargetList.Read(targetsPath)
	if err != nil {
		return ReportResult{}, err
	}
	manifests, err := s.Workspace.FindManifests(workspaceRoot)
	if err != nil {
		return ReportResult{}, err
	}
	projects, err := s.Workspace.Projects(workspaceRoot)
	if err != nil {
		log.Debug().Err(err).Msg("failed to enumerate workspace projects")
		projects = nil
	}
	log.Debug().
		Int("targets", len(targets)).
		Int("manifests", len(manifests)).
		Int("projects", len(projects)).
		Msg("tracing dependency usage")

	sink, err := adapters.OpenReportFile(reportPath)
	if err != nil {
		return ReportResult{}, err
	}
	defer sink.Close()
	if err := sink.AppendHeader(); err != nil {
		return ReportResult{}, err
	}

	result := ReportResult{Targets: targets, Projects: projects, ReportPath: reportPath}
	for _, target := range targets {
		matches, err := s.Manifests.FindDeclarations(manifests, target)
		if err != nil {
			log.Debug().Str("target", target).Err(err).Msg("manifest scan failed")
		}
		result.DirectMatches = append(result.DirectMatches, matches...)

		output, err := s.UsageQuery.Why(ctx, workspaceRoot, target)
		if err != nil {
			log.Debug().Str("target", target).Err(err).Msg("usage query failed")
			continue
		}
		rows := core.ParseUsageChains(target, output)
		if len(rows) == 0 {
			continue
		}
		if err := sink.AppendRows(rows); err != nil {
			return ReportResult{}, err
		}
		result.RowsAppended += len(rows)
	}
	return result, nil
}

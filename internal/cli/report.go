package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"platform-tools/internal/app"
)

type reportOptions struct {
	Workspace string
	Report    string
}

func newReportCommand() *cobra.Command {
	opts := reportOptions{}
	cmd := &cobra.Command{
		Use:   "report [affected-file]",
		Short: "Report workspace usage of the packages listed in a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetsPath := "affected.txt"
			if len(args) > 0 {
				targetsPath = args[0]
			}
			return runReport(cmd.Context(), cmd, targetsPath, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Workspace, "workspace", ".", "Workspace root to scan")
	cmd.Flags().StringVar(&opts.Report, "report", "affected-report.csv", "Report file path")
	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	return cmd
}

func runReport(ctx context.Context, cmd *cobra.Command, targetsPath string, opts reportOptions) error {
	service := newAppService()
	result, err := service.Report(ctx, app.ReportRequest{
		TargetsPath:   targetsPath,
		WorkspaceRoot: resolveString(cmd, opts.Workspace, "workspace", "workspace"),
		ReportPath:    resolveString(cmd, opts.Report, "report", "report"),
	})
	if err != nil {
		return err
	}
	for _, match := range result.DirectMatches {
		fmt.Printf("%s:%d: %s\n", match.Path, match.Line, match.Text)
	}
	log.Info().
		Int("targets", len(result.Targets)).
		Int("rows", result.RowsAppended).
		Str("report", result.ReportPath).
		Msg("usage report written")
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

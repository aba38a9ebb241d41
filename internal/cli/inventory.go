package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"platform-tools/internal/app"
)

type inventoryOptions struct {
	Region  string
	Profile string
	Output  string
	TagKeys []string
}

func newInventoryCommand() *cobra.Command {
	opts := inventoryOptions{}
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory tagged AWS resources into migration reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInventory(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Region, "region", "us-east-1", "AWS region to scan")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "AWS shared-config profile")
	cmd.Flags().StringVar(&opts.Output, "output", "./", "Output directory for reports")
	cmd.Flags().StringSliceVar(&opts.TagKeys, "app-tag-keys", nil, "Tag keys that carry the application name")
	_ = viper.BindPFlag("region", cmd.Flags().Lookup("region"))
	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("app_tag_keys", cmd.Flags().Lookup("app-tag-keys"))
	return cmd
}

func runInventory(ctx context.Context, cmd *cobra.Command, opts inventoryOptions) error {
	service := newAppService()
	result, err := service.Inventory(ctx, app.InventoryRequest{
		Region:    resolveString(cmd, opts.Region, "region", "region"),
		Profile:   resolveString(cmd, opts.Profile, "profile", "profile"),
		OutputDir: resolveString(cmd, opts.Output, "output", "output"),
		TagKeys:   resolveStrings(cmd, opts.TagKeys, "app_tag_keys", "app-tag-keys"),
	})
	if err != nil {
		return err
	}
	renderInventorySummary(cmd.OutOrStdout(), result)
	return nil
}

func renderInventorySummary(w io.Writer, result app.InventoryResult) {
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.AppendHeader(table.Row{"Application", "Service", "Resources"})
	for _, group := range result.Summary.Apps {
		for _, service := range group.Services {
			summary.AppendRow(table.Row{group.App, service.Service, service.Count})
		}
	}
	summary.AppendFooter(table.Row{"Total", "", result.Summary.Total})
	summary.Render()

	fmt.Fprintf(w, "json report:    %s\n", result.Reports.JSONPath)
	fmt.Fprintf(w, "csv report:     %s\n", result.Reports.CSVPath)
	fmt.Fprintf(w, "summary report: %s\n", result.Reports.SummaryPath)
}

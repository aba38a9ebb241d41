package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"platform-tools/internal/adapters"
	"platform-tools/internal/app"
)

type fetchLayerOptions struct {
	EndpointURL string
}

func newFetchLayerCommand() *cobra.Command {
	opts := fetchLayerOptions{}
	cmd := &cobra.Command{
		Use:   "fetch-layer [region [runtime [output-dir]]]",
		Short: "Download and unpack the latest Dynatrace OneAgent Lambda layer",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, runtime, outputDir := "us-east-1", "nodejs", "./layer"
			if len(args) > 0 {
				region = args[0]
			}
			if len(args) > 1 {
				runtime = args[1]
			}
			if len(args) > 2 {
				outputDir = args[2]
			}
			return runFetchLayer(cmd.Context(), cmd, region, runtime, outputDir, opts)
		},
	}
	cmd.Flags().StringVar(&opts.EndpointURL, "endpoint-url", "", "Override the Lambda control-plane endpoint")
	_ = viper.BindPFlag("endpoint_url", cmd.Flags().Lookup("endpoint-url"))
	return cmd
}

func runFetchLayer(ctx context.Context, cmd *cobra.Command, region string, runtime string, outputDir string, opts fetchLayerOptions) error {
	service := newAppService()
	if endpoint := resolveString(cmd, opts.EndpointURL, "endpoint_url", "endpoint-url"); endpoint != "" {
		service.LayerRegistry = adapters.NewLayerRegistryAWSAdapter(endpoint)
	}
	result, err := service.FetchLayer(ctx, app.FetchLayerRequest{
		Region:    region,
		Runtime:   runtime,
		OutputDir: outputDir,
	})
	if err != nil {
		return err
	}
	// The resolved identifier is the command's contract: last line of
	// stdout.
	fmt.Println(result.VersionARN)
	return nil
}

package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"platform-tools/internal/core"
	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

// LambdaLayerAPI is the slice of the Lambda control plane the adapter
// uses. Tests substitute a stub.
type LambdaLayerAPI interface {
	ListLayerVersions(ctx context.Context, params *lambda.ListLayerVersionsInput, optFns ...func(*lambda.Options)) (*lambda.ListLayerVersionsOutput, error)
	GetLayerVersionByArn(ctx context.Context, params *lambda.GetLayerVersionByArnInput, optFns ...func(*lambda.Options)) (*lambda.GetLayerVersionByArnOutput, error)
}

// LayerRegistryAWSAdapter resolves vendor layer versions through the
// Lambda control plane. Cross-account layers must be addressed by ARN,
// so every call goes through core.LayerName.
type LayerRegistryAWSAdapter struct {
	// Endpoint overrides the service endpoint, used to point the
	// adapter at local stand-ins of the control plane.
	Endpoint string

	// NewClient replaces client construction in tests.
	NewClient func(ctx context.Context, region string) (LambdaLayerAPI, error)
}

func NewLayerRegistryAWSAdapter(endpoint string) LayerRegistryAWSAdapter {
	return LayerRegistryAWSAdapter{Endpoint: endpoint}
}

func (a LayerRegistryAWSAdapter) LatestVersion(ctx context.Context, ref types.LayerRef) (types.LayerVersion, error) {
	client, err := a.client(ctx, ref.Region)
	if err != nil {
		return types.LayerVersion{}, err
	}
	out, err := client.ListLayerVersions(ctx, &lambda.ListLayerVersionsInput{
		LayerName: aws.String(core.LayerName(ref)),
		MaxItems:  aws.Int32(1),
	})
	if err != nil {
		return types.LayerVersion{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list layer versions").
			WithCause(err)
	}
	if len(out.LayerVersions) == 0 {
		return types.LayerVersion{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no published versions for " + core.LayerName(ref))
	}
	newest := out.LayerVersions[0]
	return types.LayerVersion{
		Version: newest.Version,
		ARN:     aws.ToString(newest.LayerVersionArn),
	}, nil
}

func (a LayerRegistryAWSAdapter) DownloadLocation(ctx context.Context, ref types.LayerRef, versionARN string) (string, error) {
	client, err := a.client(ctx, ref.Region)
	if err != nil {
		return "", err
	}
	out, err := client.GetLayerVersionByArn(ctx, &lambda.GetLayerVersionByArnInput{
		Arn: aws.String(versionARN),
	})
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve layer download location").
			WithCause(err)
	}
	if out.Content == nil || aws.ToString(out.Content.Location) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("layer version has no download location")
	}
	return aws.ToString(out.Content.Location), nil
}

func (a LayerRegistryAWSAdapter) client(ctx context.Context, region string) (LambdaLayerAPI, error) {
	if a.NewClient != nil {
		return a.NewClient(ctx, region)
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if a.Endpoint != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to load aws config").
			WithCause(err)
	}
	return lambda.NewFromConfig(cfg, func(o *lambda.Options) {
		if a.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.Endpoint)
		}
	}), nil
}

var _ ports.LayerRegistryPort = LayerRegistryAWSAdapter{}

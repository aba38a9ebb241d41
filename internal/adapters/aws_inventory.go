package adapters

import (
	"context"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"platform-tools/internal/policies"
	"platform-tools/internal/ports"
)

// AWSScannerSource opens one account session and hands back a scanner
// per supported service. Scanner order fixes the scan order.
type AWSScannerSource struct{}

func NewAWSScannerSource() AWSScannerSource {
	return AWSScannerSource{}
}

func (s AWSScannerSource) Connect(ctx context.Context, region string, profile string, tagKeys []string) ([]ports.ResourceScannerPort, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to load aws config").
			WithCause(err)
	}
	policy := policies.NewAppTagPolicy(tagKeys)
	return []ports.ResourceScannerPort{
		NewLambdaScanner(lambda.NewFromConfig(cfg), policy),
		NewRDSScanner(rds.NewFromConfig(cfg), policy),
		NewDynamoDBScanner(dynamodb.NewFromConfig(cfg), policy),
		NewS3Scanner(s3.NewFromConfig(cfg), policy),
		NewEC2Scanner(ec2.NewFromConfig(cfg), policy, region),
		NewAPIGatewayScanner(apigateway.NewFromConfig(cfg), policy, region),
		NewAPIGatewayV2Scanner(apigatewayv2.NewFromConfig(cfg), policy, region),
	}, nil
}

func formatTime(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

var _ ports.ScannerSourcePort = AWSScannerSource{}

package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/rs/zerolog/log"

	"platform-tools/internal/policies"
	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

// LambdaInventoryAPI is the slice of the function service the scanner
// uses.
type LambdaInventoryAPI interface {
	lambda.ListFunctionsAPIClient
	ListTags(ctx context.Context, params *lambda.ListTagsInput, optFns ...func(*lambda.Options)) (*lambda.ListTagsOutput, error)
}

type LambdaScanner struct {
	api    LambdaInventoryAPI
	policy policies.AppTagPolicy
}

func NewLambdaScanner(api LambdaInventoryAPI, policy policies.AppTagPolicy) LambdaScanner {
	return LambdaScanner{api: api, policy: policy}
}

func (s LambdaScanner) Service() string {
	return types.ServiceLambda
}

func (s LambdaScanner) Scan(ctx context.Context) ([]types.Resource, error) {
	var resources []types.Resource
	paginator := lambda.NewListFunctionsPaginator(s.api, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to list functions").
				WithCause(err)
		}
		for _, fn := range page.Functions {
			resource, err := s.describe(ctx, fn)
			if err != nil {
				log.Warn().Str("function", aws.ToString(fn.FunctionName)).Err(err).Msg("skipping function")
				continue
			}
			resources = append(resources, resource)
		}
	}
	return resources, nil
}

func (s LambdaScanner) describe(ctx context.Context, fn lambdatypes.FunctionConfiguration) (types.Resource, error) {
	tagsOut, err := s.api.ListTags(ctx, &lambda.ListTagsInput{Resource: fn.FunctionArn})
	if err != nil {
		return types.Resource{}, err
	}
	tags := policies.TagsFromMap(tagsOut.Tags)
	return types.Resource{
		Service: types.ServiceLambda,
		Type:    "Function",
		Name:    aws.ToString(fn.FunctionName),
		ARN:     aws.ToString(fn.FunctionArn),
		App:     s.policy.AppName(tags),
		Details: map[string]any{
			"runtime":       string(fn.Runtime),
			"memory":        aws.ToInt32(fn.MemorySize),
			"timeout":       aws.ToInt32(fn.Timeout),
			"last_modified": normalizeTimestamp(aws.ToString(fn.LastModified)),
		},
		Tags: tags,
	}, nil
}

var _ ports.ResourceScannerPort = LambdaScanner{}

package adapters

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigatewaytypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	apigatewayv2types "github.com/aws/aws-sdk-go-v2/service/apigatewayv2/types"

	"platform-tools/internal/policies"
	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

// APIGatewayInventoryAPI is the slice of the REST gateway service the
// scanner uses.
type APIGatewayInventoryAPI interface {
	apigateway.GetRestApisAPIClient
}

// APIGatewayV2InventoryAPI is the slice of the HTTP gateway service
// the scanner uses. GetApis has no generated paginator, so the
// scanner pages by hand.
type APIGatewayV2InventoryAPI interface {
	GetApis(ctx context.Context, params *apigatewayv2.GetApisInput, optFns ...func(*apigatewayv2.Options)) (*apigatewayv2.GetApisOutput, error)
}

type APIGatewayScanner struct {
	api    APIGatewayInventoryAPI
	policy policies.AppTagPolicy
	region string
}

func NewAPIGatewayScanner(api APIGatewayInventoryAPI, policy policies.AppTagPolicy, region string) APIGatewayScanner {
	return APIGatewayScanner{api: api, policy: policy, region: region}
}

func (s APIGatewayScanner) Service() string {
	return types.ServiceAPIGateway
}

// Scan lists REST APIs. Tags ride along on the listing, so no
// per-API requests are needed.
func (s APIGatewayScanner) Scan(ctx context.Context) ([]types.Resource, error) {
	var resources []types.Resource
	paginator := apigateway.NewGetRestApisPaginator(s.api, &apigateway.GetRestApisInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to list rest apis").
				WithCause(err)
		}
		for _, api := range page.Items {
			resources = append(resources, s.describe(api))
		}
	}
	return resources, nil
}

func (s APIGatewayScanner) describe(api apigatewaytypes.RestApi) types.Resource {
	id := aws.ToString(api.Id)
	tags := policies.TagsFromMap(api.Tags)
	return types.Resource{
		Service: types.ServiceAPIGateway,
		Type:    "REST API",
		Name:    aws.ToString(api.Name),
		ARN:     fmt.Sprintf("arn:aws:apigateway:%s::/restapis/%s", s.region, id),
		App:     s.policy.AppName(tags),
		Details: map[string]any{
			"api_id":       id,
			"created_date": formatTime(api.CreatedDate),
		},
		Tags: tags,
	}
}

type APIGatewayV2Scanner struct {
	api    APIGatewayV2InventoryAPI
	policy policies.AppTagPolicy
	region string
}

func NewAPIGatewayV2Scanner(api APIGatewayV2InventoryAPI, policy policies.AppTagPolicy, region string) APIGatewayV2Scanner {
	return APIGatewayV2Scanner{api: api, policy: policy, region: region}
}

func (s APIGatewayV2Scanner) Service() string {
	return types.ServiceAPIGatewayV2
}

func (s APIGatewayV2Scanner) Scan(ctx context.Context) ([]types.Resource, error) {
	var resources []types.Resource
	input := &apigatewayv2.GetApisInput{}
	for {
		page, err := s.api.GetApis(ctx, input)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to list http apis").
				WithCause(err)
		}
		for _, api := range page.Items {
			resources = append(resources, s.describe(api))
		}
		if aws.ToString(page.NextToken) == "" {
			return resources, nil
		}
		input.NextToken = page.NextToken
	}
}

func (s APIGatewayV2Scanner) describe(api apigatewayv2types.Api) types.Resource {
	id := aws.ToString(api.ApiId)
	tags := policies.TagsFromMap(api.Tags)
	return types.Resource{
		Service: types.ServiceAPIGatewayV2,
		Type:    "HTTP API",
		Name:    aws.ToString(api.Name),
		ARN:     fmt.Sprintf("arn:aws:apigateway:%s::/apis/%s", s.region, id),
		App:     s.policy.AppName(tags),
		Details: map[string]any{
			"api_id":        id,
			"protocol_type": string(api.ProtocolType),
			"created_date":  formatTime(api.CreatedDate),
		},
		Tags: tags,
	}
}

var (
	_ ports.ResourceScannerPort = APIGatewayScanner{}
	_ ports.ResourceScannerPort = APIGatewayV2Scanner{}
)

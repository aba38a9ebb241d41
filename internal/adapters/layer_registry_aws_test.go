package adapters

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platform-tools/internal/types"
)

type stubLambdaAPI struct {
	listOut   *lambda.ListLayerVersionsOutput
	listErr   error
	getOut    *lambda.GetLayerVersionByArnOutput
	getErr    error
	gotLayer  string
	gotArn    string
	gotRegion string
}

func (s *stubLambdaAPI) ListLayerVersions(ctx context.Context, params *lambda.ListLayerVersionsInput, optFns ...func(*lambda.Options)) (*lambda.ListLayerVersionsOutput, error) {
	s.gotLayer = aws.ToString(params.LayerName)
	return s.listOut, s.listErr
}

func (s *stubLambdaAPI) GetLayerVersionByArn(ctx context.Context, params *lambda.GetLayerVersionByArnInput, optFns ...func(*lambda.Options)) (*lambda.GetLayerVersionByArnOutput, error) {
	s.gotArn = aws.ToString(params.Arn)
	return s.getOut, s.getErr
}

func stubRegistry(stub *stubLambdaAPI) LayerRegistryAWSAdapter {
	adapter := NewLayerRegistryAWSAdapter("")
	adapter.NewClient = func(ctx context.Context, region string) (LambdaLayerAPI, error) {
		stub.gotRegion = region
		return stub, nil
	}
	return adapter
}

func TestLayerRegistryLatestVersion(t *testing.T) {
	stub := &stubLambdaAPI{
		listOut: &lambda.ListLayerVersionsOutput{
			LayerVersions: []lambdatypes.LayerVersionsListItem{
				{
					Version:         42,
					LayerVersionArn: aws.String("arn:aws:lambda:us-east-1:725887861453:layer:Dynatrace_OneAgent_nodejs:42"),
				},
			},
		},
	}

	version, err := stubRegistry(stub).LatestVersion(context.Background(), types.LayerRef{Region: "us-east-1", Runtime: "nodejs"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), version.Version)
	assert.Equal(t, "arn:aws:lambda:us-east-1:725887861453:layer:Dynatrace_OneAgent_nodejs:42", version.ARN)
	assert.Equal(t, "arn:aws:lambda:us-east-1:725887861453:layer:Dynatrace_OneAgent_nodejs", stub.gotLayer)
	assert.Equal(t, "us-east-1", stub.gotRegion)
}

func TestLayerRegistryLatestVersionNoneFound(t *testing.T) {
	stub := &stubLambdaAPI{listOut: &lambda.ListLayerVersionsOutput{}}

	_, err := stubRegistry(stub).LatestVersion(context.Background(), types.LayerRef{Region: "us-east-1", Runtime: "nodejs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no published versions")
}

func TestLayerRegistryDownloadLocation(t *testing.T) {
	stub := &stubLambdaAPI{
		getOut: &lambda.GetLayerVersionByArnOutput{
			Content: &lambdatypes.LayerVersionContentOutput{
				Location: aws.String("https://layers.example.com/archive.zip"),
			},
		},
	}

	location, err := stubRegistry(stub).DownloadLocation(
		context.Background(),
		types.LayerRef{Region: "us-east-1", Runtime: "nodejs"},
		"arn:aws:lambda:us-east-1:725887861453:layer:Dynatrace_OneAgent_nodejs:42",
	)
	require.NoError(t, err)
	assert.Equal(t, "https://layers.example.com/archive.zip", location)
	assert.Equal(t, "arn:aws:lambda:us-east-1:725887861453:layer:Dynatrace_OneAgent_nodejs:42", stub.gotArn)
}

func TestLayerRegistryDownloadLocationMissingContent(t *testing.T) {
	stub := &stubLambdaAPI{getOut: &lambda.GetLayerVersionByArnOutput{}}

	_, err := stubRegistry(stub).DownloadLocation(
		context.Background(),
		types.LayerRef{Region: "us-east-1", Runtime: "nodejs"},
		"arn:aws:lambda:us-east-1:725887861453:layer:Dynatrace_OneAgent_nodejs:42",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no download location")
}

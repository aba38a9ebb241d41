package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	"platform-tools/internal/policies"
	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

// DynamoDBInventoryAPI is the slice of the table service the scanner
// uses.
type DynamoDBInventoryAPI interface {
	dynamodb.ListTablesAPIClient
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	ListTagsOfResource(ctx context.Context, params *dynamodb.ListTagsOfResourceInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTagsOfResourceOutput, error)
}

type DynamoDBScanner struct {
	api    DynamoDBInventoryAPI
	policy policies.AppTagPolicy
}

func NewDynamoDBScanner(api DynamoDBInventoryAPI, policy policies.AppTagPolicy) DynamoDBScanner {
	return DynamoDBScanner{api: api, policy: policy}
}

func (s DynamoDBScanner) Service() string {
	return types.ServiceDynamoDB
}

func (s DynamoDBScanner) Scan(ctx context.Context) ([]types.Resource, error) {
	var resources []types.Resource
	paginator := dynamodb.NewListTablesPaginator(s.api, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to list tables").
				WithCause(err)
		}
		for _, tableName := range page.TableNames {
			resource, err := s.describe(ctx, tableName)
			if err != nil {
				log.Warn().Str("table", tableName).Err(err).Msg("skipping table")
				continue
			}
			resources = append(resources, resource)
		}
	}
	return resources, nil
}

func (s DynamoDBScanner) describe(ctx context.Context, tableName string) (types.Resource, error) {
	out, err := s.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)})
	if err != nil {
		return types.Resource{}, err
	}
	table := out.Table
	if table == nil {
		return types.Resource{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("empty table description for " + tableName)
	}
	tagsOut, err := s.api.ListTagsOfResource(ctx, &dynamodb.ListTagsOfResourceInput{ResourceArn: table.TableArn})
	if err != nil {
		return types.Resource{}, err
	}
	tags := dynamodbTags(tagsOut.Tags)
	return types.Resource{
		Service: types.ServiceDynamoDB,
		Type:    "Table",
		Name:    tableName,
		ARN:     aws.ToString(table.TableArn),
		App:     s.policy.AppName(tags),
		Details: map[string]any{
			"status":           string(table.TableStatus),
			"item_count":       aws.ToInt64(table.ItemCount),
			"table_size_bytes": aws.ToInt64(table.TableSizeBytes),
		},
		Tags: tags,
	}, nil
}

func dynamodbTags(list []dynamodbtypes.Tag) []types.ResourceTag {
	var tags []types.ResourceTag
	for _, tag := range list {
		tags = append(tags, types.ResourceTag{Key: aws.ToString(tag.Key), Value: aws.ToString(tag.Value)})
	}
	return tags
}

var _ ports.ResourceScannerPort = DynamoDBScanner{}

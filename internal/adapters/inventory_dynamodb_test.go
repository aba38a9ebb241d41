package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"platform-tools/internal/policies"
	"platform-tools/internal/types"
)

type stubDynamoDBInventoryAPI struct {
	tableNames  []string
	listErr     error
	tables      map[string]*dynamodbtypes.TableDescription
	describeErr map[string]error
	tags        map[string][]dynamodbtypes.Tag
}

func (s *stubDynamoDBInventoryAPI) ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &dynamodb.ListTablesOutput{TableNames: s.tableNames}, nil
}

func (s *stubDynamoDBInventoryAPI) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	name := aws.ToString(params.TableName)
	if err := s.describeErr[name]; err != nil {
		return nil, err
	}
	return &dynamodb.DescribeTableOutput{Table: s.tables[name]}, nil
}

func (s *stubDynamoDBInventoryAPI) ListTagsOfResource(ctx context.Context, params *dynamodb.ListTagsOfResourceInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTagsOfResourceOutput, error) {
	return &dynamodb.ListTagsOfResourceOutput{Tags: s.tags[aws.ToString(params.ResourceArn)]}, nil
}

func TestDynamoDBScannerCollectsTableDetails(t *testing.T) {
	api := &stubDynamoDBInventoryAPI{
		tableNames: []string{"orders"},
		tables: map[string]*dynamodbtypes.TableDescription{
			"orders": {
				TableArn:       aws.String("arn:aws:dynamodb:eu-central-1:123456789012:table/orders"),
				TableStatus:    dynamodbtypes.TableStatusActive,
				ItemCount:      aws.Int64(1200),
				TableSizeBytes: aws.Int64(524288),
			},
		},
		tags: map[string][]dynamodbtypes.Tag{
			"arn:aws:dynamodb:eu-central-1:123456789012:table/orders": {
				{Key: aws.String("app"), Value: aws.String("Order Service")},
			},
		},
	}
	scanner := NewDynamoDBScanner(api, policies.NewAppTagPolicy(nil))

	resources, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	want := []types.Resource{
		{
			Service: types.ServiceDynamoDB,
			Type:    "Table",
			Name:    "orders",
			ARN:     "arn:aws:dynamodb:eu-central-1:123456789012:table/orders",
			App:     "order-service",
			Details: map[string]any{
				"status":           "ACTIVE",
				"item_count":       int64(1200),
				"table_size_bytes": int64(524288),
			},
			Tags: []types.ResourceTag{
				{Key: "app", Value: "Order Service"},
			},
		},
	}
	if diff := cmp.Diff(want, resources); diff != "" {
		t.Fatalf("unexpected resources (-want +got):\n%s", diff)
	}
}

func TestDynamoDBScannerSkipsTablesThatFailToDescribe(t *testing.T) {
	api := &stubDynamoDBInventoryAPI{
		tableNames: []string{"broken", "orders"},
		tables: map[string]*dynamodbtypes.TableDescription{
			"orders": {
				TableArn: aws.String("arn:aws:dynamodb:eu-central-1:123456789012:table/orders"),
			},
		},
		describeErr: map[string]error{
			"broken": errors.New("access denied"),
		},
	}
	scanner := NewDynamoDBScanner(api, policies.NewAppTagPolicy(nil))

	resources, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, resources, 1)
	require.Equal(t, "orders", resources[0].Name)
}

func TestDynamoDBScannerSkipsEmptyDescriptions(t *testing.T) {
	api := &stubDynamoDBInventoryAPI{tableNames: []string{"ghost"}}
	scanner := NewDynamoDBScanner(api, policies.NewAppTagPolicy(nil))

	resources, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	require.Empty(t, resources)
}

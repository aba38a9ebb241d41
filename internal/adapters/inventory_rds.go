package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/rs/zerolog/log"

	"platform-tools/internal/policies"
	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

// RDSInventoryAPI is the slice of the database service the scanner
// uses. Instances and clusters are inventoried separately because
// serverless clusters have no instance entries.
type RDSInventoryAPI interface {
	rds.DescribeDBInstancesAPIClient
	rds.DescribeDBClustersAPIClient
	ListTagsForResource(ctx context.Context, params *rds.ListTagsForResourceInput, optFns ...func(*rds.Options)) (*rds.ListTagsForResourceOutput, error)
}

type RDSScanner struct {
	api    RDSInventoryAPI
	policy policies.AppTagPolicy
}

func NewRDSScanner(api RDSInventoryAPI, policy policies.AppTagPolicy) RDSScanner {
	return RDSScanner{api: api, policy: policy}
}

func (s RDSScanner) Service() string {
	return types.ServiceRDS
}

func (s RDSScanner) Scan(ctx context.Context) ([]types.Resource, error) {
	resources, err := s.scanInstances(ctx)
	if err != nil {
		return nil, err
	}
	clusters, err := s.scanClusters(ctx)
	if err != nil {
		return nil, err
	}
	return append(resources, clusters...), nil
}

func (s RDSScanner) scanInstances(ctx context.Context) ([]types.Resource, error) {
	var resources []types.Resource
	paginator := rds.NewDescribeDBInstancesPaginator(s.api, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to list db instances").
				WithCause(err)
		}
		for _, db := range page.DBInstances {
			tags, err := s.resourceTags(ctx, aws.ToString(db.DBInstanceArn))
			if err != nil {
				log.Warn().Str("instance", aws.ToString(db.DBInstanceIdentifier)).Err(err).Msg("skipping db instance")
				continue
			}
			resources = append(resources, types.Resource{
				Service: types.ServiceRDS,
				Type:    "DB Instance",
				Name:    aws.ToString(db.DBInstanceIdentifier),
				ARN:     aws.ToString(db.DBInstanceArn),
				App:     s.policy.AppName(tags),
				Details: map[string]any{
					"engine":         aws.ToString(db.Engine),
					"instance_class": aws.ToString(db.DBInstanceClass),
					"status":         aws.ToString(db.DBInstanceStatus),
				},
				Tags: tags,
			})
		}
	}
	return resources, nil
}

func (s RDSScanner) scanClusters(ctx context.Context) ([]types.Resource, error) {
	var resources []types.Resource
	paginator := rds.NewDescribeDBClustersPaginator(s.api, &rds.DescribeDBClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to list db clusters").
				WithCause(err)
		}
		for _, cluster := range page.DBClusters {
			tags, err := s.resourceTags(ctx, aws.ToString(cluster.DBClusterArn))
			if err != nil {
				log.Warn().Str("cluster", aws.ToString(cluster.DBClusterIdentifier)).Err(err).Msg("skipping db cluster")
				continue
			}
			resources = append(resources, types.Resource{
				Service: types.ServiceRDS,
				Type:    "DB Cluster",
				Name:    aws.ToString(cluster.DBClusterIdentifier),
				ARN:     aws.ToString(cluster.DBClusterArn),
				App:     s.policy.AppName(tags),
				Details: map[string]any{
					"engine": aws.ToString(cluster.Engine),
					"status": aws.ToString(cluster.Status),
				},
				Tags: tags,
			})
		}
	}
	return resources, nil
}

func (s RDSScanner) resourceTags(ctx context.Context, arn string) ([]types.ResourceTag, error) {
	out, err := s.api.ListTagsForResource(ctx, &rds.ListTagsForResourceInput{ResourceName: aws.String(arn)})
	if err != nil {
		return nil, err
	}
	return rdsTags(out.TagList), nil
}

func rdsTags(list []rdstypes.Tag) []types.ResourceTag {
	var tags []types.ResourceTag
	for _, tag := range list {
		tags = append(tags, types.ResourceTag{Key: aws.ToString(tag.Key), Value: aws.ToString(tag.Value)})
	}
	return tags
}

var _ ports.ResourceScannerPort = RDSScanner{}

package adapters

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"platform-tools/internal/policies"
	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

// EC2InventoryAPI is the slice of the compute service the scanner
// uses.
type EC2InventoryAPI interface {
	ec2.DescribeInstancesAPIClient
}

type EC2Scanner struct {
	api    EC2InventoryAPI
	policy policies.AppTagPolicy
	region string
}

func NewEC2Scanner(api EC2InventoryAPI, policy policies.AppTagPolicy, region string) EC2Scanner {
	return EC2Scanner{api: api, policy: policy, region: region}
}

func (s EC2Scanner) Service() string {
	return types.ServiceEC2
}

// Scan walks every reservation page. Instance tags ride along on the
// describe call, so no per-instance requests are needed.
func (s EC2Scanner) Scan(ctx context.Context) ([]types.Resource, error) {
	var resources []types.Resource
	paginator := ec2.NewDescribeInstancesPaginator(s.api, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to describe instances").
				WithCause(err)
		}
		for _, reservation := range page.Reservations {
			owner := aws.ToString(reservation.OwnerId)
			if owner == "" {
				owner = "unknown"
			}
			for _, instance := range reservation.Instances {
				resources = append(resources, s.describe(instance, owner))
			}
		}
	}
	return resources, nil
}

func (s EC2Scanner) describe(instance ec2types.Instance, owner string) types.Resource {
	id := aws.ToString(instance.InstanceId)
	tags := ec2Tags(instance.Tags)
	state := "Unknown"
	if instance.State != nil {
		state = string(instance.State.Name)
	}
	return types.Resource{
		Service: types.ServiceEC2,
		Type:    "Instance",
		Name:    id,
		ARN:     fmt.Sprintf("arn:aws:ec2:%s:%s:instance/%s", s.region, owner, id),
		App:     s.policy.AppName(tags),
		Details: map[string]any{
			"instance_type": string(instance.InstanceType),
			"state":         state,
			"launch_time":   formatTime(instance.LaunchTime),
		},
		Tags: tags,
	}
}

func ec2Tags(list []ec2types.Tag) []types.ResourceTag {
	var tags []types.ResourceTag
	for _, tag := range list {
		tags = append(tags, types.ResourceTag{Key: aws.ToString(tag.Key), Value: aws.ToString(tag.Value)})
	}
	return tags
}

var _ ports.ResourceScannerPort = EC2Scanner{}

package adapters

import (
	"context"
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"

	"platform-tools/internal/policies"
	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

// S3InventoryAPI is the slice of the object storage service the
// scanner uses.
type S3InventoryAPI interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	GetBucketTagging(ctx context.Context, params *s3.GetBucketTaggingInput, optFns ...func(*s3.Options)) (*s3.GetBucketTaggingOutput, error)
	GetBucketLocation(ctx context.Context, params *s3.GetBucketLocationInput, optFns ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error)
}

type S3Scanner struct {
	api    S3InventoryAPI
	policy policies.AppTagPolicy
}

func NewS3Scanner(api S3InventoryAPI, policy policies.AppTagPolicy) S3Scanner {
	return S3Scanner{api: api, policy: policy}
}

func (s S3Scanner) Service() string {
	return types.ServiceS3
}

// Scan lists every bucket the account owns. Bucket listing is global,
// so the region detail records where each bucket actually lives.
func (s S3Scanner) Scan(ctx context.Context) ([]types.Resource, error) {
	out, err := s.api.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list buckets").
			WithCause(err)
	}
	var resources []types.Resource
	for _, bucket := range out.Buckets {
		name := aws.ToString(bucket.Name)
		tags, err := s.bucketTags(ctx, name)
		if err != nil {
			log.Warn().Str("bucket", name).Err(err).Msg("skipping bucket")
			continue
		}
		resources = append(resources, types.Resource{
			Service: types.ServiceS3,
			Type:    "Bucket",
			Name:    name,
			ARN:     "arn:aws:s3:::" + name,
			App:     s.policy.AppName(tags),
			Details: map[string]any{
				"creation_date": formatTime(bucket.CreationDate),
				"region":        s.bucketRegion(ctx, name),
			},
			Tags: tags,
		})
	}
	return resources, nil
}

// bucketTags treats an absent tag set as no tags rather than a
// failure.
func (s S3Scanner) bucketTags(ctx context.Context, name string) ([]types.ResourceTag, error) {
	out, err := s.api.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{Bucket: aws.String(name)})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchTagSet" {
			return nil, nil
		}
		return nil, err
	}
	return s3Tags(out.TagSet), nil
}

// bucketRegion is best effort; an empty location constraint means the
// original region.
func (s S3Scanner) bucketRegion(ctx context.Context, name string) string {
	out, err := s.api.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: aws.String(name)})
	if err != nil {
		return "Unknown"
	}
	if out.LocationConstraint == "" {
		return "us-east-1"
	}
	return string(out.LocationConstraint)
}

func s3Tags(list []s3types.Tag) []types.ResourceTag {
	var tags []types.ResourceTag
	for _, tag := range list {
		tags = append(tags, types.ResourceTag{Key: aws.ToString(tag.Key), Value: aws.ToString(tag.Value)})
	}
	return tags
}

var _ ports.ResourceScannerPort = S3Scanner{}

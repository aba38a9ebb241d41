package core

import (
	"context"
	"fmt"
	"regexp"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"platform-tools/internal/types"
)

// VendorAccountID is the AWS account that publishes the observability
// vendor's public Lambda layers.
const VendorAccountID = "725887861453"

// LayerNamePrefix is the vendor's layer family; the runtime flavor is
// appended to it.
const LayerNamePrefix = "Dynatrace_OneAgent"

var (
	regionPattern  = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d+$`)
	runtimePattern = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)
)

// ValidateLayerRef checks that a layer reference is well formed enough
// to build ARNs from.
func ValidateLayerRef(ctx context.Context, ref types.LayerRef) error {
	assert.NotEmpty(ctx, ref.Region, "layer region must be set")
	assert.NotEmpty(ctx, ref.Runtime, "layer runtime must be set")
	if !regionPattern.MatchString(ref.Region) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid region %q", ref.Region))
	}
	if !runtimePattern.MatchString(ref.Runtime) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid runtime %q", ref.Runtime))
	}
	return nil
}

// LayerName returns the unversioned layer ARN. Cross-account layers
// must be addressed by ARN rather than bare name.
func LayerName(ref types.LayerRef) string {
	return fmt.Sprintf("arn:aws:lambda:%s:%s:layer:%s_%s", ref.Region, VendorAccountID, LayerNamePrefix, ref.Runtime)
}

// LayerVersionARN returns the fully qualified ARN for one published
// version of the layer.
func LayerVersionARN(ref types.LayerRef, version int64) string {
	return fmt.Sprintf("%s:%d", LayerName(ref), version)
}

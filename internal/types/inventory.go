package types

const (
	ServiceLambda       = "Lambda"
	ServiceRDS          = "RDS"
	ServiceDynamoDB     = "DynamoDB"
	ServiceS3           = "S3"
	ServiceEC2          = "EC2"
	ServiceAPIGateway   = "API Gateway"
	ServiceAPIGatewayV2 = "API Gateway v2"
)

type ResourceTag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// Resource is one inventoried cloud resource attributed to an
// application by its tags.
type Resource struct {
	Service string         `json:"service"`
	Type    string         `json:"resource_type"`
	Name    string         `json:"name"`
	ARN     string         `json:"arn"`
	App     string         `json:"app_name"`
	Details map[string]any `json:"details,omitempty"`
	Tags    []ResourceTag  `json:"tags"`
}

type AppServiceCount struct {
	Service string
	Count   int
}

type AppSummary struct {
	App      string
	Total    int
	Services []AppServiceCount
}

type InventorySummary struct {
	Apps  []AppSummary
	Total int
}

// InventoryReportSet names the files one inventory run produced.
type InventoryReportSet struct {
	JSONPath    string
	CSVPath     string
	SummaryPath string
}

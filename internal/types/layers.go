package types

// LayerRef identifies a vendor layer by region and runtime flavor.
type LayerRef struct {
	Region  string
	Runtime string
}

// LayerVersion is one published version of a layer.
type LayerVersion struct {
	Version int64
	ARN     string
}

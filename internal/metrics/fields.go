package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrEndpoint = "endpoint"
	AttrOutcome  = "outcome"
)

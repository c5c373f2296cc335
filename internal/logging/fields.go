package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldEndpoint   = "endpoint"
	FieldSeason     = "season"
	FieldGameweek   = "gameweek"
	FieldPath       = "path"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)

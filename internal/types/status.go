package types

// Status is a type for the lifecycle status of a persisted resource.
// This is used to determine whether a record should be included in queries.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

// RunMode is the deployment mode the server runs in
type RunMode string

const (
	ModeLocal     RunMode = "local"
	ModeServer    RunMode = "server"
	ModeAWSLambda RunMode = "aws_lambda"
)

// LogLevel is the logging level for the application
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

package config

const (
	// DefaultReportName is the summary name written into every report
	DefaultReportName = "SaturnRingLib Unit Tests"
	// DefaultToolName is the name of the test framework that produced the log
	DefaultToolName = "minunit"
	// DefaultIndent is the JSON indentation of the written report
	DefaultIndent = "    "
	// DefaultEnvFile is loaded, when present, before reading environment overrides
	DefaultEnvFile = ".env"
)

// Environment variable names
const (
	EnvReportName = "UTS2CTRF_REPORT_NAME"
	EnvToolName   = "UTS2CTRF_TOOL_NAME"

	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBUser     = "DB_USERNAME"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBName     = "DB_DATABASE"
)

// Database defaults used by publish
const (
	DefaultDBHost     = "127.0.0.1"
	DefaultDBPort     = "3306"
	DefaultDBUser     = "root"
	DefaultDBPassword = ""
	DefaultDBName     = "ctrf_reports"
)

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Report settings
	ReportName string
	ToolName   string
	Indent     string

	// Database settings for publish
	Database Database

	// Command flags
	Flags Flags
}

// Database holds MySQL connection settings
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Flags holds command-line flags
type Flags struct {
	ReportName string
	ToolName   string
	EnvFile    string
	// EnvFileSet is true when the env file was named on the command line
	EnvFileSet bool
	Filter     string
	Summary    bool
	Verbose    bool
	Progress   bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ReportName: DefaultReportName,
		ToolName:   DefaultToolName,
		Indent:     DefaultIndent,
		Database: Database{
			Host:     DefaultDBHost,
			Port:     DefaultDBPort,
			User:     DefaultDBUser,
			Password: DefaultDBPassword,
			Name:     DefaultDBName,
		},
		Flags: Flags{EnvFile: DefaultEnvFile},
	}
}

// Load creates a config, applies the environment and then flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.Apply(flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply sets the flags, loads the environment and applies flag overrides
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags
	if err := c.LoadEnv(); err != nil {
		return err
	}
	c.ApplyFlags()
	return nil
}

// LoadEnv loads the env file named by the flags and applies environment overrides.
// Variables already set in the process win over the file. The default env file is
// optional: a missing or unparsable one is ignored. An env file named on the
// command line must load.
func (c *Config) LoadEnv() error {
	if c.Flags.EnvFile != "" {
		if err := godotenv.Load(c.Flags.EnvFile); err != nil && c.Flags.EnvFileSet {
			return fmt.Errorf("load env file %s: %w", c.Flags.EnvFile, err)
		}
	}

	setFromEnv(&c.ReportName, EnvReportName)
	setFromEnv(&c.ToolName, EnvToolName)
	setFromEnv(&c.Database.Host, EnvDBHost)
	setFromEnv(&c.Database.Port, EnvDBPort)
	setFromEnv(&c.Database.User, EnvDBUser)
	setFromEnv(&c.Database.Password, EnvDBPassword)
	setFromEnv(&c.Database.Name, EnvDBName)
	return nil
}

// ApplyFlags applies flag overrides on top of the current values
func (c *Config) ApplyFlags() {
	if c.Flags.ReportName != "" {
		c.ReportName = c.Flags.ReportName
	}
	if c.Flags.ToolName != "" {
		c.ToolName = c.Flags.ToolName
	}
}

// DSN returns the MySQL data source name. Without a database it connects to the server only.
func (d Database) DSN(withDatabase bool) string {
	name := ""
	if withDatabase {
		name = d.Name
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Port, name)
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

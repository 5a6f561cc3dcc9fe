package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full configuration for a generator run, loaded from
// enumgen.yml.
type Config struct {
	// Dialect names the database dialect: sqlite, mysql, or postgres.
	Dialect string `yaml:"dialect"`

	// DSN is the data source name passed to the database driver.
	DSN string `yaml:"dsn"`

	// Schema optionally qualifies which schema/database to introspect.
	Schema string `yaml:"schema"`

	// Trigger selects candidate tables.
	Trigger Trigger `yaml:"trigger"`

	Java JavaConfig `yaml:"java"`
	Go   GoConfig   `yaml:"go"`
}

// JavaConfig controls the Java enum emission.
type JavaConfig struct {
	// Package is the Java package declared at the top of each file.
	Package string `yaml:"package"`

	// Suffix is appended to the PascalCase table name to form the type
	// name. Defaults to "Enum".
	Suffix string `yaml:"suffix"`

	// Output is the directory the .java files are written to.
	Output string `yaml:"output"`
}

// GoConfig controls the optional Go bindings emission. Bindings are
// generated only when Output is set.
type GoConfig struct {
	// Package is the Go package name of the generated files. Defaults to
	// "masterdata".
	Package string `yaml:"package"`

	// Output is the directory the .go files are written to.
	Output string `yaml:"output"`
}

// LoadConfig reads and parses an enumgen.yml configuration file and
// applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Java.Suffix == "" {
		c.Java.Suffix = "Enum"
	}
	if c.Java.Output == "" {
		c.Java.Output = "."
	}
	if c.Go.Package == "" {
		c.Go.Package = "masterdata"
	}
}

// Validate checks the configuration for a runnable combination.
func (c *Config) Validate() error {
	if c.Dialect == "" {
		return fmt.Errorf("config: dialect is required")
	}
	if c.DSN == "" {
		return fmt.Errorf("config: dsn is required")
	}
	return c.Trigger.Validate()
}

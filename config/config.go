// Package config loads quicknav.yml, the per-project configuration file.
// Lookup walks up from the working directory so nested invocations share the
// project's configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/quicknav/errors"
)

// FileName is the configuration file quicknav looks for.
const FileName = "quicknav.yml"

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config is the root of quicknav.yml.
type Config struct {
	// Theme selects the color theme for the picker UI.
	Theme string `yaml:"theme"`

	// Extensions holds sections owned by individual components (logging,
	// picker, ...), decoded on demand via UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data. Environment variable references
// of the form ${VAR} are expanded before parsing.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envVarRegex.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(name)))
	})

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	return &cfg, nil
}

// LoadDefault finds and loads the configuration starting from the current
// working directory. A missing configuration file is reported as
// ErrCodeConfigNotFound; callers that can run without configuration treat
// that as "use defaults".
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	path, err := FindConfigFile(cwd)
	if err != nil {
		return nil, err
	}

	return Load(path)
}

// FindConfigFile walks up from startDir looking for quicknav.yml.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(filepath.Join(startDir, FileName))
		}
		dir = parent
	}
}

// UnmarshalExtension decodes a named extension section of the loaded
// configuration into the provided target struct. The target must be a
// pointer. A missing section is not an error; the target simply keeps its
// zero value.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	// Decode the generic map[string]interface{} into the strongly-typed
	// target, reusing the yaml tags for field naming.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

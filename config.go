package treelint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	tt "github.com/gnoverse/treelint/internal/types"
)

// Config represents the overall configuration with a name and a set of
// per-rule settings.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

// parseConfigurationFile loads and strictly decodes a configuration file.
// Unknown keys are configuration errors, not silently ignored.
func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing configuration file: %w", err)
	}

	return config, nil
}

// WriteDefaultConfig creates or overwrites a configuration file with the
// default settings.
func WriteDefaultConfig(configurationPath string) error {
	config := Config{
		Name:  "treelint",
		Rules: map[string]tt.ConfigRule{},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(d); err != nil {
		return err
	}

	return nil
}

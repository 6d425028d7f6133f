package magcoord

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"magcoord/igrf"
)

// Config selects the coefficient model and its extrapolation behavior.
type Config struct {
	// Model picks an embedded table: "igrf14" (default) or "igrf13".
	Model string `yaml:"model"`
	// CoefficientsFile, when set, loads an official igrfXXcoeffs.txt from
	// disk and takes precedence over Model.
	CoefficientsFile string `yaml:"coefficients_file"`
	// Extrapolation is "warn" (default), accepting up to ten years past the
	// last tabulated epoch, or "strict", rejecting anything past five.
	Extrapolation string `yaml:"extrapolation"`
}

// DefaultConfig returns the pinned defaults.
func DefaultConfig() Config {
	return Config{
		Model:         "igrf14",
		Extrapolation: "warn",
	}
}

// normalize fills defaults.
func (c *Config) normalize() {
	if c == nil {
		return
	}
	def := DefaultConfig()
	c.Model = strings.ToLower(strings.TrimSpace(c.Model))
	if c.Model == "" {
		c.Model = def.Model
	}
	c.CoefficientsFile = strings.TrimSpace(c.CoefficientsFile)
	c.Extrapolation = strings.ToLower(strings.TrimSpace(c.Extrapolation))
	if c.Extrapolation == "" {
		c.Extrapolation = def.Extrapolation
	}
}

// LoadConfigFile loads YAML config and applies defaults. An empty path
// returns the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(bs, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// Validate performs sanity checks on the configuration.
func (c Config) Validate() error {
	switch c.Model {
	case "igrf14", "igrf13":
	default:
		return fmt.Errorf("model must be igrf14 or igrf13, got %q", c.Model)
	}
	switch c.Extrapolation {
	case "warn", "strict":
	default:
		return fmt.Errorf("extrapolation must be warn or strict, got %q", c.Extrapolation)
	}
	return nil
}

// source builds the coefficient source the config describes.
func (c Config) source(logf func(format string, args ...any)) (CoefficientSource, error) {
	var table *igrf.Table
	switch {
	case c.CoefficientsFile != "":
		t, err := igrf.LoadFile(c.CoefficientsFile)
		if err != nil {
			return nil, err
		}
		table = t
	case c.Model == "igrf13":
		table = igrf.IGRF13()
	default:
		table = igrf.IGRF14()
	}
	if c.Extrapolation == "strict" {
		table.Policy = igrf.PolicyStrict
	}
	table.Logf = logf
	return table, nil
}

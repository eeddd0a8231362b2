// Package config loads the receiver cluster classification thresholds and
// the column mapping of the estimates table from JSON or YAML files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jennavergeynst/receiver-performance/clusters"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the path to the canonical classifier defaults file.
const DefaultConfigPath = "config/classifier.defaults.json"

// Defaults applied by the Get* accessors when a field is unset.
const (
	DefaultAccGoal         = 2.5 // metres
	DefaultConfidenceLevel = 0.95
)

// ClassifierConfig holds the classification thresholds and the column
// mapping of the estimates table. Unset fields fall back to defaults, so
// partial configs are safe.
type ClassifierConfig struct {
	AccGoal         *float64 `json:"acc_goal,omitempty" yaml:"acc_goal,omitempty"`
	ConfidenceLevel *float64 `json:"confidence_level,omitempty" yaml:"confidence_level,omitempty"`
	MinGroupSize    *int     `json:"min_group_size,omitempty" yaml:"min_group_size,omitempty"`

	// Column names
	ErrorField   *string `json:"error_field,omitempty" yaml:"error_field,omitempty"`
	ClusterField *string `json:"cluster_field,omitempty" yaml:"cluster_field,omitempty"`
}

// EmptyClassifierConfig returns a ClassifierConfig with all fields set to nil.
func EmptyClassifierConfig() *ClassifierConfig {
	return &ClassifierConfig{}
}

// LoadClassifierConfig loads a ClassifierConfig from a .json, .yaml or .yml
// file no larger than 1MB, then validates it.
func LoadClassifierConfig(path string) (*ClassifierConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyClassifierConfig()
	if ext == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath.
// It searches the current directory and its parents. Panics if the file
// cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *ClassifierConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,    // from clusters/ and config/
		"../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadClassifierConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks the set fields. Threshold rules are shared with
// clusters.Params, so errors wrap clusters.ErrInvalidInput.
func (c *ClassifierConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.ErrorField != nil && strings.TrimSpace(*c.ErrorField) == "" {
		return fmt.Errorf("%w: error_field must not be blank", clusters.ErrInvalidInput)
	}
	if c.ClusterField != nil && strings.TrimSpace(*c.ClusterField) == "" {
		return fmt.Errorf("%w: cluster_field must not be blank", clusters.ErrInvalidInput)
	}
	// Compare effective names: one set field can collide with the other's default.
	if c.GetErrorField() == c.GetClusterField() {
		return fmt.Errorf("%w: error_field and cluster_field must differ, both are %q",
			clusters.ErrInvalidInput, c.GetErrorField())
	}
	return nil
}

// Params returns the thresholds for clusters.Classify.
func (c *ClassifierConfig) Params() clusters.Params {
	return clusters.Params{
		AccGoal:         c.GetAccGoal(),
		ConfidenceLevel: c.GetConfidenceLevel(),
		MinGroupSize:    c.GetMinGroupSize(),
	}
}

// Fields returns the column mapping for clusters.ClassifyRecords.
func (c *ClassifierConfig) Fields() clusters.Fields {
	return clusters.Fields{
		Error:   c.GetErrorField(),
		Cluster: c.GetClusterField(),
	}
}

// GetAccGoal returns the acc_goal value or the default.
func (c *ClassifierConfig) GetAccGoal() float64 {
	if c.AccGoal == nil {
		return DefaultAccGoal
	}
	return *c.AccGoal
}

// GetConfidenceLevel returns the confidence_level value or the default.
func (c *ClassifierConfig) GetConfidenceLevel() float64 {
	if c.ConfidenceLevel == nil {
		return DefaultConfidenceLevel
	}
	return *c.ConfidenceLevel
}

// GetMinGroupSize returns the min_group_size value or the default.
func (c *ClassifierConfig) GetMinGroupSize() int {
	if c.MinGroupSize == nil {
		return clusters.DefaultMinGroupSize
	}
	return *c.MinGroupSize
}

// GetErrorField returns the error_field value or the default.
func (c *ClassifierConfig) GetErrorField() string {
	if c.ErrorField == nil {
		return clusters.DefaultErrorField
	}
	return *c.ErrorField
}

// GetClusterField returns the cluster_field value or the default.
func (c *ClassifierConfig) GetClusterField() string {
	if c.ClusterField == nil {
		return clusters.DefaultClusterField
	}
	return *c.ClusterField
}

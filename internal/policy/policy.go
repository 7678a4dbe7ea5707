// Package policy enforces version acceptance rules beyond basic syntax:
// which release levels a project allows, how many pre-release builds it
// tolerates, and caps on the numeric components.
package policy

import (
	"fmt"
	"slices"

	"github.com/relver/relver/internal/version"
)

// RuleType defines the type of validation rule.
type RuleType string

const (
	RuleAllowedLevels RuleType = "allowed-release-levels"
	RuleMaxSerial     RuleType = "max-serial"
	RuleMaxMajor      RuleType = "max-major"
	RuleMaxMinor      RuleType = "max-minor"
	RuleMaxMicro      RuleType = "max-micro"
	RuleRequireFinal  RuleType = "require-final"
)

// ValidRuleTypes lists every recognized rule type.
var ValidRuleTypes = []RuleType{
	RuleAllowedLevels,
	RuleMaxSerial,
	RuleMaxMajor,
	RuleMaxMinor,
	RuleMaxMicro,
	RuleRequireFinal,
}

// IsValidRuleType reports whether t is a recognized rule type.
func IsValidRuleType(t RuleType) bool {
	return slices.Contains(ValidRuleTypes, t)
}

// Rule represents a single validation rule.
type Rule struct {
	Type    RuleType `yaml:"type"`
	Levels  []string `yaml:"levels,omitempty"`
	Value   int      `yaml:"value,omitempty"`
	Enabled bool     `yaml:"enabled,omitempty"`
}

// Config holds the policy configuration.
type Config struct {
	Enabled bool   `yaml:"enabled"`
	Rules   []Rule `yaml:"rules,omitempty"`
}

// DefaultConfig returns a disabled policy with no rules.
func DefaultConfig() *Config {
	return &Config{
		Enabled: false,
		Rules:   []Rule{},
	}
}

// Checker applies policy rules to versions.
type Checker struct {
	cfg *Config
}

// NewChecker creates a Checker. A nil config yields a disabled checker.
func NewChecker(cfg *Config) *Checker {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Checker{cfg: cfg}
}

// IsEnabled returns true if the policy is enabled.
func (c *Checker) IsEnabled() bool {
	return c.cfg != nil && c.cfg.Enabled
}

// Check validates a version against every configured rule.
// A disabled policy accepts everything.
func (c *Checker) Check(v version.VersionInfo) error {
	if !c.IsEnabled() {
		return nil
	}

	for i := range c.cfg.Rules {
		if err := c.applyRule(&c.cfg.Rules[i], v); err != nil {
			return err
		}
	}

	return nil
}

func (c *Checker) applyRule(rule *Rule, v version.VersionInfo) error {
	switch rule.Type {
	case RuleAllowedLevels:
		return checkAllowedLevels(rule, v)
	case RuleMaxSerial:
		return checkMaxSerial(rule, v)
	case RuleMaxMajor:
		return checkMaxComponent(rule, v.Major, "major")
	case RuleMaxMinor:
		return checkMaxComponent(rule, v.Minor, "minor")
	case RuleMaxMicro:
		return checkMaxComponent(rule, v.Micro, "micro")
	case RuleRequireFinal:
		return checkRequireFinal(rule, v)
	default:
		return fmt.Errorf("unknown rule type: %s", rule.Type)
	}
}

// checkAllowedLevels rejects release levels outside the configured list.
func checkAllowedLevels(rule *Rule, v version.VersionInfo) error {
	if len(rule.Levels) == 0 {
		return nil
	}

	if slices.Contains(rule.Levels, string(v.ReleaseLevel)) {
		return nil
	}

	return fmt.Errorf("release level %q is not allowed (allowed: %v)", v.ReleaseLevel, rule.Levels)
}

// checkMaxSerial caps the number of pre-release builds within a level.
func checkMaxSerial(rule *Rule, v version.VersionInfo) error {
	if rule.Value <= 0 {
		return nil
	}

	if v.IsPreRelease() && v.Serial > rule.Value {
		return fmt.Errorf("build serial %d exceeds maximum allowed value %d (version: %s)", v.Serial, rule.Value, v.String())
	}

	return nil
}

// checkMaxComponent caps a numeric version component.
func checkMaxComponent(rule *Rule, value int, component string) error {
	if rule.Value <= 0 {
		return nil
	}

	if value > rule.Value {
		return fmt.Errorf("%s version %d exceeds maximum allowed value %d", component, value, rule.Value)
	}

	return nil
}

// checkRequireFinal rejects pre-releases entirely.
func checkRequireFinal(rule *Rule, v version.VersionInfo) error {
	if !rule.Enabled {
		return nil
	}

	if v.IsPreRelease() {
		return fmt.Errorf("pre-release versions are not allowed by policy (got %s)", v.String())
	}

	return nil
}

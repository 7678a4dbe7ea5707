package config

import (
	"fmt"
	"regexp"

	"github.com/relver/relver/internal/parser"
	"github.com/relver/relver/internal/policy"
	"github.com/relver/relver/internal/tui"
)

// Validate checks a loaded configuration for inconsistencies that would
// otherwise surface as confusing failures mid-command.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.Format != "" && !parser.Format(cfg.Format).IsValid() {
		return fmt.Errorf("invalid format %q (valid: json, yaml, toml, raw, regex)", cfg.Format)
	}

	if parser.Format(cfg.Format) == parser.FormatRegex {
		if cfg.Pattern == "" {
			return fmt.Errorf("pattern is required when format is regex")
		}
		re, err := regexp.Compile(cfg.Pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", cfg.Pattern, err)
		}
		if re.NumSubexp() < 1 {
			return fmt.Errorf("pattern %q must contain a capturing group", cfg.Pattern)
		}
	}

	if cfg.Theme != "" && !tui.IsValidTheme(cfg.Theme) {
		return fmt.Errorf("invalid theme %q (valid: %v)", cfg.Theme, tui.ValidThemes)
	}

	if cfg.Policy != nil {
		if err := validatePolicy(cfg.Policy); err != nil {
			return err
		}
	}

	return nil
}

func validatePolicy(p *policy.Config) error {
	for i := range p.Rules {
		rule := &p.Rules[i]
		if !policy.IsValidRuleType(rule.Type) {
			return fmt.Errorf("invalid policy rule type %q", rule.Type)
		}

		switch rule.Type {
		case policy.RuleAllowedLevels:
			if len(rule.Levels) == 0 {
				return fmt.Errorf("policy rule %q requires a levels list", rule.Type)
			}
		case policy.RuleMaxSerial, policy.RuleMaxMajor, policy.RuleMaxMinor, policy.RuleMaxMicro:
			if rule.Value <= 0 {
				return fmt.Errorf("policy rule %q requires a positive value", rule.Type)
			}
		}
	}

	return nil
}

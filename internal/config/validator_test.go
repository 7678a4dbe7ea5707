package config

import (
	"testing"

	"github.com/relver/relver/internal/policy"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name: "minimal valid",
			cfg:  &Config{Path: ".version"},
		},
		{
			name:    "unknown format",
			cfg:     &Config{Path: ".version", Format: "xml"},
			wantErr: true,
		},
		{
			name:    "regex without pattern",
			cfg:     &Config{Path: "v.go", Format: "regex"},
			wantErr: true,
		},
		{
			name:    "regex with invalid pattern",
			cfg:     &Config{Path: "v.go", Format: "regex", Pattern: "(["},
			wantErr: true,
		},
		{
			name:    "regex without capturing group",
			cfg:     &Config{Path: "v.go", Format: "regex", Pattern: `Version = ".+"`},
			wantErr: true,
		},
		{
			name: "regex valid",
			cfg:  &Config{Path: "v.go", Format: "regex", Pattern: `Version = "(.+)"`},
		},
		{
			name:    "unknown theme",
			cfg:     &Config{Path: ".version", Theme: "neon"},
			wantErr: true,
		},
		{
			name: "known theme",
			cfg:  &Config{Path: ".version", Theme: "dracula"},
		},
		{
			name: "valid policy",
			cfg: &Config{Path: ".version", Policy: &policy.Config{
				Enabled: true,
				Rules:   []policy.Rule{{Type: policy.RuleMaxSerial, Value: 9}},
			}},
		},
		{
			name: "unknown policy rule",
			cfg: &Config{Path: ".version", Policy: &policy.Config{
				Rules: []policy.Rule{{Type: policy.RuleType("bogus")}},
			}},
			wantErr: true,
		},
		{
			name: "allowed-levels without levels",
			cfg: &Config{Path: ".version", Policy: &policy.Config{
				Rules: []policy.Rule{{Type: policy.RuleAllowedLevels}},
			}},
			wantErr: true,
		},
		{
			name: "max rule without value",
			cfg: &Config{Path: ".version", Policy: &policy.Config{
				Rules: []policy.Rule{{Type: policy.RuleMaxMajor}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package parse

import (
	"context"
	"errors"
	"testing"

	"github.com/relver/relver/internal/config"
	"github.com/relver/relver/internal/version"
)

func TestParseCmd_MissingArgument(t *testing.T) {
	cmd := Run(config.Default())
	if err := cmd.Run(context.Background(), []string{"parse"}); err == nil {
		t.Error("expected error for missing argument")
	}
}

func TestParseCmd_ValidVersion(t *testing.T) {
	cmd := Run(config.Default())
	if err := cmd.Run(context.Background(), []string{"parse", "1.0.0a3"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseCmd_TolerantByDefault(t *testing.T) {
	cmd := Run(config.Default())
	if err := cmd.Run(context.Background(), []string{"parse", "v1.0.0-alpha.3"}); err != nil {
		t.Errorf("tolerant parsing rejected semver notation: %v", err)
	}
}

func TestParseCmd_Malformed(t *testing.T) {
	cmd := Run(config.Default())
	err := cmd.Run(context.Background(), []string{"parse", "not-a-version"})
	if err == nil {
		t.Fatal("expected error for malformed version")
	}

	var malformed *version.MalformedVersionError
	if !errors.As(err, &malformed) {
		t.Errorf("error is %T, want *MalformedVersionError", err)
	}
}

func TestParseValue_Strict(t *testing.T) {
	cfg := config.Default()
	cfg.Strict = true

	if _, err := parseValue(cfg, "1.0.0a3"); err != nil {
		t.Errorf("canonical form rejected in strict mode: %v", err)
	}
	if _, err := parseValue(cfg, "v1.0.0-alpha.3"); err == nil {
		t.Error("strict mode accepted semver notation")
	}
}

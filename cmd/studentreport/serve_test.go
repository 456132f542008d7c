package main

import (
	"strings"
	"testing"

	"github.com/nao1215/studentreport/internal/config"
)

// TestNewServeCmd tests the serve command flags.
func TestNewServeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewServeCmd()

	t.Run("has listen flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("listen")
		if flag == nil {
			t.Fatal("expected listen flag")
		}
		if flag.Shorthand != "l" {
			t.Errorf("expected shorthand 'l', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultListenAddress {
			t.Errorf("expected default %q, got %q", config.DefaultListenAddress, flag.DefValue)
		}
	})

	t.Run("has data flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("data")
		if flag == nil {
			t.Fatal("expected data flag")
		}
		if flag.Shorthand != "d" {
			t.Errorf("expected shorthand 'd', got %q", flag.Shorthand)
		}
	})
}

// TestServeCmdRejectsEmptyListen tests configuration validation.
func TestServeCmdRejectsEmptyListen(t *testing.T) {
	t.Parallel()

	cfgPath, _ := writeTestConfig(t)
	_, _, err := execute(t, "serve", "--config", cfgPath, "--listen", "")
	if err == nil || !strings.Contains(err.Error(), config.ErrEmptyListenAddress.Error()) {
		t.Errorf("expected ErrEmptyListenAddress, got %v", err)
	}
}

package main

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd

	if cmd == nil {
		t.Fatal("Expected root command to be created")
	}

	if cmd.Use != "taxgo" {
		t.Errorf("Expected root command use to be 'taxgo', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if err := cmd.Execute(); err != nil {
		t.Errorf("Expected no error for help command, got %v", err)
	}

	if buf.String() == "" {
		t.Error("Expected help command to show help text")
	}
}

func TestCommandSubcommands(t *testing.T) {
	expectedCommands := []string{
		"compare",
		"validate",
		"version",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expectedCommands {
		if !registered[name] {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestCompareCommandFlags(t *testing.T) {
	for _, flag := range []string{"format", "rules", "pretty"} {
		if compareCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected compare command to have flag %q", flag)
		}
	}

	format := compareCmd.Flags().Lookup("format")
	if format.DefValue != "table" {
		t.Errorf("Expected format flag default 'table', got %s", format.DefValue)
	}
}

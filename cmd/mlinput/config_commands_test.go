package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"config", "validate"}, "", "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatal("expected error when config exists")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, "", target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Merge mode")
	requireContains(t, out, "ask")
}

func TestConfigValidateRejectsBadMode(t *testing.T) {
	env := setupCLITestEnv(t, "[merge]\nmode = \"sometimes\"\n")
	if _, _, err := runCLI(t, []string{"config", "validate"}, "", env.configPath); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLanguagesCommand(t *testing.T) {
	env := setupCLITestEnv(t, "[catalog]\nextra = { tlh = \"Klingon\" }\n")
	out, _, err := runCLI(t, []string{"languages"}, "", env.configPath)
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	requireContains(t, out, "Persian")
	requireContains(t, out, "Klingon")
	requireContains(t, out, "TLH")
}

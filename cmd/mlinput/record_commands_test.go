package main

import (
	"errors"
	"testing"

	"mlinput/internal/document"
	"mlinput/internal/record"
)

func TestNewShowSetRemove(t *testing.T) {
	env := setupCLITestEnv(t, "")
	path := env.doc("title.toml")

	out, _, err := runCLI(t, []string{"new", path, "--default", "fa"}, "", env.configPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	requireContains(t, out, "Persian (FA)")

	if _, _, err := runCLI(t, []string{"new", path}, "", env.configPath); !errors.Is(err, document.ErrExists) {
		t.Fatalf("second new error = %v, want ErrExists", err)
	}

	if _, _, err := runCLI(t, []string{"set", path, "fa", "Salam"}, "", env.configPath); err != nil {
		t.Fatalf("set fa: %v", err)
	}
	out, _, err = runCLI(t, []string{"set", path, "EN", "Hello"}, "", env.configPath)
	if err != nil {
		t.Fatalf("set en: %v", err)
	}
	requireContains(t, out, "Set English (EN)")

	out, _, err = runCLI(t, []string{"show", path}, "", env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Salam")
	requireNotContains(t, out, "Hello")
	requireContains(t, out, "1 more language(s)")

	out, _, err = runCLI(t, []string{"show", path, "--all"}, "", env.configPath)
	if err != nil {
		t.Fatalf("show --all: %v", err)
	}
	requireContains(t, out, "Hello")

	if _, _, err := runCLI(t, []string{"remove", path, "fa"}, "", env.configPath); !errors.Is(err, record.ErrCannotRemoveDefault) {
		t.Fatalf("remove default error = %v", err)
	}
	if _, _, err := runCLI(t, []string{"remove", path, "en"}, "", env.configPath); err != nil {
		t.Fatalf("remove en: %v", err)
	}

	rec, err := document.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Has("en") || rec.Get("fa") != "Salam" {
		t.Fatalf("record = %v", rec.Entries())
	}
}

func TestNewUsesConfiguredDefaultLanguage(t *testing.T) {
	env := setupCLITestEnv(t, "[record]\ndefault_language = \"de\"\n")
	path := env.doc("title.toml")
	if _, _, err := runCLI(t, []string{"new", path}, "", env.configPath); err != nil {
		t.Fatalf("new: %v", err)
	}
	rec, err := document.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.DefaultLanguage() != "de" {
		t.Fatalf("default = %q", rec.DefaultLanguage())
	}
}

func TestSetRejectsInvalidCode(t *testing.T) {
	env := setupCLITestEnv(t, "")
	path := env.doc("title.toml")
	if _, _, err := runCLI(t, []string{"new", path}, "", env.configPath); err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, _, err := runCLI(t, []string{"set", path, "e_n", "x"}, "", env.configPath); !errors.Is(err, record.ErrInvalidLanguageCode) {
		t.Fatalf("error = %v", err)
	}
}

func TestSetWarnsOnLength(t *testing.T) {
	env := setupCLITestEnv(t, "[editor]\nmax_length = 3\n")
	path := env.doc("title.toml")
	if _, _, err := runCLI(t, []string{"new", path}, "", env.configPath); err != nil {
		t.Fatalf("new: %v", err)
	}
	_, stderr, err := runCLI(t, []string{"set", path, "en", "too long"}, "", env.configPath)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	requireContains(t, stderr, "WARN")
}

func TestReadOnlyConfigBlocksEdits(t *testing.T) {
	env := setupCLITestEnv(t, "[editor]\nread_only = true\n")
	path := env.doc("title.toml")
	if _, _, err := runCLI(t, []string{"new", path}, "", env.configPath); err != nil {
		t.Fatalf("new: %v", err)
	}
	_, _, err := runCLI(t, []string{"set", path, "en", "x"}, "", env.configPath)
	if err == nil {
		t.Fatal("expected read-only error")
	}
	requireContains(t, err.Error(), "read-only")
}

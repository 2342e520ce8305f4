package main

import (
	"errors"
	"strings"
	"testing"

	"mlinput/internal/clipboard"
	"mlinput/internal/document"
)

func newDocument(t *testing.T, env *cliTestEnv, def string, values ...string) string {
	t.Helper()
	path := env.doc("title.toml")
	if _, _, err := runCLI(t, []string{"new", path, "--default", def}, "", env.configPath); err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i+1 < len(values); i += 2 {
		if _, _, err := runCLI(t, []string{"set", path, values[i], values[i+1]}, "", env.configPath); err != nil {
			t.Fatalf("set %s: %v", values[i], err)
		}
	}
	return path
}

func TestCopyWritesRows(t *testing.T) {
	env := setupCLITestEnv(t, "")
	path := newDocument(t, env, "fa", "fa", "سلام", "en", "Hello")

	out, _, err := runCLI(t, []string{"copy", path}, "", env.configPath)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if out != "fa\tسلام\nen\tHello\n" {
		t.Fatalf("copy output = %q", out)
	}
}

func TestPasteOverwriteAndAppend(t *testing.T) {
	env := setupCLITestEnv(t, "")
	path := newDocument(t, env, "en", "en", "Hi")

	out, _, err := runCLI(t, []string{"paste", path, "--mode", "append"}, "en\tThere\nde\tHallo\n", env.configPath)
	if err != nil {
		t.Fatalf("paste append: %v", err)
	}
	requireContains(t, out, "append")
	requireContains(t, out, "2 row(s)")

	rec, err := document.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Get("en") != "Hi There" || rec.Get("de") != "Hallo" {
		t.Fatalf("after append: %v", rec.Entries())
	}

	if _, _, err := runCLI(t, []string{"paste", path, "--mode", "overwrite"}, "en\tThere\n", env.configPath); err != nil {
		t.Fatalf("paste overwrite: %v", err)
	}
	rec, _ = document.Load(path)
	if rec.Get("en") != "There" {
		t.Fatalf("after overwrite en = %q", rec.Get("en"))
	}
}

func TestPasteAskWithoutTerminalOverwrites(t *testing.T) {
	env := setupCLITestEnv(t, "[merge]\nmode = \"ask\"\n")
	path := newDocument(t, env, "en", "en", "Hi")

	out, _, err := runCLI(t, []string{"paste", path}, "en\tThere\n", env.configPath)
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	requireContains(t, out, "overwrite")
	rec, _ := document.Load(path)
	if rec.Get("en") != "There" {
		t.Fatalf("en = %q", rec.Get("en"))
	}
}

func TestPasteRejectsPlainText(t *testing.T) {
	env := setupCLITestEnv(t, "")
	path := newDocument(t, env, "en", "en", "Hi")

	_, _, err := runCLI(t, []string{"paste", path}, "just plain text", env.configPath)
	if !errors.Is(err, clipboard.ErrNotBulkData) {
		t.Fatalf("error = %v, want ErrNotBulkData", err)
	}
}

func TestPasteDryRunLeavesDocument(t *testing.T) {
	env := setupCLITestEnv(t, "")
	path := newDocument(t, env, "en", "en", "Hi")

	out, _, err := runCLI(t, []string{"paste", path, "--dry-run", "--mode", "overwrite"}, "en\tThere\n", env.configPath)
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	requireContains(t, out, "document not written")
	requireContains(t, out, "en\tThere\n")
	rec, _ := document.Load(path)
	if rec.Get("en") != "Hi" {
		t.Fatalf("en = %q", rec.Get("en"))
	}
}

func TestPasteReportsSkippedRows(t *testing.T) {
	env := setupCLITestEnv(t, "")
	path := newDocument(t, env, "en")

	out, _, err := runCLI(t, []string{"paste", path, "--mode", "overwrite"}, "-\tbad\nfa\tSalam\n", env.configPath)
	if err != nil {
		t.Fatalf("paste: %v", err)
	}
	requireContains(t, out, "Skipped")
	requireContains(t, out, "1 row(s)")
}

func TestPasteInvalidModeFlag(t *testing.T) {
	env := setupCLITestEnv(t, "")
	path := newDocument(t, env, "en")
	if _, _, err := runCLI(t, []string{"paste", path, "--mode", "merge"}, "en\tx\n", env.configPath); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestDetect(t *testing.T) {
	env := setupCLITestEnv(t, "")

	out, _, err := runCLI(t, []string{"detect"}, "en\tHello\nfa\tسلام\n", env.configPath)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.HasPrefix(out, "bulk\n") {
		t.Fatalf("detect output = %q", out)
	}
	requireContains(t, out, "Persian")

	out, _, err = runCLI(t, []string{"detect"}, "just plain text", env.configPath)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if out != "text\n" {
		t.Fatalf("detect output = %q", out)
	}
}

func TestDetectStrictSeparator(t *testing.T) {
	env := setupCLITestEnv(t, "[clipboard]\nstrict_separator = true\n")
	out, _, err := runCLI(t, []string{"detect"}, "en Hello\n", env.configPath)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if out != "text\n" {
		t.Fatalf("detect output = %q", out)
	}
}

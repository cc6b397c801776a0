package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runTOC(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	outputFmt, unique = "json", false

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTOC_StdinFlat(t *testing.T) {
	out, err := runTOC(t, "# Title\n## A\n### B\n## A\n", "--format", "flat", "--unique")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "- A (#a)\n  - B (#b)\n- A (#a-1)\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestTOC_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.md")
	if err := os.WriteFile(path, []byte("---\ntitle: X\n---\n## Hello, World! 2024\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := runTOC(t, "", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"id": "hello-world-2024"`) {
		t.Errorf("expected slug in output, got %q", out)
	}
}

func TestTOC_EmptyInput(t *testing.T) {
	out, err := runTOC(t, "no headings", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected empty array, got %q", out)
	}
}

func TestTOC_BadFormat(t *testing.T) {
	if _, err := runTOC(t, "## A", "--format", "yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontDir writes the Go fonts and a stray text file into a temp directory.
func fontDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range map[string][]byte{
		"Go-Regular.ttf": goregular.TTF,
		"Go-Bold.ttf":    gobold.TTF,
		"notes.txt":      []byte("not a font"),
	} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// run executes the CLI with an absent config file so user configuration
// never leaks into tests.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("FONTPREVIEW_PARSER", "")
	t.Setenv("FONTPREVIEW_LOG_LEVEL", "")

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInspectCommand(t *testing.T) {
	dir := fontDir(t)

	out, _, err := run(t, "inspect", filepath.Join(dir, "Go-Regular.ttf"), filepath.Join(dir, "Go-Bold.ttf"))
	if err != nil {
		t.Fatalf("inspect returned error: %v", err)
	}
	for _, want := range []string{"Go-Regular-0", "Go-Bold-1", "Go Bold", "700", "custom-font-", "Go-Regular.ttf"} {
		if !strings.Contains(out, want) {
			t.Fatalf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectCommandDirectoryAndFilter(t *testing.T) {
	dir := fontDir(t)

	out, _, err := run(t, "inspect", "--filter", "bold", dir)
	if err != nil {
		t.Fatalf("inspect returned error: %v", err)
	}
	if !strings.Contains(out, "Go Bold") {
		t.Fatalf("expected bold font in output:\n%s", out)
	}
	if strings.Contains(out, "Go Regular") {
		t.Fatalf("filter did not exclude regular font:\n%s", out)
	}
}

func TestInspectCommandGoTextParser(t *testing.T) {
	dir := fontDir(t)

	out, _, err := run(t, "--parser", "gotext", "inspect", filepath.Join(dir, "Go-Regular.ttf"))
	if err != nil {
		t.Fatalf("inspect returned error: %v", err)
	}
	if !strings.Contains(out, "N/A") {
		t.Fatalf("expected N/A for metadata gotext does not expose:\n%s", out)
	}
}

func TestInspectCommandNoValidFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("#"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := run(t, "inspect", dir)
	if err == nil {
		t.Fatal("expected error for a directory without fonts")
	}
	if want := "No valid .ttf or .otf font files found in the selected directory."; err.Error() != want {
		t.Fatalf("unexpected error: %q", err)
	}
}

func TestInspectCommandPartialFailureWarns(t *testing.T) {
	dir := fontDir(t)
	corrupt := filepath.Join(dir, "corrupt.ttf")
	if err := os.WriteFile(corrupt, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, stderr, err := run(t, "inspect", filepath.Join(dir, "Go-Regular.ttf"), corrupt)
	if err != nil {
		t.Fatalf("inspect returned error: %v", err)
	}
	if !strings.Contains(stderr, "[WARNING] Loaded 1 fonts. Failed to parse: corrupt.ttf. They may be corrupted.") {
		t.Fatalf("expected partial failure warning, got stderr:\n%s", stderr)
	}
	if !strings.Contains(out, "Go-Regular-0") {
		t.Fatalf("expected loaded font in output:\n%s", out)
	}
}

func TestCSSCommand(t *testing.T) {
	dir := fontDir(t)

	out, _, err := run(t, "css", dir)
	if err != nil {
		t.Fatalf("css returned error: %v", err)
	}
	if got := strings.Count(out, "@font-face"); got != 2 {
		t.Fatalf("expected 2 @font-face rules, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "src: url('blob:fontpreview/") {
		t.Fatalf("expected blob locators:\n%s", out)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := fontDir(t)
	regular := filepath.Join(dir, "Go-Regular.ttf")
	bold := filepath.Join(dir, "Go-Bold.ttf")

	single := filepath.Join(t.TempDir(), "single.png")
	if _, _, err := run(t, "render", "--out", single, "--text", "Hello", "--size", "32", regular, bold); err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	compared := filepath.Join(t.TempDir(), "out", "compare.png")
	if _, _, err := run(t, "render", "--out", compared, "--text", "Hello", "--size", "32", "--compare", regular, bold); err != nil {
		t.Fatalf("render --compare returned error: %v", err)
	}

	a, b := decodeWidth(t, single), decodeWidth(t, compared)
	if b <= a {
		t.Fatalf("compare image (%dpx) not wider than single image (%dpx)", b, a)
	}
}

func TestRenderCommandCompareWithID(t *testing.T) {
	dir := fontDir(t)
	out := filepath.Join(t.TempDir(), "p.png")

	_, _, err := run(t, "render", "--out", out, "--primary", "Go-Bold-1", "--compare=Go-Regular-0",
		filepath.Join(dir, "Go-Regular.ttf"), filepath.Join(dir, "Go-Bold.ttf"))
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	_, _, err = run(t, "render", "--out", out, "--compare=missing", filepath.Join(dir, "Go-Regular.ttf"), filepath.Join(dir, "Go-Bold.ttf"))
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected error for unknown comparison ID, got %v", err)
	}

	_, _, err = run(t, "render", "--out", out, "--primary", "nope", filepath.Join(dir, "Go-Regular.ttf"))
	if err == nil {
		t.Fatal("expected error for unknown primary ID")
	}
}

func decodeWidth(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "fontpreview", "config.toml")

	out, _, err := run(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output: %s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, _, err := run(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config exists")
	}
	if _, _, err := run(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite returned error: %v", err)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	out, _, err := run(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate returned error: %v", err)
	}
	if !strings.Contains(out, "ingest.parser") || !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, _, err := run(t, "--parser", "freetype", "config", "validate"); err == nil {
		t.Fatal("expected error for unknown parser")
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"1"}, {"2", "3"}}, []columnAlignment{alignRight})
	for _, want := range []string{"A", "B", "1", "3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty table without headers")
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/fontpreview/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	def := config.Default()
	if strings.Join(cfg.Ingest.Extensions, ",") != ".ttf,.otf" {
		t.Fatalf("unexpected extensions: %v", cfg.Ingest.Extensions)
	}
	if cfg.Ingest.Parser != "ximage" {
		t.Fatalf("unexpected parser: %q", cfg.Ingest.Parser)
	}
	if cfg.Preview.PixelSize != 48 || cfg.Preview.Text != def.Preview.Text {
		t.Fatalf("unexpected preview defaults: %+v", cfg.Preview)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fontpreview.toml")
	content := `
[ingest]
extensions = ["TTF", " otf ", ".woff2"]
workers = 4
parser = "GoText"

[preview]
pixel_size = 96
text = "Sphinx of black quartz"

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit path to be used, got %q (exists=%v)", resolved, exists)
	}
	if got := strings.Join(cfg.Ingest.Extensions, ","); got != ".ttf,.otf,.woff2" {
		t.Fatalf("extensions not normalized: %q", got)
	}
	if cfg.Ingest.Workers != 4 || cfg.Ingest.Parser != "gotext" {
		t.Fatalf("unexpected ingest section: %+v", cfg.Ingest)
	}
	if cfg.Preview.PixelSize != 96 || cfg.Preview.Text != "Sphinx of black quartz" {
		t.Fatalf("unexpected preview section: %+v", cfg.Preview)
	}
	if cfg.Preview.DPI != 72 {
		t.Fatalf("expected unset dpi to keep default, got %v", cfg.Preview.DPI)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level to be lower-cased, got %q", cfg.Logging.Level)
	}
}

func TestLoadProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile("fontpreview.toml", []byte("[preview]\ngap = 8\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "fontpreview.toml" {
		t.Fatalf("expected project config, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Preview.Gap != 8 {
		t.Fatalf("unexpected gap: %d", cfg.Preview.Gap)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("FONTPREVIEW_PARSER", "gotext")
	t.Setenv("FONTPREVIEW_LOG_LEVEL", "warn")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Ingest.Parser != "gotext" {
		t.Fatalf("expected parser from env, got %q", cfg.Ingest.Parser)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"pixel size", "[preview]\npixel_size = 200\n", "preview.pixel_size"},
		{"parser", "[ingest]\nparser = \"freetype\"\n", "ingest.parser"},
		{"workers", "[ingest]\nworkers = -1\n", "ingest.workers"},
		{"no extensions", "[ingest]\nextensions = []\n", "ingest.extensions"},
		{"log level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
		{"unknown key", "[preview]\nfont_size = 12\n", "parse config"},
		{"malformed", "[preview\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var parsed config.Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("sample config is not valid TOML: %v", err)
	}
	if parsed.Preview.PixelSize != config.Default().Preview.PixelSize {
		t.Fatalf("sample pixel size %d differs from default", parsed.Preview.PixelSize)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil || !exists {
		t.Fatalf("sample does not load: exists=%v err=%v", exists, err)
	}
	if cfg.Ingest.Parser != "ximage" {
		t.Fatalf("unexpected sample parser: %q", cfg.Ingest.Parser)
	}
}

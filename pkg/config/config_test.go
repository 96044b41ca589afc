package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/user/commitstory/pkg/adapters/osfilesystem"
	"github.com/user/commitstory/pkg/commit"
	"github.com/user/commitstory/pkg/format"
	"github.com/user/commitstory/pkg/mocks"
	"github.com/user/commitstory/pkg/ports"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Width != 1080 || cfg.Height != 1920 {
		t.Errorf("expected 1080x1920, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Engine != EngineChromedp {
		t.Errorf("expected chromedp engine, got %q", cfg.Engine)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout())
	}
	if cfg.BodyFormat != format.NamePlain {
		t.Errorf("expected plain body format, got %q", cfg.BodyFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commitstory.yaml")
	content := "template: story.html\nengine: rod\ntimeout_sec: 10\nbody_format: markdown\nsummary: out/summary.md\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TemplatePath != "story.html" {
		t.Errorf("expected template story.html, got %q", cfg.TemplatePath)
	}
	if cfg.Engine != EngineRod {
		t.Errorf("expected rod engine, got %q", cfg.Engine)
	}
	if cfg.TimeoutSec != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.TimeoutSec)
	}
	if cfg.BodyFormat != format.NameMarkdown {
		t.Errorf("expected markdown, got %q", cfg.BodyFormat)
	}
	if cfg.SummaryPath != "out/summary.md" {
		t.Errorf("unexpected summary path %q", cfg.SummaryPath)
	}
	// Unset keys keep defaults
	if cfg.Width != 1080 || cfg.Height != 1920 {
		t.Errorf("expected default viewport, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"playwright", func(c *Config) { c.Engine = EnginePlaywright }, nil},
		{"rod", func(c *Config) { c.Engine = EngineRod }, nil},
		{"unknown engine", func(c *Config) { c.Engine = "webkit" }, ErrUnknownEngine},
		{"unknown body format", func(c *Config) { c.BodyFormat = "rst" }, format.ErrUnknownBodyFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	cfg := Defaults()
	cfg.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero width")
	}
	cfg = Defaults()
	cfg.TimeoutSec = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative timeout")
	}
}

func TestMetadataFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want commit.Metadata
	}{
		{
			name: "nothing set",
			env:  map[string]string{},
			want: DefaultMetadata(),
		},
		{
			name: "all set",
			env: map[string]string{
				EnvCommitMessage: "Fix bug",
				EnvCommitSHA:     "abcdef1234567",
				EnvFilesChanged:  "1",
				EnvLinesAdded:    "5",
				EnvLinesDeleted:  "2",
				EnvOutputPath:    "out.png",
			},
			want: commit.Metadata{
				Message:      "Fix bug",
				SHA:          "abcdef1234567",
				FilesChanged: "1",
				LinesAdded:   "5",
				LinesDeleted: "2",
				OutputPath:   "out.png",
			},
		},
		{
			name: "empty values fall back",
			env: map[string]string{
				EnvCommitMessage: "",
				EnvFilesChanged:  "",
				EnvLinesAdded:    "7",
			},
			want: commit.Metadata{
				Message:      DefaultCommitMessage,
				SHA:          DefaultCommitSHA,
				FilesChanged: DefaultCount,
				LinesAdded:   "7",
				LinesDeleted: DefaultCount,
				OutputPath:   DefaultOutputPath,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MetadataFromEnv(lookupFrom(tt.env), DefaultMetadata())
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergeCommitInfo(t *testing.T) {
	base := Config{OutputPath: "story.png"}.BaseMetadata()
	merged := MergeCommitInfo(base, ports.CommitInfo{
		Message:      "From git",
		Hash:         "0123456789abcdef",
		FilesChanged: 2,
		LinesAdded:   10,
		LinesDeleted: 1,
	})

	want := commit.Metadata{
		Message:      "From git",
		SHA:          "0123456789abcdef",
		FilesChanged: "2",
		LinesAdded:   "10",
		LinesDeleted: "1",
		OutputPath:   "story.png",
	}
	if merged != want {
		t.Errorf("got %+v, want %+v", merged, want)
	}

	// Environment still wins over git
	final := MetadataFromEnv(lookupFrom(map[string]string{EnvCommitMessage: "From env"}), merged)
	if final.Message != "From env" || final.SHA != "0123456789abcdef" {
		t.Errorf("unexpected precedence result: %+v", final)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Defaults()
	cfg.TemplatePath = "from-file.html"

	cfg.ApplyEnv(lookupFrom(map[string]string{
		EnvTemplatePath: "from-env.html",
		EnvChromePath:   "/opt/chrome",
	}))

	if cfg.TemplatePath != "from-env.html" {
		t.Errorf("expected env template path, got %q", cfg.TemplatePath)
	}
	if cfg.ChromePath != "/opt/chrome" {
		t.Errorf("expected env chrome path, got %q", cfg.ChromePath)
	}

	cfg.ApplyEnv(lookupFrom(map[string]string{EnvTemplatePath: ""}))
	if cfg.TemplatePath != "from-env.html" {
		t.Error("empty env value should not override")
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("prefers .env", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".env"), "COMMITSTORY_TEST_A=from-env\n")
		writeFile(t, filepath.Join(dir, ".env.development"), "COMMITSTORY_TEST_A=from-dev\n")
		t.Setenv("COMMITSTORY_TEST_A", "")
		os.Unsetenv("COMMITSTORY_TEST_A")

		path, err := LoadDotEnv(osfilesystem.New(), dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filepath.Base(path) != ".env" {
			t.Errorf("expected .env to be loaded, got %q", path)
		}
		if got := os.Getenv("COMMITSTORY_TEST_A"); got != "from-env" {
			t.Errorf("expected from-env, got %q", got)
		}
	})

	t.Run("falls back to .env.development", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".env.development"), "COMMITSTORY_TEST_B=from-dev\n")
		t.Setenv("COMMITSTORY_TEST_B", "")
		os.Unsetenv("COMMITSTORY_TEST_B")

		path, err := LoadDotEnv(osfilesystem.New(), dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filepath.Base(path) != ".env.development" {
			t.Errorf("expected .env.development, got %q", path)
		}
		if got := os.Getenv("COMMITSTORY_TEST_B"); got != "from-dev" {
			t.Errorf("expected from-dev, got %q", got)
		}
	})

	t.Run("does not override process env", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".env"), "COMMITSTORY_TEST_C=from-file\n")
		t.Setenv("COMMITSTORY_TEST_C", "from-process")

		if _, err := LoadDotEnv(osfilesystem.New(), dir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := os.Getenv("COMMITSTORY_TEST_C"); got != "from-process" {
			t.Errorf("expected process value to win, got %q", got)
		}
	})

	t.Run("none found", func(t *testing.T) {
		path, err := LoadDotEnv(osfilesystem.New(), t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "" {
			t.Errorf("expected empty path, got %q", path)
		}
	})

	t.Run("stat error", func(t *testing.T) {
		fsys := mocks.NewFileSystem()
		fsys.ExistsFunc = func(path string) (bool, error) {
			return false, errors.New("permission denied")
		}

		if _, err := LoadDotEnv(fsys, "."); err == nil {
			t.Error("expected error from Exists to be returned")
		}
	})
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.TemplatePath = "story.html"
	cfg.ChromePath = "/opt/chrome"
	meta := DefaultMetadata()

	oc := cfg.ToOrchestratorConfig(meta)

	if oc.Metadata != meta {
		t.Errorf("metadata not passed through: %+v", oc.Metadata)
	}
	if oc.TemplatePath != "story.html" || oc.ChromePath != "/opt/chrome" {
		t.Errorf("unexpected paths: %+v", oc)
	}
	if oc.Width != 1080 || oc.Height != 1920 || oc.Timeout != 30*time.Second {
		t.Errorf("unexpected viewport/timeout: %+v", oc)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

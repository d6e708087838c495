package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg.Speak.Mode != nil || cfg.Path.Template != nil {
		t.Errorf("cfg = %+v, want zero value", cfg)
	}
}

func TestLoadEmptyPathFails(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadParsesSections(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	content := `
[speak]
mode = "retell"
level = "medium"

[path]
template = "basic"
chunk-words = 150

[llm]
provider = "mock"
max-calls = 10
`
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Speak.Mode == nil || *cfg.Speak.Mode != "retell" {
		t.Errorf("speak.mode = %v, want retell", cfg.Speak.Mode)
	}
	if cfg.Speak.Topic != nil {
		t.Errorf("speak.topic = %v, want nil (unset)", cfg.Speak.Topic)
	}
	if cfg.Path.ChunkWords == nil || *cfg.Path.ChunkWords != 150 {
		t.Errorf("path.chunk-words = %v, want 150", cfg.Path.ChunkWords)
	}
	if cfg.LLM.MaxCalls == nil || *cfg.LLM.MaxCalls != 10 {
		t.Errorf("llm.max-calls = %v, want 10", cfg.LLM.MaxCalls)
	}
}

func TestLoadMalformedFails(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte("[speak\nmode="), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

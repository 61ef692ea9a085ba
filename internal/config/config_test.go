package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Input.Path != "brain_slice.png" {
		t.Errorf("input path: got %q, want brain_slice.png", cfg.Input.Path)
	}
	if cfg.Output.Path != "masks.json" {
		t.Errorf("output path: got %q, want masks.json", cfg.Output.Path)
	}
	if cfg.Output.OverlayPath != "" {
		t.Errorf("overlay path default: got %q, want empty", cfg.Output.OverlayPath)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level: got %q, want info", cfg.Log.Level)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Input.Path != "brain_slice.png" {
		t.Errorf("input path: got %q, want default", cfg.Input.Path)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brainseg.yaml")
	body := `
input:
  path: slice_042.png
output:
  path: out/masks.json
  overlayPath: out/overlay.png
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input.Path != "slice_042.png" {
		t.Errorf("input path: got %q, want slice_042.png", cfg.Input.Path)
	}
	if cfg.Output.Path != "out/masks.json" {
		t.Errorf("output path: got %q, want out/masks.json", cfg.Output.Path)
	}
	if cfg.Output.OverlayPath != "out/overlay.png" {
		t.Errorf("overlay path: got %q, want out/overlay.png", cfg.Output.OverlayPath)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brainseg.yaml")
	if err := os.WriteFile(path, []byte("input:\n  path: other.png\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Input.Path != "other.png" {
		t.Errorf("input path: got %q, want other.png", cfg.Input.Path)
	}
	if cfg.Output.Path != "masks.json" {
		t.Errorf("output path: got %q, want default masks.json", cfg.Output.Path)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brainseg.yaml")
	if err := os.WriteFile(path, []byte("input: [unclosed"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

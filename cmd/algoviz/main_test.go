package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/config"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommandLayersPresetAndFlags(t *testing.T) {
	out, err := execute(t, "config", "--preset", "search", "--size", "12", "--target", "7")
	if err != nil {
		t.Fatal(err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config output is not yaml: %v\n%s", err, out)
	}
	if cfg.Algorithm != "Binary Search" {
		t.Errorf("expected preset algorithm, got %s", cfg.Algorithm)
	}
	if cfg.Dataset.Size != 12 || cfg.Target != "7" {
		t.Errorf("flags should override preset, got size %d target %q", cfg.Dataset.Size, cfg.Target)
	}
	if cfg.Delay != 0.5 {
		t.Errorf("unchanged flags should keep preset delay, got %v", cfg.Delay)
	}
}

func TestConfigCommandSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algoviz.toml")
	if _, err := execute(t, "config", "--theme", "ocean", "-o", path); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Theme != "ocean" {
		t.Errorf("expected saved theme, got %s", cfg.Display.Theme)
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := execute(t, "config", "--preset", "nope")
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("expected unknown preset error, got %v", err)
	}
}

func TestInvalidDelayFlag(t *testing.T) {
	_, err := execute(t, "config", "--delay", "5")
	if err == nil {
		t.Error("expected delay outside range to be rejected")
	}
}

func TestListCommands(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Bubble Sort", "Merge Sort", "Ternary Search"} {
		if !strings.Contains(out, name) {
			t.Errorf("list missing %s", name)
		}
	}

	out, err = execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("presets missing %s", name)
		}
	}
}

func TestRunHeadless(t *testing.T) {
	out, err := execute(t, "run", "binary", "--preset", "tiny", "--delay", "0.01", "--seed", "3", "--target", "500", "--no-clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Binary Search") {
		t.Errorf("expected title in output:\n%s", out)
	}
	if !strings.Contains(out, "500 not found") {
		t.Errorf("expected a not-found summary:\n%s", out)
	}
}

func TestRunRejectsMissingTarget(t *testing.T) {
	_, err := execute(t, "run", "ternary", "--preset", "tiny", "--delay", "0.01", "--target", "")
	if err == nil {
		t.Fatal("expected search without target to fail")
	}
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--size", "20", "--seed", "9")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Bubble Sort", "Heap Sort", "Binary Search"} {
		if !strings.Contains(out, name) {
			t.Errorf("bench output missing %s:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "index") {
		t.Errorf("searches for the middle value should find it:\n%s", out)
	}
}

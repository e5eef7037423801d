package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tpb/internal/apperr"
	"tpb/pkg/models"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(MirrorEnv, "")
	return home
}

func TestFirstRunCreatesEmptyFile(t *testing.T) {
	home := setHome(t)

	_, err := LoadConfig()
	if !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("expected ErrUnconfigured on first run, got=%v", err)
	}

	info, err := os.Stat(filepath.Join(home, ".config", "tpb.json"))
	if err != nil {
		t.Fatalf("expected config file to be created, %s", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty config file, got size=%d", info.Size())
	}
}

func TestSaveThenLoad(t *testing.T) {
	home := setHome(t)

	if err := SaveConfig(&models.Config{Mirror: "thepiratebay0.org"}); err != nil {
		t.Fatalf("expected to save config, %s", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".config", "tpb.json"))
	if err != nil {
		t.Fatalf("expected to read config file, %s", err)
	}
	expected := "{\n    \"mirror\": \"thepiratebay0.org\"\n}\n"
	if string(data) != expected {
		t.Fatalf("expected file content %q, got=%q", expected, data)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected to load config, %s", err)
	}
	if cfg.Mirror != "thepiratebay0.org" {
		t.Fatalf("expected mirror thepiratebay0.org, got=%s", cfg.Mirror)
	}
}

func TestMalformedConfig(t *testing.T) {
	home := setHome(t)
	path := filepath.Join(home, ".config", "tpb.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{mirror:"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig()
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("expected config error, got=%v", err)
	}
	if errors.Is(err, ErrUnconfigured) {
		t.Fatalf("malformed config must not be reported as unconfigured")
	}
}

func TestConfigPathNotRegularFile(t *testing.T) {
	home := setHome(t)
	if err := os.MkdirAll(filepath.Join(home, ".config", "tpb.json"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("expected config error for directory path, got=%v", err)
	}
}

func TestMergeWithFlags(t *testing.T) {
	tests := []struct {
		name     string
		stored   *models.Config
		flag     string
		env      string
		expected string
	}{
		{name: "flag wins", stored: &models.Config{Mirror: "a.org"}, flag: "b.org", env: "c.org", expected: "b.org"},
		{name: "file over env", stored: &models.Config{Mirror: "a.org"}, env: "c.org", expected: "a.org"},
		{name: "env fallback", stored: &models.Config{}, env: "c.org", expected: "c.org"},
		{name: "unconfigured", stored: nil, env: "c.org", expected: "c.org"},
		{name: "nothing", stored: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Setenv(MirrorEnv, tt.env)
		got := MergeWithFlags(tt.stored, tt.flag)
		if got.Mirror != tt.expected {
			t.Fatalf("%s: expected mirror %q, got=%q", tt.name, tt.expected, got.Mirror)
		}
	}
}

func TestResolveMirror(t *testing.T) {
	setHome(t)

	if _, err := ResolveMirror(""); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("expected unconfigured error, got=%v", err)
	}

	mirror, err := ResolveMirror("flag.example")
	if err != nil {
		t.Fatalf("expected flag mirror to satisfy an unconfigured store, %s", err)
	}
	if mirror != "flag.example" {
		t.Fatalf("expected flag.example, got=%s", mirror)
	}

	if err := SaveConfig(&models.Config{Mirror: "stored.example"}); err != nil {
		t.Fatal(err)
	}
	mirror, err = ResolveMirror("")
	if err != nil || mirror != "stored.example" {
		t.Fatalf("expected stored.example, got=%s (%v)", mirror, err)
	}
}

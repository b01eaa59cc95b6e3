package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, "color: never\nformat: json\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Color != "never" || cfg.Format != "json" {
			t.Fatalf("cfg = %+v", cfg)
		}
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "color: always\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Color != "always" {
			t.Fatalf("color = %q, want %q", cfg.Color, "always")
		}
		if cfg.Format != Default().Format {
			t.Fatalf("format = %q, want default %q", cfg.Format, Default().Format)
		}
	})

	t.Run("invalid color mode", func(t *testing.T) {
		path := writeConfig(t, "color: sometimes\n")

		_, err := Load(path)
		if err == nil {
			t.Fatal("color mode should be invalid")
		}
		t.Log(err)
	})

	t.Run("invalid format", func(t *testing.T) {
		path := writeConfig(t, "format: xml\n")

		_, err := Load(path)
		if err == nil {
			t.Fatal("format should be invalid")
		}
		t.Log(err)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("explicitly given config file must exist")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "color: [\n")

		_, err := Load(path)
		if err == nil {
			t.Fatal("malformed yaml should fail")
		}
	})
}

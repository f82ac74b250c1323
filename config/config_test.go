package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "Blog" {
		t.Errorf("default name = %q, want Blog", cfg.Name)
	}
	if cfg.URL != "http://localhost/" {
		t.Errorf("default url = %q, want http://localhost/", cfg.URL)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "name: My Site\nurl: https://example.com/\nauthor: Jo\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "My Site" || cfg.URL != "https://example.com/" || cfg.Author != "Jo" {
		t.Errorf("Load = %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("name: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("malformed site.yaml should be fatal")
	}
}

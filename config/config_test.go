package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_XML(t *testing.T) {
	path := writeConfig(t, "config.xml", `
<config>
    <visualizer_path>/usr/bin/display</visualizer_path>
    <repository_path>/path/to/repository</repository_path>
    <target_file>example.txt</target_file>
</config>
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ViewerPath != "/usr/bin/display" {
		t.Errorf("ViewerPath = %q", cfg.ViewerPath)
	}
	if cfg.RepositoryPath != "/path/to/repository" {
		t.Errorf("RepositoryPath = %q", cfg.RepositoryPath)
	}
	if cfg.TargetFile != "example.txt" {
		t.Errorf("TargetFile = %q", cfg.TargetFile)
	}
	if cfg.Output.Format != "dot" {
		t.Errorf("Output.Format = %q, expected default dot", cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_XMLWithOutputSection(t *testing.T) {
	path := writeConfig(t, "config.xml", `
<config>
    <repository_path>/repo</repository_path>
    <target_file>a.txt</target_file>
    <strict_match>true</strict_match>
    <output>
        <format>mermaid</format>
        <path>graph.mmd</path>
    </output>
</config>
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.StrictMatch {
		t.Error("StrictMatch = false")
	}
	if cfg.Output.Format != "mermaid" || cfg.Output.Path != "graph.mmd" {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
visualizer_path: /usr/bin/display
repository_path: /repo
target_file: a.txt
output:
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RepositoryPath != "/repo" || cfg.TargetFile != "a.txt" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q", cfg.Output.Format)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "dot" {
		t.Errorf("Output.Format = %q, expected dot", cfg.Output.Format)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.xml")); err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}

func TestLoad_MalformedXML(t *testing.T) {
	path := writeConfig(t, "config.xml", "<config><unterminated>")
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on malformed XML")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted empty repository path")
	}

	cfg.RepositoryPath = "/repo"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted empty target file")
	}

	cfg.TargetFile = "a.txt"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

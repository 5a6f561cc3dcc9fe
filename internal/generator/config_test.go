package generator

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enumgen.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
dialect: sqlite
dsn: file:ref.db
trigger:
  marker: stammdaten
java:
  package: com.example.masterdata
  output: src/main/java/com/example/masterdata
go:
  package: refdata
  output: internal/refdata
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dialect != "sqlite" {
		t.Errorf("Dialect = %q", cfg.Dialect)
	}
	if cfg.Trigger.Marker != "stammdaten" {
		t.Errorf("Trigger.Marker = %q", cfg.Trigger.Marker)
	}
	if cfg.Java.Package != "com.example.masterdata" {
		t.Errorf("Java.Package = %q", cfg.Java.Package)
	}
	if cfg.Java.Suffix != "Enum" {
		t.Errorf("Java.Suffix default = %q, want Enum", cfg.Java.Suffix)
	}
	if cfg.Go.Package != "refdata" {
		t.Errorf("Go.Package = %q", cfg.Go.Package)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadConfigAllowList(t *testing.T) {
	path := writeConfig(t, `
dialect: mysql
dsn: user:pass@tcp(localhost:3306)/ref
trigger:
  tables: [status, kategorie]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Trigger.Tables) != 2 {
		t.Errorf("Trigger.Tables = %v", cfg.Trigger.Tables)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Dialect: "sqlite", DSN: "x", Trigger: Trigger{Marker: "m"}}, false},
		{"missing dialect", Config{DSN: "x", Trigger: Trigger{Marker: "m"}}, true},
		{"missing dsn", Config{Dialect: "sqlite", Trigger: Trigger{Marker: "m"}}, true},
		{"both trigger modes", Config{Dialect: "sqlite", DSN: "x", Trigger: Trigger{Marker: "m", Tables: []string{"t"}}}, true},
		{"no trigger", Config{Dialect: "sqlite", DSN: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

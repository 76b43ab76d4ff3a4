// internal/core/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

const cleanTOML = `
[general]
  hosts = ["host-a.example", "host-b.example"]
  loglevel = "warning"

[[listen.c2s]]
  port = 5222

  [listen.c2s.tls]
    module = "just_tls"
    certfile = "priv/cert.pem"

[auth]
  methods = ["rdbms"]

[shaper.normal]
  max_rate = 1000
`

func TestLoad_CleanTOML(t *testing.T) {
	path := writeDoc(t, "mongooseim.toml", cleanTOML)

	res, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(res.Tenants) != 2 || res.Tenants[0] != "host-a.example" {
		t.Errorf("Tenants = %v, want the two declared hosts", res.Tenants)
	}
	if len(res.Options) == 0 {
		t.Errorf("Options empty, want the compiled directives")
	}
}

func TestLoad_CleanYAML(t *testing.T) {
	path := writeDoc(t, "mongooseim.yaml", `
general:
  hosts:
    - host-a.example
  loglevel: warning
listen:
  c2s:
    - port: 5222
`)

	res, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(res.Tenants) != 1 || res.Tenants[0] != "host-a.example" {
		t.Errorf("Tenants = %v, want [host-a.example]", res.Tenants)
	}
}

// The two tokenizers must produce the same compiled output for the
// same document shape.
func TestLoad_FormatAgnostic(t *testing.T) {
	tomlPath := writeDoc(t, "doc.toml", `
[general]
  hosts = ["a.example"]
  loglevel = "info"
`)
	yamlPath := writeDoc(t, "doc.yaml", `
general:
  hosts: ["a.example"]
  loglevel: info
`)

	fromTOML, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load(toml) error = %v", err)
	}
	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}
	if len(fromTOML.Options) != len(fromYAML.Options) {
		t.Errorf("option counts differ: toml %d, yaml %d", len(fromTOML.Options), len(fromYAML.Options))
	}
}

func TestLoad_DocumentWithErrors(t *testing.T) {
	path := writeDoc(t, "broken.toml", `
[general]
  hosts = ["host-a.example"]
  loglevel = "verbose"

[listen]
  [[listen.c2s]]
    port = "not-a-number"
`)

	res, err := Load(path)
	if err == nil {
		t.Fatalf("Load() error = nil, want the aggregated errors")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2: %v", len(res.Errors), res.Errors)
	}
	msg := err.Error()
	if !strings.Contains(msg, "general.loglevel") || !strings.Contains(msg, "listen.c2s.port") {
		t.Errorf("aggregated error = %q, want both paths named", msg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("Load() error = nil, want a read failure")
	}
}

func TestReadDocument_UnsupportedFormat(t *testing.T) {
	path := writeDoc(t, "doc.json", `{}`)
	if _, err := ReadDocument(path); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("ReadDocument() error = %v, want unsupported format", err)
	}
}

func TestReadDocument_Malformed(t *testing.T) {
	path := writeDoc(t, "doc.toml", `this is not toml = = =`)
	if _, err := ReadDocument(path); err == nil {
		t.Fatalf("ReadDocument() error = nil, want a tokenize failure")
	}
}

func TestNormalize(t *testing.T) {
	in := map[string]any{
		"a": int64(5),
		"b": []map[string]any{{"c": int64(1)}},
		"d": []any{int64(2), "x"},
	}
	out, ok := normalize(in).(map[string]any)
	if !ok {
		t.Fatalf("normalize() did not return a table")
	}
	if out["a"] != 5 {
		t.Errorf("a = %#v, want int 5", out["a"])
	}
	list, ok := out["b"].([]any)
	if !ok {
		t.Fatalf("b = %#v, want []any", out["b"])
	}
	if list[0].(map[string]any)["c"] != 1 {
		t.Errorf("b[0].c = %#v, want int 1", list[0])
	}
	if out["d"].([]any)[0] != 2 {
		t.Errorf("d[0] = %#v, want int 2", out["d"].([]any)[0])
	}
}

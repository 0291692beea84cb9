package pkgconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, `
int: 42
bool: true
float: 3.14
string: hi
binary: aGVsbG8=
array: "a, b,,c"
list:
  - http://localhost:3000
  - https://example.com
map: "k1:v1, k2:v2,broken"
`)

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	defer func() {
		if err := cfg.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if got := cfg.GetInt("int"); got != 42 {
		t.Fatalf("GetInt: expected 42, got %d", got)
	}
	if got := cfg.GetBool("bool"); !got {
		t.Fatalf("GetBool: expected true")
	}
	if got := cfg.GetFloat("float"); got != 3.14 {
		t.Fatalf("GetFloat: expected 3.14, got %v", got)
	}
	if got := cfg.GetString("string"); got != "hi" {
		t.Fatalf("GetString: expected hi, got %q", got)
	}
	if got := string(cfg.GetBinary("binary")); got != "hello" {
		t.Fatalf("GetBinary: expected hello, got %q", got)
	}
	if got := cfg.GetArray("array"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("GetArray: unexpected value: %#v", got)
	}
	if got := cfg.GetArray("list"); !reflect.DeepEqual(got, []string{"http://localhost:3000", "https://example.com"}) {
		t.Fatalf("GetArray list: unexpected value: %#v", got)
	}
	if got := cfg.GetArray("missing"); len(got) != 0 {
		t.Fatalf("GetArray missing: expected empty, got %#v", got)
	}
	if got := cfg.GetMap("map"); !reflect.DeepEqual(got, map[string]string{"k1": "v1", "k2": "v2"}) {
		t.Fatalf("GetMap: unexpected value: %#v", got)
	}
}

func TestViperGetBinaryInvalid(t *testing.T) {
	cfg, err := NewViper(writeConfigFile(t, "binary: not-base64\n"))
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetBinary("binary"); got != nil {
		t.Fatalf("expected nil for invalid base64, got %v", got)
	}
}

func TestViperEnvOverride(t *testing.T) {
	t.Setenv("GOFAULT_FAULT_FORMAT", "text")

	cfg, err := NewViper(writeConfigFile(t, "fault:\n  format: json\nlog:\n  level: info\n"))
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetString("fault.format"); got != "text" {
		t.Fatalf("expected env override, got %q", got)
	}
	if got := cfg.GetString("log.level"); got != "info" {
		t.Fatalf("expected file value, got %q", got)
	}
}

func TestNewViperMissingFile(t *testing.T) {
	if _, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

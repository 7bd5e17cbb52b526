package profile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stremovskyy/go-nvp/consts"
)

func TestAPISignatureNVP(t *testing.T) {
	p := NewAPISignature("seller", "secret", "sig")
	if got := p.NVP().Keys(); !reflect.DeepEqual(got, []string{"USER", "PWD", "SIGNATURE"}) {
		t.Fatalf("keys = %v", got)
	}

	withSubject := p.WithSubject("merchant@example.com")
	if got := withSubject.NVP().Value("SUBJECT"); got != "merchant@example.com" {
		t.Fatalf("SUBJECT = %q", got)
	}
	if p.Subject != "" {
		t.Fatalf("WithSubject must not modify the receiver")
	}
	if !p.IsAPISignature() {
		t.Fatalf("api signature profiles use the api-3t host")
	}
}

func TestAPISignatureStringMasksSecrets(t *testing.T) {
	s := NewAPISignature("seller", "secret", "sig-value").String()
	if strings.Contains(s, "secret") || strings.Contains(s, "sig-value") {
		t.Fatalf("secrets leaked: %s", s)
	}
	if !strings.Contains(s, "seller") {
		t.Fatalf("username missing: %s", s)
	}
}

func TestValidate(t *testing.T) {
	if err := NewAPISignature("u", "p", "s").Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := NewAPISignature("u", " ", "").Validate()
	if err == nil || !strings.Contains(err.Error(), "password, signature") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFromLookup(t *testing.T) {
	env := func(m map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := m[k]
			return v, ok
		}
	}

	p, e, err := fromLookup(env(map[string]string{
		EnvUsername: "u", EnvPassword: "p", EnvSignature: "s", EnvEnvironment: "live",
	}))
	if err != nil || p.Username != "u" || e != consts.Live {
		t.Fatalf("unexpected result: %v %v %v", p, e, err)
	}

	_, e, err = fromLookup(env(map[string]string{EnvUsername: "u", EnvPassword: "p", EnvSignature: "s"}))
	if err != nil || e != consts.Sandbox {
		t.Fatalf("default environment must be sandbox: %v %v", e, err)
	}

	if _, _, err := fromLookup(env(nil)); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
	if _, _, err := fromLookup(env(map[string]string{EnvUsername: "u"})); err == nil {
		t.Fatalf("expected missing credentials error")
	}
	if _, _, err := fromLookup(env(map[string]string{
		EnvUsername: "u", EnvPassword: "p", EnvSignature: "s", EnvEnvironment: "moon",
	})); err == nil {
		t.Fatalf("expected unknown environment error")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paypal.toml")
	content := `environment = "beta-sandbox"
version = "98.0"

[profile]
username = "seller_api1.example.com"
password = "secret"
signature = "sig"
subject = "merchant@example.com"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.Version != "98.0" || f.Profile.Username != "seller_api1.example.com" || f.Profile.Subject != "merchant@example.com" {
		t.Fatalf("unexpected file: %+v", f)
	}
	if e, err := f.Env(); err != nil || e != consts.BetaSandbox {
		t.Fatalf("Env() = %v, %v", e, err)
	}
}

func TestParseFileErrors(t *testing.T) {
	tests := map[string]string{
		"bad toml":            "environment = ",
		"missing credentials": "[profile]\nusername = \"u\"\n",
		"unknown environment": "environment = \"moon\"\n[profile]\nusername = \"u\"\npassword = \"p\"\nsignature = \"s\"\n",
		"unknown log level":   "log_level = \"loud\"\n[profile]\nusername = \"u\"\npassword = \"p\"\nsignature = \"s\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseFile([]byte(content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	charmlog "github.com/charmbracelet/log"

	sdklog "github.com/stremovskyy/go-nvp/log"
	"github.com/stremovskyy/go-nvp/profile"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDecodePrintsPairsAndErrors(t *testing.T) {
	out, err := run(t, "", "decode", "ACK=Failure&CORRELATIONID=c1&L_ERRORCODE0=10002&L_SHORTMESSAGE0=Security+error&L_LONGMESSAGE0=Security+header+is+not+valid&L_SEVERITYCODE0=Error")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, want := range []string{"Failure", "CORRELATIONID", "c1", "10002 Security error: Security header is not valid", "Error"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "L_ERRORCODE0") {
		t.Fatalf("error keys must not be listed as pairs:\n%s", out)
	}
}

func TestDecodeReadsStdin(t *testing.T) {
	out, err := run(t, "ACK=Success&TOKEN=EC-1\n", "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out, "EC-1") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "  ", "decode"); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestDecodeJSON(t *testing.T) {
	out, err := run(t, "", "decode", "--json", "ACK=Success&TOKEN=EC-1&L_ERRORCODE0=11607&L_SHORTMESSAGE0=Duplicate+Request")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, want := range []string{`"ack": "Success"`, `"key": "TOKEN"`, `"value": "EC-1"`, `"Code": "11607"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output misses %s:\n%s", want, out)
		}
	}
}

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv(profile.EnvUsername, "cli_api1.example.com")
	t.Setenv(profile.EnvPassword, "secret")
	t.Setenv(profile.EnvSignature, "sig")
	t.Setenv(profile.EnvEnvironment, "sandbox")
}

func TestRefundDryRun(t *testing.T) {
	setCredentials(t)

	out, err := run(t, "", "--dry-run", "refund", "9XY", "--amount", "5.00", "--currency", "EUR")
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	for _, want := range []string{"dry run", "https://api-3t.sandbox.paypal.com/nvp", "METHOD=RefundTransaction", "REFUNDTYPE=Partial", "AMT=5.00", "CURRENCYCODE=EUR", "PWD=***"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "secret") {
		t.Fatalf("password leaked:\n%s", out)
	}
}

func TestManageCallsEndpoint(t *testing.T) {
	setCredentials(t)

	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostForm.Get("ACTION"); got != "Suspend" {
			t.Errorf("ACTION = %q", got)
		}
		_, _ = w.Write([]byte("PROFILEID=I-42&ACK=Success"))
	}))
	defer ts.Close()

	out, err := run(t, "", "--endpoint", ts.URL, "manage", "I-42", "suspend")
	if err != nil {
		t.Fatalf("manage: %v", err)
	}
	if !strings.Contains(out, "I-42") || atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("unexpected output (%d hits):\n%s", hits, out)
	}

	if _, err := run(t, "", "manage", "I-42", "pause"); err == nil {
		t.Fatalf("expected unknown action error")
	}
}

func TestFailureAckIsCommandError(t *testing.T) {
	setCredentials(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ACK=Failure&L_ERRORCODE0=11551&L_SHORTMESSAGE0=Profile+ID+is+not+valid"))
	}))
	defer ts.Close()

	_, err := run(t, "", "--endpoint", ts.URL, "profile", "I-0")
	if err == nil || !strings.Contains(err.Error(), "11551") {
		t.Fatalf("expected failure error, got %v", err)
	}
}

func TestConfigFileCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paypal.toml")
	content := "environment = \"live\"\n[profile]\nusername = \"u\"\npassword = \"p\"\nsignature = \"s\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := run(t, "", "--config", path, "--dry-run", "details", "?token=EC-7&PayerID=P1")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if !strings.Contains(out, "https://api-3t.paypal.com/nvp") || !strings.Contains(out, "TOKEN=EC-7") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestMissingCredentials(t *testing.T) {
	for _, k := range []string{profile.EnvUsername, profile.EnvPassword, profile.EnvSignature, profile.EnvSubject} {
		t.Setenv(k, "")
	}

	_, err := run(t, "", "refund", "9XY")
	if err == nil || !strings.Contains(err.Error(), profile.EnvUsername) {
		t.Fatalf("expected credentials error, got %v", err)
	}
}

func TestSDKLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := sdkLogger{newLogger(&buf, charmlog.InfoLevel)}

	l.Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug must be filtered at info: %s", buf.String())
	}
	l.SetLevel(sdklog.LevelDebug)
	l.Debugf("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("debug missing after SetLevel: %s", buf.String())
	}
}

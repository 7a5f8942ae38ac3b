package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kit "healthdash/internal/platform/testkit"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"", "debug"},
		{"   nonsense   ", "debug"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

// Init is process-wide and runs once, so everything that depends on it lives in one test
func TestInit_Named_C_File(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "api.log")

	Init(Options{
		Level:          "info",
		Format:         "json",
		Service:        "healthdash-test",
		Writer:         &buf,
		File:           file,
		FileMaxMB:      1,
		FileMaxBackups: 1,
	})

	Get().Info().Msg("root-msg")
	Named("checkin").Info().Msg("named-msg")

	ctx := WithRequest(context.Background(), "req-123", "user-abc")
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Debug().Msg("filtered-by-level")

	out := buf.String()
	kit.MustContain(t, out, `"message":"root-msg"`)
	kit.MustContain(t, out, `"component":"checkin"`)
	kit.MustContain(t, out, `"request_id":"req-123"`)
	kit.MustContain(t, out, `"user_id":"user-abc"`)
	kit.MustContain(t, out, `"service":"healthdash-test"`)
	if strings.Contains(out, "filtered-by-level") {
		t.Fatalf("debug line should be filtered at info level")
	}

	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("rotating file not written: %v", err)
	}
	kit.MustContain(t, string(b), "ctx-msg")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_FILE", "/tmp/x.log")
	t.Setenv("LOG_FILE_MAX_MB", "7")

	o := FromEnv()
	if o.Level != "warn" || o.Format != "json" {
		t.Fatalf("level/format = %q/%q", o.Level, o.Format)
	}
	if o.File != "/tmp/x.log" || o.FileMaxMB != 7 || o.FileMaxBackups != 5 {
		t.Fatalf("file opts = %+v", o)
	}
	if o.Service != "healthdash-api" {
		t.Fatalf("service default = %q", o.Service)
	}
}

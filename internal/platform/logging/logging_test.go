package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "json", format: "json", want: `"level":"INFO"`},
		{name: "text", format: "text", want: "level=INFO"},
		{name: "unknown falls back to json", format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if out := buf.String(); !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		emit      func(*slog.Logger)
		wantEmpty bool
	}{
		{name: "debug passes at debug", level: "debug", emit: func(l *slog.Logger) { l.Debug("m") }},
		{name: "uppercase level", level: "DEBUG", emit: func(l *slog.Logger) { l.Debug("m") }},
		{name: "info filters debug", level: "info", emit: func(l *slog.Logger) { l.Debug("m") }, wantEmpty: true},
		{name: "error filters warn", level: "error", emit: func(l *slog.Logger) { l.Warn("m") }, wantEmpty: true},
		{name: "unknown means info", level: "verbose", emit: func(l *slog.Logger) { l.Debug("m") }, wantEmpty: true},
		{name: "unknown passes info", level: "verbose", emit: func(l *slog.Logger) { l.Info("m") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.emit(logging.New(tt.level, "json", &buf))

			if got := buf.Len() == 0; got != tt.wantEmpty {
				t.Errorf("empty output = %v, want %v (output %q)", got, tt.wantEmpty, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want source location", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source location", infoBuf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}

	logger := logging.New("info", "json", &bytes.Buffer{})
	ctx := logging.WithLogger(context.Background(), logger)
	if got := logging.FromContext(ctx); got != logger {
		t.Error("FromContext returned different logger than the one stored with WithLogger")
	}
}

func TestWith_EnrichesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &buf))
	ctx = logging.With(ctx, slog.String("operation", "viewmodel.Save"))

	logging.FromContext(ctx).InfoContext(ctx, "saved")

	if out := buf.String(); !strings.Contains(out, `"operation":"viewmodel.Save"`) {
		t.Errorf("output = %q, want operation attribute", out)
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "dsn field", attr: slog.String("dsn", "host=db user=app"), secret: "user=app"},
		{
			name:   "credential url in free text",
			attr:   slog.String("error", "dial postgres://app:s3cr3t@db:5432/vm failed"),
			secret: "s3cr3t",
		},
		{
			name:   "libpq key value password",
			attr:   slog.String("detail", "host=db password=s3cr3t dbname=vm"),
			secret: "s3cr3t",
		},
		{name: "bearer token", attr: slog.String("raw", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("event",
		slog.String("article_id", "a-123"),
		slog.String("specificulture", "fr-fr"),
	)

	out := buf.String()
	for _, want := range []string{"a-123", "fr-fr"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want %q kept", out, want)
		}
	}
}

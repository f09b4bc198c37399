package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datekit/pkg/environment"
	"github.com/dmitrymomot/datekit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

// newFromSettings builds a logger the way the CLI does from DATEKIT_LOG_LEVEL and
// DATEKIT_LOG_FORMAT values.
func newFromSettings(t *testing.T, buf *bytes.Buffer, level, format string, opts ...logger.Option) *slog.Logger {
	t.Helper()
	lvl, err := logger.ParseLevel(level)
	require.NoError(t, err)
	f, err := logger.ParseFormat(format)
	require.NoError(t, err)
	return logger.New(append([]logger.Option{
		logger.WithLevel(lvl),
		logger.WithFormat(f),
		logger.WithOutput(buf),
		logger.WithAttr(slog.String("service", "datekit")),
	}, opts...)...)
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("locales loaded", logger.Component("locale"))

		entries := decode(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "INFO", entries[0]["level"])
		assert.Equal(t, "locales loaded", entries[0]["msg"])
		assert.Equal(t, "locale", entries[0]["component"])
	})

	t.Run("level from settings filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := newFromSettings(t, buf, "warn", "json")
		log.Info("parsed", logger.Input("3/15/24"))
		log.Warn("fallback locale", logger.Locale("ja"))

		entries := decode(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "fallback locale", entries[0]["msg"])
		assert.Equal(t, "ja", entries[0]["locale"])
		assert.Equal(t, "datekit", entries[0]["service"])
	})

	t.Run("text format from settings", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := newFromSettings(t, buf, "DEBUG", "Text")
		log.Debug("format", logger.Mask("yyyy-MM-dd"), logger.Command("format"))

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "mask=yyyy-MM-dd")
		assert.Contains(t, out, "command=format")
		assert.Contains(t, out, "service=datekit")
	})

	t.Run("last formatter option wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithJSONFormatter())
		log.Info("humanize")
		assert.Equal(t, "humanize", decode(t, buf)[0]["msg"])
	})

	t.Run("nil writer keeps the previous output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithOutput(nil))
		log.Info("range")
		assert.Contains(t, buf.String(), "range")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}

func TestContextExtractors(t *testing.T) {
	type localeKey struct{}

	t.Run("environment and locale from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := newFromSettings(t, buf, "info", "json",
			logger.WithContextExtractors(environment.LoggerExtractor(), nil),
			logger.WithContextValue("locale", localeKey{}),
		)

		ctx := environment.WithContext(context.Background(), "prod")
		ctx = context.WithValue(ctx, localeKey{}, "de-AT")
		log.InfoContext(ctx, "humanized")

		entry := decode(t, buf)[0]
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "de-AT", entry["locale"])
	})

	t.Run("nothing in context adds nothing", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := newFromSettings(t, buf, "info", "json",
			logger.WithContextExtractors(environment.LoggerExtractor()),
			logger.WithContextValue("locale", localeKey{}),
			logger.WithContextValue("", localeKey{}),
		)
		log.InfoContext(context.Background(), "humanized")

		entry := decode(t, buf)[0]
		assert.NotContains(t, entry, "env")
		assert.NotContains(t, entry, "locale")
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		wantJSON bool
		wantEnv  string
	}{
		{"production", true, "production"},
		{"PROD", true, "production"},
		{"stage", true, "staging"},
		{"dev", false, "development"},
		{"", false, "development"},
		{"qa", false, "development"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithEnvironment(tt.env, "datekit"), logger.WithOutput(buf))
			log.Debug("debug only in development")
			log.Info("msg")

			if tt.wantJSON {
				entries := decode(t, buf)
				require.Len(t, entries, 1)
				assert.Equal(t, tt.wantEnv, entries[0]["env"])
				assert.Equal(t, "datekit", entries[0]["service"])
				return
			}
			assert.Contains(t, buf.String(), "env="+tt.wantEnv)
			assert.Contains(t, buf.String(), "level=DEBUG")
		})
	}

	t.Run("empty service leaves the defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", ""), logger.WithOutput(buf))
		log.Info("msg")
		assert.NotContains(t, decode(t, buf)[0], "service")
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]logger.Format{" TEXT ": logger.FormatText, "json": logger.FormatJSON} {
		f, err := logger.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, f)
	}

	_, err := logger.ParseFormat("xml")
	assert.ErrorContains(t, err, "xml")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
	}
	for _, tt := range tests {
		l, err := logger.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, l, tt.in)
	}

	_, err := logger.ParseLevel("loud")
	assert.ErrorContains(t, err, "loud")
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(newFromSettings(t, buf, "info", "json"))
	slog.Info("default")

	entry := decode(t, buf)[0]
	assert.Equal(t, "default", entry["msg"])
	assert.Equal(t, "datekit", entry["service"])
}

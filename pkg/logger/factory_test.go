package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates JSON logger by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("includes static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		t.Parallel()
		type key string
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("trace", key("trace")))
		ctx := context.WithValue(context.Background(), key("trace"), "t-1")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "t-1", decode(t, buf)["trace"])
	})

	t.Run("skips nil extractors", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(nil))
		log.Info("msg")
		assert.Equal(t, "msg", decode(t, buf)["msg"])
	})

	t.Run("panics with every invalid option", func(t *testing.T) {
		t.Parallel()
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.Equal(t, []string{
				"log format should match json|text",
				"log output should not be null",
			}, validation.ExtractResult(err).Errors())
		}()
		logger.New(logger.WithFormat("xml"), logger.WithOutput(nil))
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("development", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("dev", "svc"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=svc")
		assert.Contains(t, out, "env=development")
	})

	for _, env := range []string{"production", "prod", "staging", "stage"} {
		t.Run(env, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithEnvironment(env, "svc"), logger.WithOutput(buf))
			log.Debug("hidden")
			assert.Empty(t, buf.String())
			log.Info("msg")
			entry := decode(t, buf)
			assert.Equal(t, "svc", entry["service"])
			assert.NotEqual(t, "development", entry["env"])
		})
	}
}

func TestLogValidationResult(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	r := validation.Merge(validation.Error("param1 should have a value"), validation.Error("param2 should not be null"))
	log.Info("some parameters are not ok", logger.Validation(r))

	entry := decode(t, buf)
	group, ok := entry["validation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, group["ok"])
	assert.Equal(t, []any{"param1 should have a value", "param2 should not be null"}, group["errors"])
}

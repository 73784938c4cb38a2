package logger_test

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestValidation(t *testing.T) {
	t.Parallel()
	attr := logger.Validation(validation.Error("x"))
	require.Equal(t, "validation", attr.Key)
	resolved := attr.Value.Resolve()
	require.Equal(t, slog.KindGroup, resolved.Kind())
}

func TestValidationFailure(t *testing.T) {
	t.Parallel()

	t.Run("wrapped failure", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("wrap: %w", validation.Error("x").Err("op"))
		attr := logger.ValidationFailure(err)
		require.Equal(t, "validation", attr.Key)
		g := attr.Value.Group()
		require.Len(t, g, 2)
		assert.Equal(t, "op", g[0].Value.String())
		assert.Equal(t, []string{"x"}, g[1].Value.Any())
	})

	t.Run("other error", func(t *testing.T) {
		t.Parallel()
		assert.True(t, logger.ValidationFailure(errors.New("x")).Equal(slog.Attr{}))
	})
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestComponentAndHandler(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "component", logger.Component("c").Key)
	assert.Equal(t, "handler", logger.Handler("h").Key)
	assert.Equal(t, "duration", logger.Duration(1).Key)
}

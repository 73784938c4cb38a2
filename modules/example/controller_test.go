package example_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/modules/example"
)

func ptr[T any](v T) *T {
	return &v
}

func validParams() example.Params {
	return example.Params{
		Param1: ptr("value"),
		Param2: ptr(7),
		Param3: validation.Some("42"),
		Items:  []string{"a", "b"},
	}
}

func TestController_GetSomeData(t *testing.T) {
	t.Parallel()

	c := example.NewController(nil)

	t.Run("valid parameters", func(t *testing.T) {
		t.Parallel()
		data, err := c.GetSomeData(context.Background(), validParams())
		require.NoError(t, err)
		assert.Equal(t, []string{"FOOs"}, data)
	})

	t.Run("empty param3 is allowed", func(t *testing.T) {
		t.Parallel()
		p := validParams()
		p.Param3 = validation.Some("")
		_, err := c.GetSomeData(context.Background(), p)
		assert.NoError(t, err)
	})

	t.Run("every invalid parameter is reported", func(t *testing.T) {
		t.Parallel()
		data, err := c.GetSomeData(context.Background(), example.Params{})
		require.Error(t, err)
		assert.Nil(t, data)

		f, ok := validation.AsFailure(err)
		require.True(t, ok)
		assert.Equal(t, "error getting some data", f.Context)
		assert.Equal(t, []string{
			"param1 should have a value",
			"param2 should not be null",
			"param3 should be present",
			"collection should not be empty",
		}, f.Result.Errors())
	})

	t.Run("nested failures are hoisted", func(t *testing.T) {
		t.Parallel()
		p := validParams()
		p.Param3 = validation.Some("abc")
		p.Items = []string{"a", "", "c", ""}

		_, err := c.GetSomeData(context.Background(), p)
		assert.Equal(t, []string{
			`param3 should match \d{2}`,
			"collection element should not be empty",
			"collection element should not be empty",
		}, validation.ExtractResult(err).Errors())
	})
}

func TestController_GetSomeOtherData(t *testing.T) {
	t.Parallel()

	t.Run("logs invalid parameters and answers", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		c := example.NewController(slog.New(slog.NewJSONHandler(&buf, nil)))

		data := c.GetSomeOtherData(context.Background(), example.Params{Param1: ptr("")})
		assert.Equal(t, []string{"FOOs"}, data)

		out := buf.String()
		assert.Contains(t, out, `"msg":"some parameters are not ok"`)
		assert.Contains(t, out, `"component":"example"`)
		assert.Contains(t, out, `"errors":["param1 should have a value","param2 should not be null"]`)
	})

	t.Run("valid parameters are not logged", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		c := example.NewController(slog.New(slog.NewJSONHandler(&buf, nil)))

		assert.Equal(t, []string{"FOOs"}, c.GetSomeOtherData(context.Background(), validParams()))
		assert.Empty(t, buf.String())
	})
}

package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/binder"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	type basicStruct struct {
		Name     string  `query:"name"`
		Age      int     `query:"age"`
		Height   float64 `query:"height"`
		Active   bool    `query:"active"`
		Page     uint    `query:"page"`
		Internal string  `query:"-"`
	}

	t.Run("binds all basic types", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test?name=John&age=30&height=5.9&active=true&page=2", nil)

		var result basicStruct
		require.NoError(t, binder.Query()(req, &result))
		assert.Equal(t, "John", result.Name)
		assert.Equal(t, 30, result.Age)
		assert.Equal(t, 5.9, result.Height)
		assert.True(t, result.Active)
		assert.Equal(t, uint(2), result.Page)
	})

	t.Run("skips fields with dash tag", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test?name=Test&internal=secret", nil)

		result := basicStruct{Internal: "original"}
		require.NoError(t, binder.Query()(req, &result))
		assert.Equal(t, "original", result.Internal)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test?age=old", nil)

		var result basicStruct
		err := binder.Query()(req, &result)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
		assert.Contains(t, err.Error(), "age")
	})

	t.Run("lenient booleans", func(t *testing.T) {
		t.Parallel()
		for value, want := range map[string]bool{"on": true, "yes": true, "1": true, "off": false, "no": false} {
			req := httptest.NewRequest(http.MethodGet, "/test?active="+value, nil)
			var result basicStruct
			require.NoError(t, binder.Query()(req, &result))
			assert.Equal(t, want, result.Active, value)
		}
	})

	t.Run("target must be pointer to struct", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		var s string
		assert.ErrorIs(t, binder.Query()(req, &s), binder.ErrInvalidTarget)
		assert.ErrorIs(t, binder.Query()(req, basicStruct{}), binder.ErrInvalidTarget)
	})
}

func TestQuery_Absence(t *testing.T) {
	t.Parallel()

	type params struct {
		Param1 *string                     `query:"param1"`
		Param2 *string                     `query:"param2"`
		Param3 validation.Optional[string] `query:"param3"`
		Items  []string                    `query:"items"`
	}

	t.Run("missing parameters stay absent", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/data", nil)

		var p params
		require.NoError(t, binder.Query()(req, &p))
		assert.Nil(t, p.Param1)
		assert.Nil(t, p.Param2)
		assert.False(t, p.Param3.IsPresent())
		assert.Nil(t, p.Items)
	})

	t.Run("empty parameters are present", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/data?param1=&param3=", nil)

		var p params
		require.NoError(t, binder.Query()(req, &p))
		require.NotNil(t, p.Param1)
		assert.Equal(t, "", *p.Param1)
		v, ok := p.Param3.Get()
		assert.True(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("repeated and comma separated values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/data?items=a&items=b,c", nil)

		var p params
		require.NoError(t, binder.Query()(req, &p))
		assert.Equal(t, []string{"a", "b", "c"}, p.Items)
	})

	t.Run("values feed validators", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/data?param2=W12&param3=RL", nil)

		var p params
		require.NoError(t, binder.Query()(req, &p))
		r := validation.Merge(
			validation.NotNullOrEmpty(p.Param1, "param1"),
			validation.EmptyOrMatches(p.Param2, `W\d{3}`, "param2"),
			validation.IsPresentDeep(p.Param3, func(v string) validation.Result {
				return validation.NotNullAndMatches(&v, "LL|RL", "param3")
			}, "param3"),
		)
		assert.Equal(t, []string{"param1 should have a value", `param2 should match W\d{3}`}, r.Errors())
	})
}

func TestQuery_TextUnmarshaler(t *testing.T) {
	t.Parallel()

	type params struct {
		ID    uuid.UUID                      `query:"id"`
		Since validation.Optional[time.Time] `query:"since"`
		Limit validation.Optional[int]       `query:"limit"`
	}

	t.Run("parses values", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/test?id="+id.String()+"&since=2024-01-02T03:04:05Z&limit=25", nil)

		var p params
		require.NoError(t, binder.Query()(req, &p))
		assert.Equal(t, id, p.ID)
		since, ok := p.Since.Get()
		require.True(t, ok)
		assert.Equal(t, 2024, since.Year())
		assert.Equal(t, 25, p.Limit.OrElse(0))
	})

	t.Run("invalid optional value", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test?limit=many", nil)

		var p params
		err := binder.Query()(req, &p)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
		assert.False(t, p.Limit.IsPresent())
	})
}

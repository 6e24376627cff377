package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("preserves registration order", func(t *testing.T) {
		reg := NewRegistry()
		reg.Get("/", "IndexController@show").Name("index.show")
		reg.Get("/samples", "SampleController@many").Name("sample.many")
		reg.Get("/sample/@id", "SampleController@one").Name("sample.one")
		reg.Post("/samples/create", "SampleController@create").Name("sample.create")
		reg.Put("/sample/@id", "SampleController@update")
		reg.Patch("/sample/@id", "SampleController@patch")
		reg.Delete("/sample/@id", "SampleController@destroy")

		require.Equal(t, 7, reg.Len())

		ds, err := reg.Descriptors()
		require.NoError(t, err)
		require.Len(t, ds, 7)

		assert.Equal(t, "/", ds[0].Path())
		assert.Equal(t, "index.show", ds[0].Name())
		assert.Equal(t, MethodPost, ds[3].Method())
		assert.Equal(t, HandlerRef{"SampleController", "create"}, ds[3].Handler())
		assert.Equal(t, []string{"id"}, ds[2].Params())
		assert.Equal(t, MethodPut, ds[4].Method())
		assert.Equal(t, MethodPatch, ds[5].Method())
		assert.Equal(t, MethodDelete, ds[6].Method())
	})

	t.Run("route name accessor", func(t *testing.T) {
		reg := NewRegistry()
		r := reg.Get("/samples", "SampleController@many").Name("sample.many")
		assert.Equal(t, "sample.many", r.GetName())
		assert.NoError(t, r.GetError())
	})

	t.Run("explicit params", func(t *testing.T) {
		reg := NewRegistry()
		reg.Get("/sample/@id", "SampleController@one").Params("key")
		reg.Get("/sample/@id/raw", "SampleController@raw").Params()

		ds, err := reg.Descriptors()
		require.NoError(t, err)
		assert.Equal(t, []string{"key"}, ds[0].Params())
		assert.False(t, ds[1].HasParams())
	})

	t.Run("invalid handler", func(t *testing.T) {
		reg := NewRegistry()
		reg.Get("/samples", "SampleController@many")
		r := reg.Get("/broken", "SampleController")

		assert.ErrorIs(t, r.GetError(), ErrInvalidHandler)

		_, err := reg.Descriptors()
		assert.ErrorIs(t, err, ErrInvalidHandler)
		assert.Contains(t, err.Error(), "route 1 (GET /broken)")
	})

	t.Run("relative path", func(t *testing.T) {
		reg := NewRegistry()
		r := reg.Get("samples", "SampleController@many")
		assert.ErrorIs(t, r.GetError(), ErrInvalidPath)
	})
}

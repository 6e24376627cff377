package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/oasgen/controller"
	"github.com/vitalvas/oasgen/openapi"
	"github.com/vitalvas/oasgen/routes"
)

func sampleEndpoint(d routes.Descriptor) Endpoint {
	return Endpoint{
		Route: d,
		Controller: controller.Controller{
			Name:   "SampleController",
			Module: "app.http.controllers",
			Doc:    "SampleController Controller Class.",
		},
		Method:    controller.Method{Name: d.Handler().Method, Doc: "\n        Sample one controller\n        "},
		Path:      RecompilePath(d.Path()),
		Model:     "Sample",
		Tags:      []string{"Sample"},
		Responses: BuildResponses("Sample", CodesFor(d.Method(), d.HasParams())),
	}
}

func TestRecordPath(t *testing.T) {
	t.Run("operation fields", func(t *testing.T) {
		paths := make(map[string]*openapi.PathItem)
		d := descriptor(routes.MethodGet, "/sample/@id", "SampleController@one")

		op := RecordPath(paths, sampleEndpoint(d), ParamsInQuery)

		expected := &openapi.Operation{
			OperationID: "app.http.controllers.SampleController.one",
			Description: "Sample one controller",
			Summary:     "Endpoint '/sample/{id}' handled by 'SampleController.one'",
			Tags:        []string{"Sample"},
			Responses:   BuildResponses("Sample", CodesFor(routes.MethodGet, true)),
			Parameters: []*openapi.Parameter{
				{Name: "id", In: "query", Schema: &openapi.Schema{Type: "string"}},
			},
		}
		if diff := cmp.Diff(expected, op); diff != "" {
			t.Errorf("operation mismatch (-want +got):\n%s", diff)
		}

		require.Contains(t, paths, "/sample/{id}")
		assert.Same(t, op, paths["/sample/{id}"].Get)
	})

	t.Run("controller doc fallback", func(t *testing.T) {
		paths := make(map[string]*openapi.PathItem)
		ep := sampleEndpoint(descriptor(routes.MethodGet, "/samples", "SampleController@many"))
		ep.Method.Doc = "  "

		op := RecordPath(paths, ep, ParamsInQuery)
		assert.Equal(t, "SampleController Controller Class.", op.Description)
		assert.Nil(t, op.Parameters)
	})

	t.Run("operation id without module", func(t *testing.T) {
		paths := make(map[string]*openapi.PathItem)
		ep := sampleEndpoint(descriptor(routes.MethodGet, "/samples", "SampleController@many"))
		ep.Controller.Module = ""

		op := RecordPath(paths, ep, ParamsInQuery)
		assert.Equal(t, "SampleController.many", op.OperationID)
	})

	t.Run("one parameter per name", func(t *testing.T) {
		paths := make(map[string]*openapi.PathItem)
		d := descriptor(routes.MethodGet, "/users/@user/posts/@post", "SampleController@one")

		op := RecordPath(paths, sampleEndpoint(d), ParamsInQuery)

		require.Len(t, op.Parameters, 2)
		assert.Equal(t, "user", op.Parameters[0].Name)
		assert.Equal(t, "post", op.Parameters[1].Name)
	})

	t.Run("path location marks parameters required", func(t *testing.T) {
		paths := make(map[string]*openapi.PathItem)
		d := descriptor(routes.MethodGet, "/sample/@id", "SampleController@one")

		op := RecordPath(paths, sampleEndpoint(d), ParamsInPath)

		require.Len(t, op.Parameters, 1)
		assert.Equal(t, "path", op.Parameters[0].In)
		assert.True(t, op.Parameters[0].Required)
	})

	t.Run("methods share a path item", func(t *testing.T) {
		paths := make(map[string]*openapi.PathItem)
		for _, m := range []routes.Method{
			routes.MethodGet, routes.MethodPost, routes.MethodPut, routes.MethodPatch,
			routes.MethodDelete, routes.MethodHead, routes.MethodOptions, routes.MethodTrace,
		} {
			RecordPath(paths, sampleEndpoint(descriptor(m, "/sample/@id", "SampleController@one")), ParamsInQuery)
		}

		require.Len(t, paths, 1)
		item := paths["/sample/{id}"]
		assert.Len(t, item.Operations(), 8)
		for _, m := range []routes.Method{routes.MethodGet, routes.MethodTrace, routes.MethodHead} {
			assert.NotNil(t, lookupOperation(paths, "/sample/{id}", m))
		}
	})

	t.Run("lookup misses", func(t *testing.T) {
		paths := make(map[string]*openapi.PathItem)
		RecordPath(paths, sampleEndpoint(descriptor(routes.MethodGet, "/samples", "SampleController@many")), ParamsInQuery)

		assert.Nil(t, lookupOperation(paths, "/samples", routes.MethodPost))
		assert.Nil(t, lookupOperation(paths, "/other", routes.MethodGet))
	})
}

func TestParseParameterLocation(t *testing.T) {
	in, err := ParseParameterLocation("path")
	require.NoError(t, err)
	assert.Equal(t, ParamsInPath, in)

	_, err = ParseParameterLocation("header")
	assert.ErrorIs(t, err, ErrInvalidParameterLocation)
}

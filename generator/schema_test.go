package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/oasgen/controller"
	"github.com/vitalvas/oasgen/openapi"
)

func TestClassifyType(t *testing.T) {
	tests := []struct {
		declared string
		expected string
	}{
		{"string", "string"},
		{"str", "string"},
		{"integer", "integer"},
		{"int", "integer"},
		{"number", "number"},
		{"float", "number"},
		{"array", "array"},
		{"list", "array"},
		{"tuple", "array"},
		{"object", "object"},
		{"dict", "object"},
		{" Integer ", "integer"},
		{"View", "object"},
		{"Request", "object"},
		{"boolean", "object"},
		{"", "object"},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyType(tt.declared))
		})
	}
}

func TestDeriveSchema(t *testing.T) {
	t.Run("no return annotation", func(t *testing.T) {
		schema, ok := DeriveSchema(controller.Method{
			Name:   "show",
			Params: []controller.Param{{Name: "view", Type: "View"}},
		}, "Index")

		assert.False(t, ok)
		assert.Nil(t, schema)
	})

	t.Run("classified properties", func(t *testing.T) {
		schema, ok := DeriveSchema(controller.Method{
			Name:    "create",
			Returns: "tuple",
			Params: []controller.Param{
				{Name: "view", Type: "View"},
				{Name: "name", Type: "str"},
				{Name: "count", Type: "int"},
				{Name: "items", Type: "list"},
				{Name: "raw"},
			},
		}, "Sample")

		require.True(t, ok)
		assert.Equal(t, "Sample", schema.Title)
		assert.Equal(t, "object", schema.Type)
		assert.Equal(t, map[string]*openapi.Schema{
			"view":  {Type: "object"},
			"name":  {Type: "string"},
			"count": {Type: "integer"},
			"items": {Type: "array", Items: &openapi.Schema{}},
			"raw":   {Type: "object"},
		}, schema.Properties)
	})

	t.Run("unsupported type degrades to object", func(t *testing.T) {
		schema, ok := DeriveSchema(controller.Method{
			Returns: "str",
			Params:  []controller.Param{{Name: "when", Type: "datetime.datetime"}},
		}, "Event")

		require.True(t, ok)
		assert.Equal(t, &openapi.Schema{Type: "object"}, schema.Properties["when"])
	})

	t.Run("no parameters", func(t *testing.T) {
		schema, ok := DeriveSchema(controller.Method{Returns: "str"}, "Sample")

		require.True(t, ok)
		assert.Nil(t, schema.Properties)
	})

	t.Run("unnamed parameters are ignored", func(t *testing.T) {
		schema, ok := DeriveSchema(controller.Method{
			Returns: "str",
			Params:  []controller.Param{{Type: "int"}},
		}, "Sample")

		require.True(t, ok)
		assert.Empty(t, schema.Properties)
	})
}

func TestMergeSchema(t *testing.T) {
	dst := &openapi.Schema{Title: "Sample", Type: "object", Properties: map[string]*openapi.Schema{
		"id": {Type: "integer"},
	}}
	src := &openapi.Schema{Title: "Sample", Type: "object", Properties: map[string]*openapi.Schema{
		"id":   {Type: "string"},
		"name": {Type: "string"},
	}}

	mergeSchema(dst, src)

	assert.Equal(t, "integer", dst.Properties["id"].Type)
	assert.Equal(t, "string", dst.Properties["name"].Type)

	empty := &openapi.Schema{Title: "Sample", Type: "object"}
	mergeSchema(empty, src)
	assert.Len(t, empty.Properties, 2)
}

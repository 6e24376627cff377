package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/oasgen/routes"
)

func TestCodesFor(t *testing.T) {
	t.Run("success by method", func(t *testing.T) {
		tests := []struct {
			method   routes.Method
			expected StatusEntry
		}{
			{routes.MethodGet, StatusEntry{"200", "OK"}},
			{routes.MethodPost, StatusEntry{"201", "Created"}},
			{routes.MethodPut, StatusEntry{"204", "No-content"}},
			{routes.MethodPatch, StatusEntry{"204", "No-content"}},
			{routes.MethodDelete, StatusEntry{"204", "No-content"}},
		}

		for _, tt := range tests {
			t.Run(string(tt.method), func(t *testing.T) {
				for _, hasParams := range []bool{false, true} {
					assert.Equal(t, tt.expected, CodesFor(tt.method, hasParams).Success)
				}
			})
		}
	})

	t.Run("no parameters means no error entries", func(t *testing.T) {
		codes := CodesFor(routes.MethodGet, false)
		assert.Nil(t, codes.Error)
		assert.Nil(t, codes.Failure)
	})

	t.Run("parameters add error and failure", func(t *testing.T) {
		codes := CodesFor(routes.MethodDelete, true)
		require.NotNil(t, codes.Error)
		require.NotNil(t, codes.Failure)
		assert.Equal(t, StatusEntry{"500", "Internal Server Error"}, *codes.Error)
		assert.Equal(t, StatusEntry{"400", "Bad Request"}, *codes.Failure)
	})

	t.Run("entries are not shared", func(t *testing.T) {
		a := CodesFor(routes.MethodGet, true)
		a.Error.Code = "599"

		b := CodesFor(routes.MethodGet, true)
		assert.Equal(t, "500", b.Error.Code)
	})
}

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompilePath(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"root", "/", "/"},
		{"empty", "", "/"},
		{"double slash root", "//", "/"},
		{"static", "/samples", "/samples"},
		{"nested static", "/samples/create", "/samples/create"},
		{"at parameter", "/sample/@id", "/sample/{id}"},
		{"typed at parameter", "/sample/@id:int", "/sample/{id}"},
		{"colon parameter", "/sample/:id", "/sample/{id}"},
		{"brace with pattern", "/sample/{id:[0-9]+}", "/sample/{id}"},
		{"deep path", "/users/@user/posts/@post/comments", "/users/{user}/posts/{post}/comments"},
		{"trailing slash kept", "/samples/", "/samples/"},
		{"duplicate slashes collapse", "/samples//create", "/samples/create"},
		{"missing leading slash", "samples", "/samples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecompilePath(tt.raw))
		})
	}
}

func TestRecompilePathIdempotent(t *testing.T) {
	for _, raw := range []string{
		"/", "/samples", "/sample/{id}", "/users/{user}/posts/{post}",
		"/samples/", "/sample/@id", "/a/:b/c/", "",
	} {
		t.Run(raw, func(t *testing.T) {
			once := RecompilePath(raw)
			assert.Equal(t, once, RecompilePath(once))
		})
	}

	t.Run("normalized input is unchanged", func(t *testing.T) {
		assert.Equal(t, "/sample/{id}", RecompilePath("/sample/{id}"))
	})
}

package generator

import (
	"fmt"
	"slices"

	"github.com/vitalvas/oasgen/controller"
	"github.com/vitalvas/oasgen/openapi"
)

// TagSet accumulates document-level tags in first-seen order. A tag name is
// recorded at most once.
type TagSet struct {
	tags []openapi.Tag
	seen map[string]bool
}

// NewTagSet returns an empty TagSet.
func NewTagSet() *TagSet {
	return &TagSet{seen: make(map[string]bool)}
}

// Accumulate returns the tag names of a route served by c and records any
// new names globally. Controllers without explicit tags get one tag derived
// from their type name.
func (s *TagSet) Accumulate(c controller.Controller) []string {
	names := c.Tags
	if len(names) == 0 {
		names = []string{baseName(c.Name)}
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
		s.add(name)
	}
	return out
}

func (s *TagSet) add(name string) {
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.tags = append(s.tags, openapi.Tag{
		Name:        name,
		Description: fmt.Sprintf("Grouping for %s endpoints", name),
	})
}

// Has reports whether a tag name was recorded.
func (s *TagSet) Has(name string) bool {
	return s.seen[name]
}

// Tags returns the recorded tags. The result is never nil.
func (s *TagSet) Tags() []openapi.Tag {
	out := make([]openapi.Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

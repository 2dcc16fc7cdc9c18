package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedFixture() []ContentItem {
	return []ContentItem{
		{ID: "1", Title: "Neural nets for botanists", Tags: []string{"AI", "Bio"}},
		{ID: "2", Title: "Growing ferns", Tags: []string{"Plants"}},
		{ID: "3", Title: "Untagged musings"},
	}
}

func ids(items []ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{
			name:     "empty filter matches everything",
			filter:   Filter{},
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "tag intersection",
			filter:   Filter{Tags: SetOf([]string{"AI"})},
			expected: []string{"1"},
		},
		{
			name:     "any of selected tags",
			filter:   Filter{Tags: SetOf([]string{"Bio", "Plants"})},
			expected: []string{"1", "2"},
		},
		{
			name:     "selected tag missing from every item",
			filter:   Filter{Tags: SetOf([]string{"Gone"})},
			expected: []string{},
		},
		{
			name:     "case insensitive title search",
			filter:   Filter{Query: "FERN"},
			expected: []string{"2"},
		},
		{
			name:     "whitespace query ignored",
			filter:   Filter{Query: "   "},
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "favorites only",
			filter:   Filter{LikedOnly: true, Liked: SetOf([]string{"3", "2"})},
			expected: []string{"2", "3"},
		},
		{
			name:     "favorites with tags and query",
			filter:   Filter{LikedOnly: true, Liked: SetOf([]string{"1", "2"}), Tags: SetOf([]string{"AI", "Plants"}), Query: "neural"},
			expected: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(feedFixture())
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilter_ApplyDoesNotMutateSource(t *testing.T) {
	source := feedFixture()

	out := Filter{Tags: SetOf([]string{"AI"})}.Apply(source)
	out[0].Tags[0] = "mutated"

	assert.Len(t, source, 3)
	assert.Equal(t, "AI", source[0].Tags[0])
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{input: "", expected: []string{}},
		{input: "AI", expected: []string{"AI"}},
		{input: " AI , Plants,,Bio ", expected: []string{"AI", "Plants", "Bio"}},
		{input: "AI,AI, AI", expected: []string{"AI"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTags(tt.input))
		})
	}
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(SetOf([]string{"c", "a", "b"})))
	assert.Empty(t, SortedKeys(nil))
}

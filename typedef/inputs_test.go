package typedef

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/dtsgen/errors"
)

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	a := writeLines(t, dir, "a.jsonl")
	b := writeLines(t, dir, "nested/b.jsonl")
	c := writeLines(t, dir, "nested/deeper/c.jsonl")
	writeLines(t, dir, "nested/notes.txt")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "plain path",
			patterns: []string{a},
			want:     []string{a},
		},
		{
			name:     "single level glob",
			patterns: []string{filepath.Join(dir, "*.jsonl")},
			want:     []string{a},
		},
		{
			name:     "recursive glob",
			patterns: []string{filepath.Join(dir, "**", "*.jsonl")},
			want:     []string{a, b, c},
		},
		{
			name:     "overlapping patterns are de-duplicated in first-seen order",
			patterns: []string{c, filepath.Join(dir, "**", "*.jsonl")},
			want:     []string{c, a, b},
		},
		{
			name:     "unclean path",
			patterns: []string{filepath.Join(dir, "nested") + "/./b.jsonl"},
			want:     []string{b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandInputs(tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandInputsErrors(t *testing.T) {
	dir := t.TempDir()
	writeLines(t, dir, "a.jsonl")

	tests := []struct {
		name     string
		patterns []string
		contains string
	}{
		{"no patterns", nil, "no type definition inputs"},
		{"missing file", []string{filepath.Join(dir, "missing.jsonl")}, "matched no files"},
		{"glob without match", []string{filepath.Join(dir, "**", "*.d.ts")}, "matched no files"},
		{"invalid pattern", []string{filepath.Join(dir, "[a.jsonl")}, "invalid input pattern"},
		{"directory only", []string{dir}, "matched no files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandInputs(tt.patterns)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIO))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestMatchesInput(t *testing.T) {
	patterns := []string{"target/type-def/**/*.jsonl", "extra.jsonl"}

	assert.True(t, matchesInput(patterns, "target/type-def/a.jsonl"))
	assert.True(t, matchesInput(patterns, "target/type-def/x/y/b.jsonl"))
	assert.True(t, matchesInput(patterns, "./extra.jsonl"))
	assert.False(t, matchesInput(patterns, "target/type-def/a.json"))
	assert.False(t, matchesInput(patterns, "target/other/a.jsonl"))
}

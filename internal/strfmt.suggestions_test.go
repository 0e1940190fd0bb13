package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilarStrings(t *testing.T) {
	t.Run("finds close candidates", func(t *testing.T) {
		result := FindSimilarStrings("nam", []string{"name", "game", "completely_different"}, 3)

		assert.Contains(t, result, "name")
		assert.NotContains(t, result, "completely_different")
	})

	t.Run("closest first", func(t *testing.T) {
		result := FindSimilarStrings("method", []string{"methodLong", "method2", "mthod"}, 3)

		assert.Equal(t, "method2", result[0])
	})

	t.Run("case insensitive", func(t *testing.T) {
		result := FindSimilarStrings("CLASS", []string{"class", "dir"}, 3)

		assert.Equal(t, []string{"class"}, result)
	})

	t.Run("skips exact match", func(t *testing.T) {
		result := FindSimilarStrings("line", []string{"line"}, 3)

		assert.Nil(t, result)
	})

	t.Run("respects limit", func(t *testing.T) {
		result := FindSimilarStrings("abcd", []string{"abce", "abcf", "abcg", "abch"}, 2)

		assert.Len(t, result, 2)
		assert.Equal(t, []string{"abce", "abcf"}, result)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Nil(t, FindSimilarStrings("username", []string{"xyz", "abc"}, 3))
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Nil(t, FindSimilarStrings("", []string{"a"}, 3))
		assert.Nil(t, FindSimilarStrings("a", nil, 3))
		assert.Nil(t, FindSimilarStrings("a", []string{"a"}, 0))
	})
}

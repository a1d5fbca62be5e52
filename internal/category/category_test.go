package category_test

import (
	"testing"

	"go-sportstore/internal/category"

	"github.com/stretchr/testify/assert"
)

type item struct {
	name string
	cat  string
}

func (i item) CategoryName() string { return i.cat }

func items(pairs ...string) []item {
	out := make([]item, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, item{name: pairs[i], cat: pairs[i+1]})
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestDistinctCategories(t *testing.T) {
	t.Run("sorted and deduplicated", func(t *testing.T) {
		got := category.DistinctCategories(items(
			"P1", "Apples",
			"P2", "Apples",
			"P3", "Plums",
			"P4", "Oranges",
		))

		assert.Equal(t, []string{"Apples", "Oranges", "Plums"}, got)
	})

	t.Run("case is significant", func(t *testing.T) {
		got := category.DistinctCategories(items("P1", "chess", "P2", "Chess"))

		assert.Equal(t, []string{"Chess", "chess"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got := category.DistinctCategories([]item{})

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFilterByCategory(t *testing.T) {
	src := items(
		"P1", "Cat1",
		"P2", "Cat2",
		"P3", "Cat1",
		"P4", "Cat2",
		"P5", "Cat3",
	)

	t.Run("keeps matches in source order", func(t *testing.T) {
		got := category.FilterByCategory(src, strPtr("Cat2"))

		assert.Equal(t, items("P2", "Cat2", "P4", "Cat2"), got)
	})

	t.Run("nil category keeps everything", func(t *testing.T) {
		got := category.FilterByCategory(src, nil)

		assert.Equal(t, src, got)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		got := category.FilterByCategory(src, strPtr("cat2"))

		assert.Empty(t, got)
	})

	t.Run("empty string is a real category", func(t *testing.T) {
		got := category.FilterByCategory(append(src, item{name: "P6"}), strPtr(""))

		assert.Equal(t, []item{{name: "P6"}}, got)
	})
}

// Package category derives navigation from product categories and filters
// listings by category. It works on anything that reports a category name,
// so it does not depend on the product package.
package category

import (
	"slices"
)

type Categorized interface {
	CategoryName() string
}

// DistinctCategories returns each category once, sorted lexicographically.
func DistinctCategories[T Categorized](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, it := range items {
		name := it.CategoryName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// FilterByCategory keeps items whose category equals *category exactly
// (case-sensitive), in source order. A nil category keeps everything.
func FilterByCategory[T Categorized](items []T, category *string) []T {
	if category == nil {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.CategoryName() == *category {
			out = append(out, it)
		}
	}
	return out
}

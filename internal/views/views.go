// Package views holds the pure in-memory derivations the marketplace surfaces
// share: stable sorting, free-text search, categorical filters, distinct
// facet extraction and the display-only total value. None of them mutate
// their input slice.
package views

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// AllValues is the sentinel for an inactive categorical criterion.
const AllValues = "all"

// SortByKey returns a copy of items sorted ascending by key.
// The sort is stable: ties keep their original fetch order.
func SortByKey[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) < key(sorted[j])
	})

	return sorted
}

// Search keeps the items whose designated text fields contain query as a
// case-insensitive substring. An empty query imposes no constraint.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	return lo.Filter(items, func(item T, _ int) bool {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}
		return false
	})
}

// MatchField keeps the items whose attribute equals value exactly. The
// sentinel "all" (or an empty value) deactivates the criterion; combining
// several MatchField calls ANDs the criteria.
func MatchField[T any](items []T, value string, field func(T) string) []T {
	if value == "" || value == AllValues {
		return items
	}

	return lo.Filter(items, func(item T, _ int) bool {
		return field(item) == value
	})
}

// Distinct extracts the distinct non-empty values of an attribute across a
// collection, preserving first-seen order. Used to populate filter choices.
func Distinct[T any](items []T, field func(T) string) []string {
	values := lo.FilterMap(items, func(item T, _ int) (string, bool) {
		v := field(item)
		return v, v != ""
	})

	return lo.Uniq(values)
}

// TotalValue derives the display-only listing total from price per unit and
// quantity. It is recomputed on every read and never persisted.
func TotalValue(pricePerUnit, quantity float64) float64 {
	return pricePerUnit * quantity
}

// FormatAmount renders a monetary amount with exactly two decimal places.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

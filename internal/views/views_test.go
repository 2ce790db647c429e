package views

import (
	"slices"
	"testing"
)

type listing struct {
	title     string
	wasteType string
	location  string
	order     int
}

var fixtures = []listing{
	{title: "Spent coffee grounds", wasteType: "Organic", location: "Rotterdam", order: 2},
	{title: "Cardboard boxes", wasteType: "Paper", location: "Amsterdam", order: 1},
	{title: "Fruit pulp", wasteType: "Organic", location: "Utrecht", order: 3},
	{title: "Coffee chaff", wasteType: "Organic", location: "Rotterdam", order: 2},
}

func titles(items []listing) []string {
	out := make([]string, len(items))
	for i, l := range items {
		out[i] = l.title
	}
	return out
}

func TestSearch(t *testing.T) {
	fields := func(l listing) []string { return []string{l.title, l.wasteType} }

	got := Search(fixtures, "COFFEE", fields)
	want := []string{"Spent coffee grounds", "Coffee chaff"}
	if !slices.Equal(titles(got), want) {
		t.Errorf("Expected %v, got %v", want, titles(got))
	}

	if len(Search(fixtures, "", fields)) != len(fixtures) {
		t.Error("Empty query must keep every item")
	}
	if len(Search(fixtures, "   ", fields)) != len(fixtures) {
		t.Error("Whitespace query must keep every item")
	}
	if len(Search(fixtures, "no-such-thing", fields)) != 0 {
		t.Error("Unmatched query must keep nothing")
	}
}

func TestMatchField(t *testing.T) {
	wasteType := func(l listing) string { return l.wasteType }

	got := MatchField(fixtures, "Organic", wasteType)
	if len(got) != 3 {
		t.Errorf("Expected 3 organic listings, got %d", len(got))
	}

	if len(MatchField(fixtures, AllValues, wasteType)) != len(fixtures) {
		t.Error("Sentinel value must keep every item")
	}
	if len(MatchField(fixtures, "", wasteType)) != len(fixtures) {
		t.Error("Empty value must keep every item")
	}

	// Matching is exact, not substring
	if len(MatchField(fixtures, "Organ", wasteType)) != 0 {
		t.Error("Partial value must not match")
	}
}

func TestMatchFieldCombination(t *testing.T) {
	got := MatchField(fixtures, "Organic", func(l listing) string { return l.wasteType })
	got = MatchField(got, "Rotterdam", func(l listing) string { return l.location })

	want := []string{"Spent coffee grounds", "Coffee chaff"}
	if !slices.Equal(titles(got), want) {
		t.Errorf("Expected %v, got %v", want, titles(got))
	}
}

func TestDistinct(t *testing.T) {
	items := append(slices.Clone(fixtures), listing{title: "Unsorted scraps"})

	got := Distinct(items, func(l listing) string { return l.wasteType })
	want := []string{"Organic", "Paper"}
	if !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSortByKeyStable(t *testing.T) {
	got := SortByKey(fixtures, func(l listing) int { return l.order })

	want := []string{"Cardboard boxes", "Spent coffee grounds", "Coffee chaff", "Fruit pulp"}
	if !slices.Equal(titles(got), want) {
		t.Errorf("Expected %v, got %v", want, titles(got))
	}

	// Input order untouched
	if fixtures[0].title != "Spent coffee grounds" {
		t.Error("SortByKey must not mutate its input")
	}
}

func TestTotalValue(t *testing.T) {
	if got := FormatAmount(TotalValue(5.0, 100)); got != "500.00" {
		t.Errorf("Expected '500.00', got '%s'", got)
	}
	if got := FormatAmount(TotalValue(2.5, 3)); got != "7.50" {
		t.Errorf("Expected '7.50', got '%s'", got)
	}
	if got := FormatAmount(TotalValue(0, 0)); got != "0.00" {
		t.Errorf("Expected '0.00', got '%s'", got)
	}
}

package catalog_test

import (
	"testing"

	"shopfront/internal/catalog"
)

func TestFixedLookup(t *testing.T) {
	c := catalog.Fixed()

	p, ok := c.ByID("p1")
	if !ok {
		t.Fatal("p1 missing from fixed catalog")
	}
	if p.Price != 3999 {
		t.Fatalf("p1 price = %d, want 3999", p.Price)
	}
	if _, ok := c.ByID("nope"); ok {
		t.Fatal("unknown id resolved")
	}
}

func TestFilter(t *testing.T) {
	c := catalog.Fixed()

	if got := c.Filter("", ""); len(got) != len(c.Items()) {
		t.Fatalf("empty filter returned %d of %d products", len(got), len(c.Items()))
	}

	kitchen := c.Filter("", "kitchen")
	if len(kitchen) != 2 {
		t.Fatalf("kitchen filter returned %d products", len(kitchen))
	}
	for _, p := range kitchen {
		if p.Category != "kitchen" {
			t.Fatalf("category filter leaked %q", p.Category)
		}
	}

	// query is case-insensitive substring match on name
	got := c.Filter("  MUG ", "")
	if len(got) != 1 || got[0].ID != "p4" {
		t.Fatalf("query filter: %+v", got)
	}

	if got := c.Filter("mug", "electronics"); len(got) != 0 {
		t.Fatalf("conjunctive filter should be empty, got %+v", got)
	}
}

func TestCategoriesDistinctOrdered(t *testing.T) {
	got := catalog.Fixed().Categories()
	want := []string{"electronics", "kitchen", "accessories"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

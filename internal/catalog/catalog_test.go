package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	t.Run("codes are unique", func(t *testing.T) {
		seen := make(map[string]string)
		for _, it := range Items {
			if prev, ok := seen[it.Code]; ok {
				t.Errorf("code %s used by both %s and %s", it.Code, prev, it.Name)
			}
			seen[it.Code] = it.Name
		}
	})

	t.Run("lookup by code", func(t *testing.T) {
		it, ok := c.ByCode("110K01119")
		if !ok {
			t.Fatal("110K01119 not found")
		}
		if it.Name != "자장면" || it.BasePrice != 5000 || it.Category != "한식 외식" {
			t.Errorf("unexpected item: %+v", it)
		}
	})

	t.Run("lookup by name", func(t *testing.T) {
		it, ok := c.ByName("라면")
		if !ok {
			t.Fatal("라면 not found")
		}
		if it.Code != "110A01110" {
			t.Errorf("code = %s, want 110A01110", it.Code)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, ok := c.ByCode("nope"); ok {
			t.Error("expected miss for unknown code")
		}
	})

	t.Run("categories preserve table order", func(t *testing.T) {
		cats := c.Categories()
		if len(cats) == 0 {
			t.Fatal("no categories")
		}
		if cats[0].Name != "한식 외식" {
			t.Errorf("first category = %s, want 한식 외식", cats[0].Name)
		}
		if cats[len(cats)-1].Name != "종합지수" {
			t.Errorf("last category = %s, want 종합지수", cats[len(cats)-1].Name)
		}
		total := 0
		for _, cat := range cats {
			total += len(cat.Items)
		}
		if total != c.Len() {
			t.Errorf("grouped %d items, catalog has %d", total, c.Len())
		}
	})

	t.Run("category items", func(t *testing.T) {
		items, ok := c.CategoryItems("통신")
		if !ok {
			t.Fatal("통신 not found")
		}
		if len(items) != 2 {
			t.Errorf("len = %d, want 2", len(items))
		}
	})
}

func TestSlug(t *testing.T) {
	cases := []struct {
		name, slug string
	}{
		{"삼겹살 (외식)", "삼겹살-(외식)"},
		{"커피 (마트)", "커피-(마트)"},
		{"라면", "라면"},
	}
	for _, tc := range cases {
		if got := ToSlug(tc.name); got != tc.slug {
			t.Errorf("ToSlug(%q) = %q, want %q", tc.name, got, tc.slug)
		}
		if got := FromSlug(tc.slug); got != tc.name {
			t.Errorf("FromSlug(%q) = %q, want %q", tc.slug, got, tc.name)
		}
	}
}

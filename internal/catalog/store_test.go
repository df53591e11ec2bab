package catalog_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"folio.dev/internal/catalog"
	"folio.dev/internal/models"
)

func fixture() []models.Project {
	return []models.Project{
		{ID: 1, Title: "CloudSync Pro", Category: models.CategoryWeb, Tags: []string{"React", "Node.js", "AWS"}, Description: "Cloud synchronization platform", Price: models.PriceLabel("Enterprise"), Rating: 4.9, Year: 2024, Featured: true},
		{ID: 2, Title: "DataViz Dashboard", Category: models.CategoryWeb, Tags: []string{"Vue.js", "D3.js"}, Description: "Real-time data visualization", Price: models.PriceInt(199), Discount: 75, Rating: 4.7, Year: 2024},
		{ID: 3, Title: "AI Assistant Bot", Category: models.CategoryAI, Tags: []string{"Python", "NLP"}, Description: "Intelligent chatbot", Price: models.PriceInt(0), Rating: 4.8, Year: 2023},
		{ID: 4, Title: "Mobile Banking App", Category: models.CategoryMobile, Tags: []string{"React Native", "Firebase"}, Description: "Secure banking with biometrics", Price: models.PriceLabel("Custom"), Rating: 5.0, Year: 2024, Featured: true},
		{ID: 5, Title: "E-Commerce Platform", Category: models.CategoryWeb, Tags: []string{"Next.js", "Stripe"}, Description: "Full-stack shop", Price: models.PriceInt(299), Discount: 50, Rating: 4.6, Year: 2023},
		{ID: 6, Title: "Game Engine Tools", Category: models.CategoryGameDev, Tags: []string{"C++", "Vulkan"}, Description: "Engine editor", Price: models.PriceLabel("License"), Rating: 4.9, Year: 2024, Featured: true},
	}
}

func newStore(t *testing.T, projects []models.Project) *catalog.Store {
	t.Helper()
	s, err := catalog.New(projects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func ids(projects []models.Project) []int {
	out := make([]int, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := catalog.New([]models.Project{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}})
	if !errors.Is(err, models.ErrInvalidSeed) {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
}

func TestStore_AllPreservesOrderAndIsolation(t *testing.T) {
	s := newStore(t, fixture())

	all := s.All()
	if got := ids(all); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected order: %v", got)
	}

	all[0].Title = "changed"
	all[0].Tags[0] = "changed"
	again := s.All()
	if again[0].Title != "CloudSync Pro" || again[0].Tags[0] != "React" {
		t.Fatalf("store was mutated through All(): %+v", again[0])
	}
}

func TestStore_ByCategory(t *testing.T) {
	s := newStore(t, fixture())

	tests := []struct {
		category string
		want     []int
	}{
		{category: "all", want: []int{1, 2, 3, 4, 5, 6}},
		{category: "", want: []int{1, 2, 3, 4, 5, 6}},
		{category: "web", want: []int{1, 2, 5}},
		{category: "ai", want: []int{3}},
		{category: "backend", want: []int{}},
		{category: "WEB", want: []int{}},
	}

	for _, tt := range tests {
		got := ids(s.ByCategory(tt.category))
		if !slices.Equal(got, tt.want) {
			t.Errorf("ByCategory(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestFilterCategory_AllIsIdentity(t *testing.T) {
	in := fixture()
	out := catalog.FilterCategory(in, "all")
	if len(out) != len(in) || &out[0] != &in[0] {
		t.Fatal("expected the input sequence to be returned unchanged")
	}
}

func TestStore_Search(t *testing.T) {
	s := newStore(t, fixture())

	tests := []struct {
		query string
		want  []int
	}{
		{query: "", want: []int{1, 2, 3, 4, 5, 6}},
		{query: "react", want: []int{1, 4}},
		{query: "FIREBASE", want: []int{4}},
		{query: "chatbot", want: []int{3}},
		{query: "platform", want: []int{1, 5}},
		{query: "engine", want: []int{6}},
		{query: "cobol", want: []int{}},
	}

	for _, tt := range tests {
		got := ids(s.Search(tt.query))
		if !slices.Equal(got, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterSearch_EveryResultContainsQuery(t *testing.T) {
	for _, q := range []string{"a", "js", "Pro", "tool", "e"} {
		lower := strings.ToLower(q)
		for _, p := range catalog.FilterSearch(fixture(), q) {
			hit := strings.Contains(strings.ToLower(p.Title), lower) ||
				strings.Contains(strings.ToLower(p.Description), lower)
			for _, tag := range p.Tags {
				hit = hit || strings.Contains(strings.ToLower(tag), lower)
			}
			if !hit {
				t.Errorf("query %q matched project %d without a substring hit", q, p.ID)
			}
		}
	}
}

func TestStore_SortedBy(t *testing.T) {
	s := newStore(t, fixture())

	tests := []struct {
		key  catalog.SortKey
		want []int
	}{
		{key: catalog.SortNone, want: []int{1, 2, 3, 4, 5, 6}},
		{key: catalog.SortNewest, want: []int{1, 2, 4, 6, 3, 5}},
		{key: catalog.SortRating, want: []int{4, 1, 6, 3, 2, 5}},
		{key: catalog.SortPriceLow, want: []int{3, 2, 5, 1, 4, 6}},
		{key: catalog.SortPriceHigh, want: []int{5, 2, 3, 1, 4, 6}},
		{key: catalog.SortKey("alphabetical"), want: []int{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		got := ids(s.SortedBy(tt.key))
		if !slices.Equal(got, tt.want) {
			t.Errorf("SortedBy(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}

	if got := ids(s.All()); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("sorting changed the canonical order: %v", got)
	}
}

func TestSort_IsStable(t *testing.T) {
	projects := []models.Project{
		{ID: 10, Year: 2022, Rating: 4},
		{ID: 11, Year: 2024, Rating: 4},
		{ID: 12, Year: 2022, Rating: 4},
		{ID: 13, Year: 2024, Rating: 4},
	}

	if got := ids(catalog.Sort(projects, catalog.SortNewest)); !slices.Equal(got, []int{11, 13, 10, 12}) {
		t.Fatalf("newest not stable: %v", got)
	}
	if got := ids(catalog.Sort(projects, catalog.SortRating)); !slices.Equal(got, []int{10, 11, 12, 13}) {
		t.Fatalf("rating not stable: %v", got)
	}
}

func TestSort_PriceOrdersAreReversesWithLabelsLast(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Price: models.PriceLabel("Enterprise")},
		{ID: 2, Price: models.PriceInt(50)},
		{ID: 3, Price: models.PriceInt(10)},
		{ID: 4, Price: models.PriceLabel("Custom")},
		{ID: 5, Price: models.PriceInt(75)},
	}

	low := ids(catalog.Sort(projects, catalog.SortPriceLow))
	high := ids(catalog.Sort(projects, catalog.SortPriceHigh))

	if !slices.Equal(low, []int{3, 2, 5, 1, 4}) {
		t.Fatalf("price-low = %v", low)
	}
	if !slices.Equal(high, []int{5, 2, 3, 1, 4}) {
		t.Fatalf("price-high = %v", high)
	}

	numericLow := slices.Clone(low[:3])
	slices.Reverse(numericLow)
	if !slices.Equal(numericLow, high[:3]) {
		t.Fatalf("numeric prefixes are not reverses: %v vs %v", low[:3], high[:3])
	}
}

func TestSort_PriceScenario(t *testing.T) {
	projects := []models.Project{
		{ID: 1, Price: models.PriceInt(199), Discount: 75},
		{ID: 2, Price: models.PriceInt(0)},
		{ID: 3, Price: models.PriceLabel("Enterprise")},
	}

	if got := ids(catalog.Sort(projects, catalog.SortPriceLow)); !slices.Equal(got, []int{2, 1, 3}) {
		t.Fatalf("got %v, want [2 1 3]", got)
	}
}

func TestParseSortKey(t *testing.T) {
	if k, ok := catalog.ParseSortKey("price-high"); !ok || k != catalog.SortPriceHigh {
		t.Fatalf("got %q %v", k, ok)
	}
	if k, ok := catalog.ParseSortKey("cheapest"); ok || k != catalog.SortNone {
		t.Fatalf("unknown key should fall back to none, got %q %v", k, ok)
	}
}

func TestStore_QueryOrder(t *testing.T) {
	s := newStore(t, fixture())

	got := ids(s.Query("web", "platform", catalog.SortPriceLow))
	if !slices.Equal(got, []int{5, 1}) {
		t.Fatalf("got %v, want [5 1]", got)
	}
}

func TestStore_FindByID(t *testing.T) {
	s := newStore(t, fixture())

	p, ok := s.FindByID(4)
	if !ok || p.Title != "Mobile Banking App" {
		t.Fatalf("got %+v %v", p, ok)
	}
	if _, ok := s.FindByID(99); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestStore_CategoriesAndFeatured(t *testing.T) {
	s := newStore(t, fixture())

	cats := s.Categories()
	want := []models.CategoryCount{
		{Category: "all", Count: 6},
		{Category: "web", Count: 3},
		{Category: "ai", Count: 1},
		{Category: "mobile", Count: 1},
		{Category: "gamedev", Count: 1},
	}
	if !slices.Equal(cats, want) {
		t.Fatalf("got %+v", cats)
	}

	if got := ids(s.Featured()); !slices.Equal(got, []int{1, 4, 6}) {
		t.Fatalf("featured = %v", got)
	}
}

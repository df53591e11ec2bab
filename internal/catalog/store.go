// Package catalog holds the immutable project list and the derived-view
// queries over it: category filter, text search and sorting.
package catalog

import (
	"fmt"
	"strings"

	"folio.dev/internal/models"
)

// AllCategories is the filter value that disables category filtering
const AllCategories = string(models.CategoryAll)

// Store is the read-only project catalog. It is safe for concurrent use
// because nothing mutates it after New returns.
type Store struct {
	projects []models.Project
	index    map[int]int
}

// New builds a store from seed records, keeping their order.
// Duplicate ids are rejected.
func New(projects []models.Project) (*Store, error) {
	s := &Store{
		projects: make([]models.Project, 0, len(projects)),
		index:    make(map[int]int, len(projects)),
	}

	for _, p := range projects {
		if _, dup := s.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate project id %d", models.ErrInvalidSeed, p.ID)
		}
		s.index[p.ID] = len(s.projects)
		s.projects = append(s.projects, p.Clone())
	}

	return s, nil
}

// Len returns the number of projects in the catalog
func (s *Store) Len() int {
	return len(s.projects)
}

// All returns the full catalog in insertion order
func (s *Store) All() []models.Project {
	out := make([]models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// ByCategory returns the projects filed under category; "all" returns
// the whole catalog
func (s *Store) ByCategory(category string) []models.Project {
	return FilterCategory(s.All(), category)
}

// Search returns the projects matching query
func (s *Store) Search(query string) []models.Project {
	return FilterSearch(s.All(), query)
}

// SortedBy returns the catalog ordered by key without touching the store
func (s *Store) SortedBy(key SortKey) []models.Project {
	return Sort(s.All(), key)
}

// FindByID looks a project up in the canonical catalog
func (s *Store) FindByID(id int) (models.Project, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Project{}, false
	}
	return s.projects[i].Clone(), true
}

// Query applies filter, then search, then sort
func (s *Store) Query(category, query string, key SortKey) []models.Project {
	return Sort(FilterSearch(FilterCategory(s.All(), category), query), key)
}

// Featured returns the featured projects in catalog order
func (s *Store) Featured() []models.Project {
	var out []models.Project
	for _, p := range s.projects {
		if p.Featured {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Categories counts projects per category, "all" first and the rest in
// order of first appearance
func (s *Store) Categories() []models.CategoryCount {
	counts := []models.CategoryCount{{Category: models.CategoryAll, Count: len(s.projects)}}
	seen := make(map[models.Category]int)

	for _, p := range s.projects {
		i, ok := seen[p.Category]
		if !ok {
			i = len(counts)
			seen[p.Category] = i
			counts = append(counts, models.CategoryCount{Category: p.Category})
		}
		counts[i].Count++
	}

	return counts
}

// FilterCategory keeps the projects whose category equals category, in
// their original relative order. "all" and the empty string return
// projects unchanged.
func FilterCategory(projects []models.Project, category string) []models.Project {
	if category == AllCategories || strings.TrimSpace(category) == "" {
		return projects
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterSearch keeps the projects whose title, description or any tag
// contains query, ignoring case. An empty query returns projects unchanged.
func FilterSearch(projects []models.Project, query string) []models.Project {
	if query == "" {
		return projects
	}

	q := strings.ToLower(query)
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p matches an already lower-cased query
func Matches(p models.Project, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

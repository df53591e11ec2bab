package services

import (
	"fmt"

	"folio.dev/internal/catalog"
	"folio.dev/internal/models"
	"folio.dev/internal/render"
)

// ProjectService answers stateless catalog queries
type ProjectService struct {
	store *catalog.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *catalog.Store) *ProjectService {
	return &ProjectService{store: store}
}

// Store returns the underlying catalog
func (s *ProjectService) Store() *catalog.Store {
	return s.store
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.store.All()
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id int) (*models.Project, error) {
	p, ok := s.store.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrProjectNotFound, id)
	}
	return &p, nil
}

// GetDetail returns the modal content for a project
func (s *ProjectService) GetDetail(id int) (*models.Detail, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	d := render.Detail(*p)
	return &d, nil
}

// List renders the projects matching category, query and sort.
// Unknown sort keys fall back to catalog order.
func (s *ProjectService) List(category, query, sort string) models.View {
	key, _ := catalog.ParseSortKey(sort)
	if category == "" {
		category = catalog.AllCategories
	}

	view := render.View(s.store.Query(category, query, key), s.store.Len())
	view.Category = category
	view.Query = query
	view.Sort = string(key)
	return view
}

// Featured renders the featured projects
func (s *ProjectService) Featured() []models.Card {
	return render.Cards(s.store.Featured())
}

// Categories returns the filter buttons with counts and icons
func (s *ProjectService) Categories() []models.CategoryCount {
	cats := s.store.Categories()
	for i := range cats {
		if cats[i].Category != models.CategoryAll {
			cats[i].Icon = render.Icon(cats[i].Category)
		}
	}
	return cats
}

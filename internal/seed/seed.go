// Package seed loads and validates the catalog's project records.
package seed

import (
	_ "embed"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"folio.dev/internal/models"
)

//go:embed projects.json
var defaultProjects []byte

var validate = validator.New()

// Default returns the projects bundled with the binary
func Default() (*models.ProjectList, error) {
	return Parse(defaultProjects)
}

// Load reads projects from path, or the bundled projects when path is empty
func Load(path string) (*models.ProjectList, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return list, nil
}

// Parse decodes and validates a {"projects": [...]} document. Unknown
// fields are rejected.
func Parse(data []byte) (*models.ProjectList, error) {
	var list models.ProjectList
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidSeed, err)
	}

	if err := validate.Struct(&list); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return nil, fmt.Errorf("%w: %s failed on '%s' validation", models.ErrInvalidSeed, fe.Namespace(), fe.Tag())
		}
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidSeed, err)
	}

	seen := make(map[int]struct{}, len(list.Projects))
	for i, p := range list.Projects {
		if p.Price.IsZero() {
			return nil, fmt.Errorf("%w: projects[%d] has no price", models.ErrInvalidSeed, i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate project id %d", models.ErrInvalidSeed, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &list, nil
}

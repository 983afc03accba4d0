package memory

import (
	"context"

	"policywizard/internal/core/apperror"
	"policywizard/internal/domain/catalogs/policysection"
)

// Compile-time check.
var _ policysection.Repository = (*PolicySectionRepo)(nil)

// PolicySectionRepo reads the seeded section catalog.
type PolicySectionRepo struct {
	store *Store
}

// NewPolicySectionRepo creates a new section catalog repository.
func NewPolicySectionRepo(store *Store) *PolicySectionRepo {
	return &PolicySectionRepo{store: store}
}

// List returns copies of the catalog in seed order.
func (r *PolicySectionRepo) List(ctx context.Context) ([]*policysection.PolicySection, error) {
	s := r.store
	var out []*policysection.PolicySection
	s.read(ctx, func() {
		out = make([]*policysection.PolicySection, len(s.sections))
		for i, section := range s.sections {
			out[i] = cloneSection(section)
		}
	})
	return out, nil
}

// GetByID returns a copy of the section.
func (r *PolicySectionRepo) GetByID(ctx context.Context, sectionID policysection.ID) (*policysection.PolicySection, error) {
	s := r.store
	var found *policysection.PolicySection
	s.read(ctx, func() {
		if i, ok := s.sectionIndex[sectionID]; ok {
			found = cloneSection(s.sections[i])
		}
	})
	if found == nil {
		return nil, apperror.NewNotFound("policy section", sectionID)
	}
	return found, nil
}

// Exists reports whether the id is in the catalog.
func (r *PolicySectionRepo) Exists(ctx context.Context, sectionID policysection.ID) (bool, error) {
	s := r.store
	var ok bool
	s.read(ctx, func() {
		_, ok = s.sectionIndex[sectionID]
	})
	return ok, nil
}

package memory

import (
	"context"

	"policywizard/internal/core/apperror"
	"policywizard/internal/domain/catalogs/organization"
)

// Compile-time check.
var _ organization.Repository = (*OrganizationRepo)(nil)

// OrganizationRepo stores organizations in the Store.
type OrganizationRepo struct {
	store *Store
}

// NewOrganizationRepo creates a new organization repository.
func NewOrganizationRepo(store *Store) *OrganizationRepo {
	return &OrganizationRepo{store: store}
}

// Create assigns the next id and appends a copy of org.
func (r *OrganizationRepo) Create(ctx context.Context, org *organization.Organization) error {
	s := r.store
	return s.write(ctx, func() error {
		org.ID = s.orgSeq.Next()
		s.orgIndex[org.ID] = len(s.organizations)
		s.organizations = append(s.organizations, cloneOrganization(org))
		return nil
	})
}

// GetByID returns a copy of the organization.
func (r *OrganizationRepo) GetByID(ctx context.Context, orgID organization.ID) (*organization.Organization, error) {
	s := r.store
	var found *organization.Organization
	s.read(ctx, func() {
		if i, ok := s.orgIndex[orgID]; ok {
			found = cloneOrganization(s.organizations[i])
		}
	})
	if found == nil {
		return nil, apperror.NewNotFound("organization", orgID)
	}
	return found, nil
}

// List returns copies of all organizations in creation order.
func (r *OrganizationRepo) List(ctx context.Context) ([]*organization.Organization, error) {
	s := r.store
	var out []*organization.Organization
	s.read(ctx, func() {
		out = make([]*organization.Organization, len(s.organizations))
		for i, o := range s.organizations {
			out[i] = cloneOrganization(o)
		}
	})
	return out, nil
}

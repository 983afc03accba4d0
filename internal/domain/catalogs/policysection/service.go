package policysection

import (
	"context"

	"policywizard/internal/core/apperror"
	"policywizard/internal/domain/catalogs/organization"
)

// Service provides read operations over the section catalog.
type Service struct {
	repo Repository
}

// NewService creates a new section catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns catalog sections matching c.
func (s *Service) List(ctx context.Context, c Criteria) ([]*PolicySection, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("entity", "policy section")
	}
	return Filter(all, c), nil
}

// Applicable returns the sections applicable to org.
func (s *Service) Applicable(ctx context.Context, org *organization.Organization) ([]*PolicySection, error) {
	return s.List(ctx, CriteriaFor(org))
}

// Missing returns the ids that do not resolve against the catalog, in input order
// and without repeats. An empty result means every id is valid.
func (s *Service) Missing(ctx context.Context, ids []ID) ([]ID, error) {
	missing := make([]ID, 0)
	seen := make(map[ID]struct{}, len(ids))
	for _, sectionID := range ids {
		if _, dup := seen[sectionID]; dup {
			continue
		}
		seen[sectionID] = struct{}{}

		ok, err := s.repo.Exists(ctx, sectionID)
		if err != nil {
			return nil, apperror.NewInternal(err).WithDetail("entity", "policy section")
		}
		if !ok {
			missing = append(missing, sectionID)
		}
	}
	return missing, nil
}

// Resolve loads sections in the order of ids, keeping duplicates.
// Ids that no longer resolve are returned separately.
func (s *Service) Resolve(ctx context.Context, ids []ID) (found []*PolicySection, missing []ID, err error) {
	found = make([]*PolicySection, 0, len(ids))
	for _, sectionID := range ids {
		section, err := s.repo.GetByID(ctx, sectionID)
		if err != nil {
			if apperror.IsNotFound(err) {
				missing = append(missing, sectionID)
				continue
			}
			return nil, nil, apperror.NewInternal(err).WithDetail("entity", "policy section")
		}
		found = append(found, section)
	}
	return found, missing, nil
}

package generatedpolicy

import (
	"context"
	"fmt"

	"policywizard/internal/core/apperror"
	"policywizard/internal/core/tx"
	"policywizard/internal/domain/catalogs/organization"
	"policywizard/internal/domain/catalogs/policysection"
	"policywizard/pkg/logger"
)

// Validation failure reasons reported to Observer.
const (
	ReasonInvalidInput        = "invalid_input"
	ReasonUnknownOrganization = "unknown_organization"
	ReasonInvalidSections     = "invalid_sections"
)

// OrganizationReader resolves organizations.
type OrganizationReader interface {
	GetByID(ctx context.Context, id organization.ID) (*organization.Organization, error)
}

// SectionCatalog checks and resolves section ids.
type SectionCatalog interface {
	Missing(ctx context.Context, ids []policysection.ID) ([]policysection.ID, error)
	Resolve(ctx context.Context, ids []policysection.ID) ([]*policysection.PolicySection, []policysection.ID, error)
}

// Observer receives generation outcomes. Used for metrics.
type Observer interface {
	PolicyCreated(status Status)
	ValidationFailed(reason string)
}

type nopObserver struct{}

func (nopObserver) PolicyCreated(Status)   {}
func (nopObserver) ValidationFailed(string) {}

// Service assembles, validates and retrieves generated policies.
type Service struct {
	repo          Repository
	organizations OrganizationReader
	sections      SectionCatalog
	txManager     tx.Manager
	observer      Observer
}

// ServiceConfig configures the generated policy service.
type ServiceConfig struct {
	Repo          Repository
	Organizations OrganizationReader
	Sections      SectionCatalog
	TxManager     tx.Manager
	Observer      Observer // Optional
}

// NewService creates a new generated policy service.
func NewService(cfg ServiceConfig) *Service {
	observer := cfg.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	return &Service{
		repo:          cfg.Repo,
		organizations: cfg.Organizations,
		sections:      cfg.Sections,
		txManager:     cfg.TxManager,
		observer:      observer,
	}
}

// Create validates references and appends the policy.
//
// Order: field checks, organization lookup, then section ids. Every invalid
// section id is reported at once and nothing is stored. The caller's section
// choice is not re-checked for applicability.
func (s *Service) Create(ctx context.Context, policy *GeneratedPolicy) error {
	if err := policy.Validate(ctx); err != nil {
		s.observer.ValidationFailed(ReasonInvalidInput)
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.organizations.GetByID(ctx, policy.OrganizationID); err != nil {
			if apperror.IsNotFound(err) {
				s.observer.ValidationFailed(ReasonUnknownOrganization)
				return apperror.NewInvalidReference("organization", policy.OrganizationID)
			}
			return err
		}

		missing, err := s.sections.Missing(ctx, policy.SelectedSections)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			s.observer.ValidationFailed(ReasonInvalidSections)
			return apperror.NewInvalidSections(missing)
		}

		if err := s.repo.Create(ctx, policy); err != nil {
			return fmt.Errorf("create generated policy: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.observer.PolicyCreated(policy.Status)
	logger.Info(ctx, "policy generated",
		"policy_id", policy.ID,
		"organization_id", policy.OrganizationID,
		"sections", len(policy.SelectedSections),
		"status", policy.Status,
	)
	return nil
}

// GetByID returns the policy without joins.
func (s *Service) GetByID(ctx context.Context, policyID ID) (*GeneratedPolicy, error) {
	policy, err := s.repo.GetByID(ctx, policyID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("generated policy", policyID)
		}
		return nil, apperror.NewInternal(err).WithDetail("entity", "generated policy")
	}
	return policy, nil
}

// GetDetail joins the policy with its organization and resolved sections.
// Sections follow SelectedSections order. A section id that no longer
// resolves is reported as a data integrity error, never dropped.
func (s *Service) GetDetail(ctx context.Context, policyID ID) (*Detail, error) {
	policy, err := s.GetByID(ctx, policyID)
	if err != nil {
		return nil, err
	}

	org, err := s.organizations.GetByID(ctx, policy.OrganizationID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("organization", policy.OrganizationID).
				WithDetail("policyId", policyID)
		}
		return nil, err
	}

	sections, missing, err := s.sections.Resolve(ctx, policy.SelectedSections)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		logger.Error(ctx, "generated policy references missing sections",
			"policy_id", policyID,
			"missing", missing,
		)
		return nil, apperror.NewDataIntegrity("generated policy references sections missing from the catalog").
			WithDetail("policyId", policyID).
			WithDetail(apperror.DetailInvalidIDs, missing)
	}

	return &Detail{
		Policy:       policy,
		Organization: org,
		Sections:     sections,
	}, nil
}

// List returns policies in summary form.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*GeneratedPolicy, error) {
	policies, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("entity", "generated policy")
	}
	return policies, nil
}

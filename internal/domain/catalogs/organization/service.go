package organization

import (
	"context"
	"fmt"

	"policywizard/internal/core/apperror"
	"policywizard/internal/core/tx"
	"policywizard/pkg/logger"
)

// Service provides business logic for Organization catalog.
type Service struct {
	repo      Repository
	txManager tx.Manager
	onCreate  func(*Organization)
}

// ServiceOption customizes Service.
type ServiceOption func(*Service)

// WithCreateHook registers a callback run after a successful create.
func WithCreateHook(fn func(*Organization)) ServiceOption {
	return func(s *Service) {
		s.onCreate = fn
	}
}

// NewService creates a new Organization service.
func NewService(repo Repository, txManager tx.Manager, opts ...ServiceOption) *Service {
	s := &Service{
		repo:      repo,
		txManager: txManager,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and registers a new organization.
// INN/KPP uniqueness is not enforced.
func (s *Service) Create(ctx context.Context, org *Organization) error {
	if err := org.Validate(ctx); err != nil {
		return normalizeValidationErr(err)
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, org); err != nil {
			return fmt.Errorf("create organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "organization created",
		"organization_id", org.ID,
		"accounting_type", org.AccountingType,
	)
	if s.onCreate != nil {
		s.onCreate(org)
	}
	return nil
}

// GetByID retrieves an organization.
func (s *Service) GetByID(ctx context.Context, orgID ID) (*Organization, error) {
	org, err := s.repo.GetByID(ctx, orgID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("organization", orgID)
		}
		return nil, apperror.NewInternal(err).WithDetail("entity", "organization")
	}
	return org, nil
}

// List returns all organizations.
func (s *Service) List(ctx context.Context) ([]*Organization, error) {
	orgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal(err).WithDetail("entity", "organization")
	}
	return orgs, nil
}

func normalizeValidationErr(err error) error {
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

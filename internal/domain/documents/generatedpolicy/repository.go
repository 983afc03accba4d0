package generatedpolicy

import (
	"context"

	"policywizard/internal/domain/catalogs/organization"
)

// ListFilter narrows List results. Zero value lists everything.
type ListFilter struct {
	OrganizationID *organization.ID
}

// Repository defines the interface for generated policy storage.
type Repository interface {
	// Create assigns a fresh id and appends the policy
	Create(ctx context.Context, policy *GeneratedPolicy) error

	// GetByID returns apperror NotFound when the id does not resolve
	GetByID(ctx context.Context, id ID) (*GeneratedPolicy, error)

	// List returns policies in creation order
	List(ctx context.Context, filter ListFilter) ([]*GeneratedPolicy, error)
}

package organization

import (
	"context"
)

// Repository defines the interface for organization storage.
type Repository interface {
	// Create assigns a fresh id and appends the organization
	Create(ctx context.Context, org *Organization) error

	// GetByID returns apperror NotFound when the id does not resolve
	GetByID(ctx context.Context, id ID) (*Organization, error)

	// List returns organizations in creation order
	List(ctx context.Context) ([]*Organization, error)
}

package policysection

import (
	"context"
)

// Repository defines read access to the section catalog.
type Repository interface {
	// List returns the whole catalog in its natural order
	List(ctx context.Context) ([]*PolicySection, error)

	// GetByID returns apperror NotFound when the id does not resolve
	GetByID(ctx context.Context, id ID) (*PolicySection, error)

	// Exists reports whether a section with the id is in the catalog
	Exists(ctx context.Context, id ID) (bool, error)
}

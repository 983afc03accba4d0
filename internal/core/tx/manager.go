// Package tx provides transaction management abstractions.
// Domain services depend on this interface, the implementation lives in
// infrastructure/storage.
package tx

import (
	"context"
)

// Manager defines the contract for transaction management.
type Manager interface {
	// RunInTransaction executes fn atomically with respect to other writers.
	// If fn returns an error, nothing fn wrote is kept.
	//
	// Nested calls reuse the existing transaction from context.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

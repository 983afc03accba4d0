package memory

import (
	"context"

	"policywizard/internal/core/apperror"
	"policywizard/internal/domain/documents/generatedpolicy"
)

// Compile-time check.
var _ generatedpolicy.Repository = (*GeneratedPolicyRepo)(nil)

// GeneratedPolicyRepo stores generated policies in the Store.
type GeneratedPolicyRepo struct {
	store *Store
}

// NewGeneratedPolicyRepo creates a new generated policy repository.
func NewGeneratedPolicyRepo(store *Store) *GeneratedPolicyRepo {
	return &GeneratedPolicyRepo{store: store}
}

// Create assigns the next id and appends a copy of policy.
func (r *GeneratedPolicyRepo) Create(ctx context.Context, policy *generatedpolicy.GeneratedPolicy) error {
	s := r.store
	return s.write(ctx, func() error {
		policy.ID = s.policySeq.Next()
		s.policyIndex[policy.ID] = len(s.policies)
		s.policies = append(s.policies, clonePolicy(policy))
		return nil
	})
}

// GetByID returns a copy of the policy.
func (r *GeneratedPolicyRepo) GetByID(ctx context.Context, policyID generatedpolicy.ID) (*generatedpolicy.GeneratedPolicy, error) {
	s := r.store
	var found *generatedpolicy.GeneratedPolicy
	s.read(ctx, func() {
		if i, ok := s.policyIndex[policyID]; ok {
			found = clonePolicy(s.policies[i])
		}
	})
	if found == nil {
		return nil, apperror.NewNotFound("generated policy", policyID)
	}
	return found, nil
}

// List returns copies of policies in creation order.
func (r *GeneratedPolicyRepo) List(ctx context.Context, filter generatedpolicy.ListFilter) ([]*generatedpolicy.GeneratedPolicy, error) {
	s := r.store
	out := make([]*generatedpolicy.GeneratedPolicy, 0)
	s.read(ctx, func() {
		for _, p := range s.policies {
			if filter.OrganizationID != nil && p.OrganizationID != *filter.OrganizationID {
				continue
			}
			out = append(out, clonePolicy(p))
		}
	})
	return out, nil
}

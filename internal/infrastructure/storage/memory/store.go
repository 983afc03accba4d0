// Package memory provides the in-process storage of the application.
// All data lives in a Store and is lost on restart; the section catalog is
// re-seeded by NewStore.
package memory

import (
	"context"
	"slices"
	"sync"

	"policywizard/internal/core/id"
	"policywizard/internal/domain/catalogs/organization"
	"policywizard/internal/domain/catalogs/policysection"
	"policywizard/internal/domain/documents/generatedpolicy"
)

// Store owns the three tables and their id sequences.
// It is the single handle passed to repositories.
type Store struct {
	mu sync.RWMutex

	organizations []*organization.Organization
	orgIndex      map[id.ID]int
	orgSeq        id.Sequence

	sections     []*policysection.PolicySection
	sectionIndex map[id.ID]int
	sectionSeq   id.Sequence

	policies    []*generatedpolicy.GeneratedPolicy
	policyIndex map[id.ID]int
	policySeq   id.Sequence
}

// Stats reports table sizes.
type Stats struct {
	Organizations     int `json:"organizations"`
	PolicySections    int `json:"policySections"`
	GeneratedPolicies int `json:"generatedPolicies"`
}

// NewStore creates a store seeded with DefaultCatalog.
func NewStore() *Store {
	return NewStoreWithCatalog(DefaultCatalog())
}

// NewStoreWithCatalog creates a store seeded with the given sections.
// Section ids are reassigned in slice order starting at 1.
func NewStoreWithCatalog(catalog []policysection.PolicySection) *Store {
	s := &Store{
		orgIndex:     make(map[id.ID]int),
		sectionIndex: make(map[id.ID]int),
		policyIndex:  make(map[id.ID]int),
	}
	for i := range catalog {
		section := cloneSection(&catalog[i])
		section.ID = s.sectionSeq.Next()
		s.sectionIndex[section.ID] = len(s.sections)
		s.sections = append(s.sections, section)
	}
	return s
}

// Stats returns current table sizes.
func (s *Store) Stats(ctx context.Context) Stats {
	var st Stats
	s.read(ctx, func() {
		st = Stats{
			Organizations:     len(s.organizations),
			PolicySections:    len(s.sections),
			GeneratedPolicies: len(s.policies),
		}
	})
	return st
}

// txKey marks a context that already holds the store's write lock.
type txKey struct{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// read runs fn under the read lock unless ctx already holds the write lock.
func (s *Store) read(ctx context.Context, fn func()) {
	if inTx(ctx) {
		fn()
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// write runs fn under the write lock unless ctx already holds it.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if inTx(ctx) {
		return fn()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// snapshot records table lengths so a failed transaction can be undone.
// Tables are append-only, so truncation restores the previous state.
type snapshot struct {
	organizations int
	policies      int
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		organizations: len(s.organizations),
		policies:      len(s.policies),
	}
}

func (s *Store) restore(snap snapshot) {
	for _, o := range s.organizations[snap.organizations:] {
		delete(s.orgIndex, o.ID)
	}
	s.organizations = s.organizations[:snap.organizations]

	for _, p := range s.policies[snap.policies:] {
		delete(s.policyIndex, p.ID)
	}
	s.policies = s.policies[:snap.policies]
}

func cloneOrganization(o *organization.Organization) *organization.Organization {
	c := *o
	if o.Industry != nil {
		industry := *o.Industry
		c.Industry = &industry
	}
	return &c
}

func cloneSection(p *policysection.PolicySection) *policysection.PolicySection {
	c := *p
	c.Industries = slices.Clone(p.Industries)
	return &c
}

func clonePolicy(p *generatedpolicy.GeneratedPolicy) *generatedpolicy.GeneratedPolicy {
	c := *p
	c.SelectedSections = slices.Clone(p.SelectedSections)
	if c.SelectedSections == nil {
		c.SelectedSections = []policysection.ID{}
	}
	return &c
}

// Package policysection provides the catalog of accounting policy sections
// and the rule deciding which sections apply to an organization.
package policysection

import (
	"slices"

	"policywizard/internal/core/id"
)

// ID is the policy section identifier.
type ID = id.ID

// PolicySection is one seeded clause of the policy catalog.
// Sections are created at store initialization and never mutated.
type PolicySection struct {
	ID ID `json:"id"`

	// SectionNumber is the display label, e.g. "2.3"
	SectionNumber string `json:"sectionNumber"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// BudgetAccounting marks the section applicable to budget accounting organizations
	BudgetAccounting bool `json:"budgetAccounting"`

	// BusinessAccounting marks the section applicable to business accounting organizations
	BusinessAccounting bool `json:"businessAccounting"`

	// IndustrySpecific restricts the section to Industries
	IndustrySpecific bool `json:"industrySpecific"`

	// Industries is only meaningful when IndustrySpecific is true
	Industries []string `json:"industries"`
}

// HasIndustry reports whether industry is listed in the section's industries.
func (s *PolicySection) HasIndustry(industry string) bool {
	return slices.Contains(s.Industries, industry)
}

package policysection

import (
	"policywizard/internal/domain/catalogs/organization"
)

// MatchesAccountingType reports whether the section carries the flag for t.
// A section with neither flag matches no accounting type.
func (s *PolicySection) MatchesAccountingType(t organization.AccountingType) bool {
	switch t {
	case organization.AccountingBudget:
		return s.BudgetAccounting
	case organization.AccountingBusiness:
		return s.BusinessAccounting
	default:
		return false
	}
}

// MatchesIndustry reports whether the section applies to industry.
// Non industry-specific sections match every industry; an empty industry
// never matches an industry-specific section.
func (s *PolicySection) MatchesIndustry(industry string) bool {
	if !s.IndustrySpecific {
		return true
	}
	if industry == "" {
		return false
	}
	return s.HasIndustry(industry)
}

// Criteria selects sections. A nil field is not applied; set fields compose with AND.
type Criteria struct {
	AccountingType *organization.AccountingType
	Industry       *string
}

// CriteriaFor builds the full applicability criteria of an organization.
// An organization without an industry filters by "" and so never receives
// industry-specific sections.
func CriteriaFor(org *organization.Organization) Criteria {
	accountingType := org.AccountingType
	industry := org.IndustryName()
	return Criteria{
		AccountingType: &accountingType,
		Industry:       &industry,
	}
}

// Matches applies every set criterion to s.
func (c Criteria) Matches(s *PolicySection) bool {
	if c.AccountingType != nil && !s.MatchesAccountingType(*c.AccountingType) {
		return false
	}
	if c.Industry != nil && !s.MatchesIndustry(*c.Industry) {
		return false
	}
	return true
}

// Filter returns the sections matching c, keeping catalog order.
func Filter(sections []*PolicySection, c Criteria) []*PolicySection {
	out := make([]*PolicySection, 0, len(sections))
	for _, s := range sections {
		if c.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// ApplicableSections returns the catalog sections applicable to org, in catalog order.
func ApplicableSections(org *organization.Organization, sections []*PolicySection) []*PolicySection {
	return Filter(sections, CriteriaFor(org))
}

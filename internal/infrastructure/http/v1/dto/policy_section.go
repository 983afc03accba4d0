package dto

import (
	"policywizard/internal/domain/catalogs/policysection"
)

// PolicySectionFilter holds the query parameters of GET /api/policy-sections.
type PolicySectionFilter struct {
	AccountingType string `form:"accountingType"`
	Industry       string `form:"industry"`
}

// PolicySectionResponse is the DTO for returning a catalog section.
type PolicySectionResponse struct {
	ID                 int64    `json:"id"`
	SectionNumber      string   `json:"sectionNumber"`
	Title              string   `json:"title"`
	Content            string   `json:"content"`
	BudgetAccounting   bool     `json:"budgetAccounting"`
	BusinessAccounting bool     `json:"businessAccounting"`
	IndustrySpecific   bool     `json:"industrySpecific"`
	Industries         []string `json:"industries"`
}

func FromPolicySection(s *policysection.PolicySection) PolicySectionResponse {
	return PolicySectionResponse{
		ID:                 s.ID,
		SectionNumber:      s.SectionNumber,
		Title:              s.Title,
		Content:            s.Content,
		BudgetAccounting:   s.BudgetAccounting,
		BusinessAccounting: s.BusinessAccounting,
		IndustrySpecific:   s.IndustrySpecific,
		Industries:         s.Industries,
	}
}

func FromPolicySections(sections []*policysection.PolicySection) []PolicySectionResponse {
	return mapSlice(sections, FromPolicySection)
}

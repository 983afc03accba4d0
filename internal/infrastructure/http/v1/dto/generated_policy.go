package dto

import (
	"policywizard/internal/domain/catalogs/policysection"
	"policywizard/internal/domain/documents/generatedpolicy"
)

// CreateGeneratedPolicyRequest is the DTO for storing a wizard result.
type CreateGeneratedPolicyRequest struct {
	OrganizationID   int64   `json:"organizationId" binding:"required"`
	SelectedSections []int64 `json:"selectedSections" binding:"required"`
	GeneratedDate    string  `json:"generatedDate" binding:"required"`
	Status           string  `json:"status" binding:"required"`
}

func (r CreateGeneratedPolicyRequest) ToEntity() *generatedpolicy.GeneratedPolicy {
	return &generatedpolicy.GeneratedPolicy{
		OrganizationID:   r.OrganizationID,
		SelectedSections: append([]policysection.ID{}, r.SelectedSections...),
		GeneratedDate:    r.GeneratedDate,
		Status:           generatedpolicy.Status(r.Status),
	}
}

// GeneratedPolicyFilter holds the query parameters of GET /api/generated-policies.
type GeneratedPolicyFilter struct {
	OrganizationID *int64 `form:"organizationId" binding:"omitempty,min=1"`
}

// GeneratedPolicyResponse is the summary form, without joins.
type GeneratedPolicyResponse struct {
	ID               int64   `json:"id"`
	OrganizationID   int64   `json:"organizationId"`
	SelectedSections []int64 `json:"selectedSections"`
	GeneratedDate    string  `json:"generatedDate"`
	Status           string  `json:"status"`
}

func FromGeneratedPolicy(p *generatedpolicy.GeneratedPolicy) GeneratedPolicyResponse {
	selected := p.SelectedSections
	if selected == nil {
		selected = []int64{}
	}
	return GeneratedPolicyResponse{
		ID:               p.ID,
		OrganizationID:   p.OrganizationID,
		SelectedSections: selected,
		GeneratedDate:    p.GeneratedDate,
		Status:           string(p.Status),
	}
}

func FromGeneratedPolicies(policies []*generatedpolicy.GeneratedPolicy) []GeneratedPolicyResponse {
	return mapSlice(policies, FromGeneratedPolicy)
}

// GeneratedPolicyDetailResponse is the composed document: the policy fields
// plus its organization and the resolved section bodies.
type GeneratedPolicyDetailResponse struct {
	GeneratedPolicyResponse
	Organization OrganizationResponse    `json:"organization"`
	Sections     []PolicySectionResponse `json:"sections"`
}

func FromGeneratedPolicyDetail(d *generatedpolicy.Detail) GeneratedPolicyDetailResponse {
	return GeneratedPolicyDetailResponse{
		GeneratedPolicyResponse: FromGeneratedPolicy(d.Policy),
		Organization:            FromOrganization(d.Organization),
		Sections:                FromPolicySections(d.Sections),
	}
}

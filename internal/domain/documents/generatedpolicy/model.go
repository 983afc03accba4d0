// Package generatedpolicy provides the Generated Policy document: the
// persisted result of one wizard run.
package generatedpolicy

import (
	"context"
	"time"

	"policywizard/internal/core/apperror"
	"policywizard/internal/core/id"
	"policywizard/internal/domain/catalogs/organization"
	"policywizard/internal/domain/catalogs/policysection"
)

// ID is the generated policy identifier.
type ID = id.ID

// DateLayout is the calendar date format of GeneratedDate.
const DateLayout = "2006-01-02"

// Status of a generated policy.
type Status string

const (
	StatusDraft Status = "draft"
	// StatusApproved is reserved: it can be set at creation, no transition leads to it.
	StatusApproved Status = "approved"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusApproved
}

// GeneratedPolicy references one organization and an ordered list of section ids.
// Records are never updated or deleted.
type GeneratedPolicy struct {
	ID             ID              `json:"id"`
	OrganizationID organization.ID `json:"organizationId"`

	// SelectedSections keeps submission order; duplicates are kept
	SelectedSections []policysection.ID `json:"selectedSections"`

	// GeneratedDate is a calendar date in DateLayout
	GeneratedDate string `json:"generatedDate"`

	Status Status `json:"status"`
}

// Validate checks field-level invariants. References are checked by Service.
func (p *GeneratedPolicy) Validate(ctx context.Context) error {
	if p.OrganizationID <= 0 {
		return apperror.NewRequiredField("organizationId")
	}
	if p.SelectedSections == nil {
		return apperror.NewRequiredField("selectedSections")
	}
	if p.GeneratedDate == "" {
		return apperror.NewRequiredField("generatedDate")
	}
	if _, err := time.Parse(DateLayout, p.GeneratedDate); err != nil {
		return apperror.NewValidation("generatedDate must be a date in YYYY-MM-DD format").
			WithDetail("field", "generatedDate").
			WithDetail("value", p.GeneratedDate)
	}
	if p.Status == "" {
		return apperror.NewRequiredField("status")
	}
	if !p.Status.IsValid() {
		return apperror.NewValidation("status must be one of: draft, approved").
			WithDetail("field", "status").
			WithDetail("value", string(p.Status))
	}
	return nil
}

// Detail is a policy joined with its organization and resolved sections.
type Detail struct {
	Policy       *GeneratedPolicy
	Organization *organization.Organization
	Sections     []*policysection.PolicySection
}

// Package organization provides the Organization catalog (Справочник "Организации").
package organization

import (
	"context"
	"strings"

	"policywizard/internal/core/apperror"
	"policywizard/internal/core/id"
)

// AccountingType selects which half of the policy catalog applies to an organization.
type AccountingType string

const (
	// AccountingBudget is budget accounting (бюджетный учёт).
	AccountingBudget AccountingType = "budget"
	// AccountingBusiness is business accounting (бухгалтерский учёт).
	AccountingBusiness AccountingType = "accounting"
)

// IsValid reports whether t is a known accounting type.
func (t AccountingType) IsValid() bool {
	return t == AccountingBudget || t == AccountingBusiness
}

// ID is the organization identifier.
type ID = id.ID

// Organization represents the government entity a policy is generated for.
// Organizations are immutable once created.
type Organization struct {
	ID ID `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// INN is the tax identification number
	INN string `json:"inn"`

	// KPP is the code of reason for registration
	KPP string `json:"kpp"`

	AccountingType AccountingType `json:"accountingType"`

	// Industry is free text; nil when the organization has none
	Industry *string `json:"industry"`

	// CentralizedOffice is the centralized accounting office serving the organization
	CentralizedOffice string `json:"centralizedOffice"`
}

// NewOrganization creates an Organization without an id. Blank industry becomes nil.
func NewOrganization(name, inn, kpp string, accountingType AccountingType, industry, centralizedOffice string) *Organization {
	org := &Organization{
		Name:              strings.TrimSpace(name),
		INN:               strings.TrimSpace(inn),
		KPP:               strings.TrimSpace(kpp),
		AccountingType:    accountingType,
		CentralizedOffice: strings.TrimSpace(centralizedOffice),
	}
	org.SetIndustry(industry)
	return org
}

// SetIndustry sets the industry, clearing it when blank.
func (o *Organization) SetIndustry(industry string) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		o.Industry = nil
		return
	}
	o.Industry = &industry
}

// IndustryName returns the industry or "" when none is set.
func (o *Organization) IndustryName() string {
	if o.Industry == nil {
		return ""
	}
	return *o.Industry
}

// Validate checks required fields and the accounting type enum.
func (o *Organization) Validate(ctx context.Context) error {
	required := []struct {
		field string
		value string
	}{
		{"name", o.Name},
		{"inn", o.INN},
		{"kpp", o.KPP},
		{"accountingType", string(o.AccountingType)},
		{"centralizedOffice", o.CentralizedOffice},
	}
	for _, r := range required {
		if r.value == "" {
			return apperror.NewRequiredField(r.field)
		}
	}

	if !o.AccountingType.IsValid() {
		return apperror.NewValidation("accountingType must be one of: budget, accounting").
			WithDetail("field", "accountingType").
			WithDetail("value", string(o.AccountingType))
	}

	return nil
}

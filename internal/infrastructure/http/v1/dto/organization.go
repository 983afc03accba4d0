package dto

import (
	"policywizard/internal/domain/catalogs/organization"
)

// CreateOrganizationRequest is the DTO for creating an organization.
type CreateOrganizationRequest struct {
	Name              string  `json:"name" binding:"required"`
	INN               string  `json:"inn" binding:"required"`
	KPP               string  `json:"kpp" binding:"required"`
	AccountingType    string  `json:"accountingType" binding:"required"`
	Industry          *string `json:"industry"`
	CentralizedOffice string  `json:"centralizedOffice" binding:"required"`
}

func (r CreateOrganizationRequest) ToEntity() *organization.Organization {
	var industry string
	if r.Industry != nil {
		industry = *r.Industry
	}
	return organization.NewOrganization(
		r.Name,
		r.INN,
		r.KPP,
		organization.AccountingType(r.AccountingType),
		industry,
		r.CentralizedOffice,
	)
}

// OrganizationResponse is the DTO for returning organization data.
type OrganizationResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	INN               string  `json:"inn"`
	KPP               string  `json:"kpp"`
	AccountingType    string  `json:"accountingType"`
	Industry          *string `json:"industry"`
	CentralizedOffice string  `json:"centralizedOffice"`
}

func FromOrganization(org *organization.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:                org.ID,
		Name:              org.Name,
		INN:               org.INN,
		KPP:               org.KPP,
		AccountingType:    string(org.AccountingType),
		Industry:          org.Industry,
		CentralizedOffice: org.CentralizedOffice,
	}
}

func FromOrganizations(orgs []*organization.Organization) []OrganizationResponse {
	return mapSlice(orgs, FromOrganization)
}

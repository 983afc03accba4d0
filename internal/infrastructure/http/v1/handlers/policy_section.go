package handlers

import (
	"github.com/gin-gonic/gin"

	"policywizard/internal/core/apperror"
	"policywizard/internal/domain/catalogs/organization"
	"policywizard/internal/domain/catalogs/policysection"
	"policywizard/internal/infrastructure/http/v1/dto"
)

// PolicySectionHandler serves the section catalog.
type PolicySectionHandler struct {
	*BaseHandler
	service *policysection.Service
}

// NewPolicySectionHandler creates a new PolicySectionHandler.
func NewPolicySectionHandler(base *BaseHandler, service *policysection.Service) *PolicySectionHandler {
	return &PolicySectionHandler{BaseHandler: base, service: service}
}

// List handles GET /api/policy-sections?accountingType=&industry=.
// Each present parameter is applied on its own; together they compose with AND.
func (h *PolicySectionHandler) List(c *gin.Context) {
	var q dto.PolicySectionFilter
	if !h.BindQuery(c, &q) {
		return
	}

	var criteria policysection.Criteria
	if q.AccountingType != "" {
		accountingType := organization.AccountingType(q.AccountingType)
		if !accountingType.IsValid() {
			h.Error(c, apperror.NewValidation("accountingType must be one of: budget, accounting").
				WithDetail("field", "accountingType").
				WithDetail("value", q.AccountingType))
			return
		}
		criteria.AccountingType = &accountingType
	}
	if q.Industry != "" {
		industry := q.Industry
		criteria.Industry = &industry
	}

	sections, err := h.service.List(c.Request.Context(), criteria)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPolicySections(sections))
}

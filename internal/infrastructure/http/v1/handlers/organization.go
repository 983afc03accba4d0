package handlers

import (
	"github.com/gin-gonic/gin"

	"policywizard/internal/domain/catalogs/organization"
	"policywizard/internal/domain/catalogs/policysection"
	"policywizard/internal/infrastructure/http/v1/dto"
)

// OrganizationHandler handles HTTP requests for Organizations.
type OrganizationHandler struct {
	*BaseHandler
	service  *organization.Service
	sections *policysection.Service
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(base *BaseHandler, service *organization.Service, sections *policysection.Service) *OrganizationHandler {
	return &OrganizationHandler{
		BaseHandler: base,
		service:     service,
		sections:    sections,
	}
}

// List handles GET /api/organizations.
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrganizations(orgs))
}

// Get handles GET /api/organizations/:id.
func (h *OrganizationHandler) Get(c *gin.Context) {
	orgID, ok := h.ParamID(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.GetByID(c.Request.Context(), orgID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrganization(org))
}

// Create handles POST /api/organizations.
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	org := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), org); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromOrganization(org))
}

// ApplicableSections handles GET /api/organizations/:id/applicable-sections.
// The wizard preview uses it instead of evaluating applicability itself.
func (h *OrganizationHandler) ApplicableSections(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := h.ParamID(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.GetByID(ctx, orgID)
	if err != nil {
		h.Error(c, err)
		return
	}

	sections, err := h.sections.Applicable(ctx, org)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPolicySections(sections))
}

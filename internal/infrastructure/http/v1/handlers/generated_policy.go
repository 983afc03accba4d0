package handlers

import (
	"github.com/gin-gonic/gin"

	"policywizard/internal/domain/documents/generatedpolicy"
	"policywizard/internal/infrastructure/http/v1/dto"
)

// GeneratedPolicyHandler handles HTTP requests for generated policies.
type GeneratedPolicyHandler struct {
	*BaseHandler
	service *generatedpolicy.Service
}

// NewGeneratedPolicyHandler creates a new GeneratedPolicyHandler.
func NewGeneratedPolicyHandler(base *BaseHandler, service *generatedpolicy.Service) *GeneratedPolicyHandler {
	return &GeneratedPolicyHandler{BaseHandler: base, service: service}
}

// List handles GET /api/generated-policies.
func (h *GeneratedPolicyHandler) List(c *gin.Context) {
	var q dto.GeneratedPolicyFilter
	if !h.BindQuery(c, &q) {
		return
	}

	policies, err := h.service.List(c.Request.Context(), generatedpolicy.ListFilter{
		OrganizationID: q.OrganizationID,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromGeneratedPolicies(policies))
}

// Create handles POST /api/generated-policies.
func (h *GeneratedPolicyHandler) Create(c *gin.Context) {
	var req dto.CreateGeneratedPolicyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	policy := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), policy); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromGeneratedPolicy(policy))
}

// Get handles GET /api/generated-policies/:id and returns the composed document.
func (h *GeneratedPolicyHandler) Get(c *gin.Context) {
	policyID, ok := h.ParamID(c, "id", "policy")
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), policyID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromGeneratedPolicyDetail(detail))
}

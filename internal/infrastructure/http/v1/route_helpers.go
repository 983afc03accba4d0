// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler defines the interface for append-only resource handlers.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
}

// ApplicabilityHandler is an optional interface for resources that expose
// the policy sections applicable to them.
type ApplicabilityHandler interface {
	ApplicableSections(c *gin.Context)
}

// RegisterCatalogRoutes registers list/create/get routes for a resource.
// If the handler also implements ApplicabilityHandler, the
// applicable-sections route is registered as well.
//
// Usage:
//
//	repo := memory.NewOrganizationRepo(cfg.Store)
//	service := organization.NewService(repo, txManager)
//	handler := handlers.NewOrganizationHandler(baseHandler, service, sections)
//	RegisterCatalogRoutes(api.Group("/organizations"), handler)
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)

	if applicability, ok := handler.(ApplicabilityHandler); ok {
		group.GET("/:id/applicable-sections", applicability.ApplicableSections)
	}
}

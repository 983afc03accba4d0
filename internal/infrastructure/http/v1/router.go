package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"policywizard/internal/domain/catalogs/organization"
	"policywizard/internal/domain/catalogs/policysection"
	"policywizard/internal/domain/documents/generatedpolicy"
	"policywizard/internal/infrastructure/http/v1/handlers"
	"policywizard/internal/infrastructure/http/v1/middleware"
	"policywizard/internal/infrastructure/storage/memory"
	"policywizard/internal/telemetry"
	"policywizard/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Store holds all application data
	Store *memory.Store

	// Logger for request logging
	Logger *logger.Logger

	// MetricsEnabled exposes Prometheus metrics at MetricsPath
	MetricsEnabled bool
	MetricsPath    string
}

// services groups the domain services shared by route groups.
type services struct {
	organizations *organization.Service
	sections      *policysection.Service
	policies      *generatedpolicy.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace(cfg.Logger))
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Store)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	if cfg.MetricsEnabled {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(promhttp.Handler()))
	}

	svc := newServices(cfg.Store)
	api := router.Group("/api")
	{
		registerCatalogRoutes(api, svc)
		registerDocumentRoutes(api, svc)
	}

	return router
}

func newServices(store *memory.Store) services {
	txManager := memory.NewTxManager(store)

	orgs := organization.NewService(
		memory.NewOrganizationRepo(store),
		txManager,
		organization.WithCreateHook(telemetry.RecordOrganizationCreated),
	)
	sections := policysection.NewService(memory.NewPolicySectionRepo(store))
	policies := generatedpolicy.NewService(generatedpolicy.ServiceConfig{
		Repo:          memory.NewGeneratedPolicyRepo(store),
		Organizations: orgs,
		Sections:      sections,
		TxManager:     txManager,
		Observer:      telemetry.PolicyObserver{},
	})

	return services{
		organizations: orgs,
		sections:      sections,
		policies:      policies,
	}
}

// registerCatalogRoutes registers organization and section catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, svc services) {
	baseHandler := handlers.NewBaseHandler()

	// --- ORGANIZATIONS ---
	{
		handler := handlers.NewOrganizationHandler(baseHandler, svc.organizations, svc.sections)
		RegisterCatalogRoutes(rg.Group("/organizations"), handler)
	}

	// --- POLICY SECTIONS (read-only, seeded) ---
	{
		handler := handlers.NewPolicySectionHandler(baseHandler, svc.sections)
		rg.GET("/policy-sections", handler.List)
	}
}

// registerDocumentRoutes registers generated policy endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, svc services) {
	baseHandler := handlers.NewBaseHandler()

	handler := handlers.NewGeneratedPolicyHandler(baseHandler, svc.policies)
	RegisterCatalogRoutes(rg.Group("/generated-policies"), handler)
}

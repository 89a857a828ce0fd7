package routes

import (
	"studio_api/internal/adapter/http/middleware"
	"studio_api/internal/config"
	"studio_api/internal/infrastructure/ratelimit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PathConfigurator = "/configurator"
	PathContact      = "/contact"
	PathUploads      = "/uploads"
)

// rate limit groups; each client IP has its own window per group
const (
	limitGroupLeads   = "leads"
	limitGroupUploads = "uploads"
)

func addConfiguratorRoutes(rg *gin.RouterGroup, deps *Dependencies, cfg *config.Config, log *zap.Logger) {
	leadLimit := middleware.RateLimit(deps.Limiter, limitGroupLeads, ratelimit.Rule{Limit: cfg.ContactRateLimit, Window: cfg.ContactRateWindow}, log)
	uploadLimit := middleware.RateLimit(deps.Limiter, limitGroupUploads, ratelimit.Rule{Limit: cfg.UploadRateLimit, Window: cfg.UploadRateWindow}, log)

	configurator := rg.Group(PathConfigurator)
	{
		configurator.POST("/estimate", deps.Configurator.Estimate)
		configurator.POST("/requests", leadLimit, deps.Configurator.SubmitRequest)
	}

	rg.POST(PathContact, leadLimit, deps.Contact.Submit)
	rg.POST(PathUploads, uploadLimit, deps.Upload.Upload)
}

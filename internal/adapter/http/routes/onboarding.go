package routes

import (
	"studio_api/internal/adapter/http/middleware"
	"studio_api/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PathDrafts      = "/onboarding/drafts"
	PathOnboardings = "/onboardings"
	PathWebhooks    = "/webhooks"
)

func addOnboardingRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", deps.Onboarding.CreateDraft)
		drafts.GET("/:id", deps.Onboarding.GetDraft)
		drafts.PUT("/:id/steps/:step", deps.Onboarding.SaveStep)
		drafts.POST("/:id/back", deps.Onboarding.Back)
		drafts.POST("/:id/submit", deps.Onboarding.Submit)
	}

	rg.GET(PathOnboardings+"/:id", deps.Onboarding.GetOnboarding)
}

// addEditorRoutes mounts the CMS-facing endpoints behind the shared webhook secret.
func addEditorRoutes(rg *gin.RouterGroup, deps *Dependencies, cfg *config.Config, log *zap.Logger) {
	secret := middleware.WebhookSecret(cfg.WebhookSecret, log)

	rg.PATCH(PathOnboardings+"/:id/adjustment", secret, deps.Regeneration.RequestAdjustment)

	webhooks := rg.Group(PathWebhooks, secret)
	{
		webhooks.POST("/contract-regeneration", deps.Regeneration.Regenerate)
	}
}

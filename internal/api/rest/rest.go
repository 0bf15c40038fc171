package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/realty-crm/internal/api/middleware"
	"github.com/feral-file/realty-crm/internal/cache"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/ratelimit"
)

// RouteConfig holds the middleware dependencies of the routes
type RouteConfig struct {
	Verifier             middleware.TokenVerifier
	Users                cache.UserCache
	Limiter              ratelimit.Limiter
	InboundWebhookSecret string
}

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, cfg RouteConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(cfg.Verifier, cfg.Users)
	admin := middleware.RequireRole(domain.RoleAdmin)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.HealthCheck)

		// Contacts
		contacts := v1.Group("/contacts", auth)
		{
			contacts.GET("", handler.ListContacts)
			contacts.POST("", handler.CreateContact)
			contacts.POST("/pin", handler.LookupPin)
			contacts.GET("/:id", handler.GetContact)
			contacts.PUT("/:id", handler.UpdateContact)
			contacts.DELETE("/:id", handler.DeleteContact)
			contacts.PUT("/:id/tags/add", handler.AddContactTags)
			contacts.PUT("/:id/tags/remove", handler.RemoveContactTags)
			contacts.PUT("/:id/pipeline-stage", handler.UpdatePipelineStage)
			contacts.GET("/:id/calculations", handler.ListContactCalculations)
			contacts.GET("/:id/questionnaires", handler.ListContactQuestionnaires)
			contacts.GET("/:id/feedbacks", handler.ListContactFeedbacks)
		}

		// Investment calculations
		calculations := v1.Group("/calculations", auth)
		{
			calculations.GET("", handler.ListCalculations)
			calculations.POST("", handler.CreateCalculation)
			calculations.GET("/:id", handler.GetCalculation)
			calculations.PUT("/:id", handler.UpdateCalculation)
			calculations.DELETE("/:id", handler.DeleteCalculation)
		}

		// Investor questionnaires
		questionnaires := v1.Group("/questionnaires", auth)
		{
			questionnaires.GET("", handler.ListQuestionnaires)
			questionnaires.POST("", handler.CreateQuestionnaire)
			questionnaires.GET("/:id", handler.GetQuestionnaire)
			questionnaires.PUT("/:id", handler.UpdateQuestionnaire)
			questionnaires.DELETE("/:id", handler.DeleteQuestionnaire)
		}

		// Videos
		videos := v1.Group("/videos", auth)
		{
			videos.GET("", handler.ListVideos)
			videos.POST("", handler.CreateVideo)
			videos.GET("/:id", handler.GetVideo)
			videos.PUT("/:id", handler.UpdateVideo)
			videos.DELETE("/:id", handler.DeleteVideo)
			videos.PATCH("/:id/publish", handler.ToggleVideoPublished)
		}

		// Video feedback (public create, ADMIN everything else)
		feedbacks := v1.Group("/feedbacks")
		{
			feedbacks.POST("", middleware.RateLimit(cfg.Limiter, "feedbacks"), handler.CreateFeedback)
			feedbacks.GET("", auth, admin, handler.ListFeedbacks)
			feedbacks.GET("/videos/:id", auth, admin, handler.ListVideoFeedbacks)
			feedbacks.GET("/contacts/:id", auth, admin, handler.ListFeedbacksForContact)
			feedbacks.GET("/:id", auth, admin, handler.GetFeedback)
			feedbacks.PUT("/:id", auth, admin, handler.UpdateFeedback)
			feedbacks.DELETE("/:id", auth, admin, handler.DeleteFeedback)
		}

		// AI conversation
		ai := v1.Group("/ai")
		{
			ai.POST("/webhook",
				middleware.WebhookRateLimit(cfg.Limiter, "ai-webhook"),
				middleware.WebhookAuth(cfg.InboundWebhookSecret),
				handler.HandleInboundMessage,
			)
			ai.POST("/reply", auth, handler.HandleUserReply)
			ai.GET("/conversations", auth, handler.ListConversations)
			ai.DELETE("/conversations", auth, handler.ClearConversationHistory)
			ai.GET("/conversations/:id", auth, handler.GetConversation)
		}
	}
}

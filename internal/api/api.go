package api

import (
	"net/http"

	"push-server/internal/auth"
	campaignHandler "push-server/internal/campaigns/handler"
	segmentHandler "push-server/internal/segments/handler"
	subscriptionHandler "push-server/internal/subscriptions/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	authMiddleware      auth.Middleware
	campaignHandler     campaignHandler.Handler
	subscriptionHandler subscriptionHandler.Handler
	segmentHandler      segmentHandler.Handler
}

func New(
	router *gin.RouterGroup,
	authMiddleware auth.Middleware,
	campaignHandler campaignHandler.Handler,
	subscriptionHandler subscriptionHandler.Handler,
	segmentHandler segmentHandler.Handler,
) API {
	return API{
		router:              router,
		authMiddleware:      authMiddleware,
		campaignHandler:     campaignHandler,
		subscriptionHandler: subscriptionHandler,
		segmentHandler:      segmentHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	// Subscribe and unsubscribe come from end-user browsers, not the dashboard.
	apiGroup.POST("/subscriptions", a.subscriptionHandler.HandleSubscribe)
	apiGroup.DELETE("/subscriptions/:subscription_id", a.subscriptionHandler.HandleUnsubscribe)

	protectedGroup := apiGroup.Group("", a.authMiddleware.HandleJWTMiddleware)
	{
		protectedGroup.GET("/subscriptions", a.subscriptionHandler.HandleListSubscriptions)
		protectedGroup.GET("/subscriptions/:subscription_id", a.subscriptionHandler.HandleGetSubscription)

		protectedGroup.POST("/campaigns", a.campaignHandler.HandleCreateCampaign)
		protectedGroup.GET("/campaigns", a.campaignHandler.HandleListCampaigns)
		protectedGroup.GET("/campaigns/:campaign_id", a.campaignHandler.HandleGetCampaign)
		protectedGroup.PATCH("/campaigns/:campaign_id", a.campaignHandler.HandleUpdateCampaign)
		protectedGroup.DELETE("/campaigns/:campaign_id", a.campaignHandler.HandleDeleteCampaign)
		protectedGroup.POST("/campaigns/:campaign_id/send", a.campaignHandler.HandleSendCampaign)
		protectedGroup.POST("/campaigns/:campaign_id/cancel", a.campaignHandler.HandleCancelCampaign)
		protectedGroup.GET("/campaigns/:campaign_id/executions", a.campaignHandler.HandleListExecutions)
		protectedGroup.GET("/campaigns/:campaign_id/report", a.campaignHandler.HandleGetCampaignReport)

		protectedGroup.POST("/segments", a.segmentHandler.HandleCreateSegment)
		protectedGroup.GET("/segments", a.segmentHandler.HandleListSegments)
		protectedGroup.GET("/segments/:segment_id", a.segmentHandler.HandleGetSegment)
		protectedGroup.PATCH("/segments/:segment_id", a.segmentHandler.HandleUpdateSegment)
		protectedGroup.DELETE("/segments/:segment_id", a.segmentHandler.HandleDeleteSegment)
		protectedGroup.GET("/segments/:segment_id/preview", a.segmentHandler.HandlePreviewSegment)

		protectedGroup.GET("/scheduler/stats", a.campaignHandler.HandleSchedulerStats)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

package app

import (
	"github.com/gin-gonic/gin"

	"github.com/gatherle/gatherle-backend/internal/server"
)

func wireRouter(handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:         handlers.Auth,
		AuthMiddleware:      middleware.Auth,
		UserHandler:         handlers.User,
		OrganizationHandler: handlers.Organization,
		VenueHandler:        handlers.Venue,
		EventHandler:        handlers.Event,
		ParticipantHandler:  handlers.Participant,
		FollowHandler:       handlers.Follow,
		NotificationHandler: handlers.Notification,
		FeedHandler:         handlers.Feed,
		RealtimeHandler:     handlers.Realtime,
	})
}

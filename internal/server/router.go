package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/gatherle/gatherle-backend/internal/handlers"
  "github.com/gatherle/gatherle-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler           *handlers.AuthHandler
  AuthMiddleware        *middleware.AuthMiddleware
  UserHandler           *handlers.UserHandler
  OrganizationHandler   *handlers.OrganizationHandler
  VenueHandler          *handlers.VenueHandler
  EventHandler          *handlers.EventHandler
  ParticipantHandler    *handlers.ParticipantHandler
  FollowHandler         *handlers.FollowHandler
  NotificationHandler   *handlers.NotificationHandler
  FeedHandler           *handlers.FeedHandler
  RealtimeHandler       *handlers.RealtimeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)
  router.POST("/refresh", cfg.AuthHandler.Refresh)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/logout", cfg.AuthHandler.Logout)
  // SSE
  protected.GET("/sse/stream", cfg.RealtimeHandler.SSEStream)
  // User
  protected.GET("/user", cfg.UserHandler.GetMe)
  protected.PUT("/user/interests", cfg.UserHandler.UpdateInterests)
  protected.POST("/user/mute/org/:id", cfg.UserHandler.MuteOrganization)
  protected.POST("/user/mute/user/:id", cfg.UserHandler.MuteUser)
  // Organizations
  protected.POST("/orgs", cfg.OrganizationHandler.Create)
  protected.GET("/orgs/:id", cfg.OrganizationHandler.Get)
  // Venues
  protected.POST("/venues", cfg.VenueHandler.Create)
  protected.GET("/venues/:id", cfg.VenueHandler.Get)
  // Events
  protected.POST("/events", cfg.EventHandler.Create)
  protected.GET("/events/upcoming", cfg.EventHandler.ListUpcoming)
  protected.GET("/events/:id", cfg.EventHandler.Get)
  protected.POST("/events/:id/publish", cfg.EventHandler.Publish)
  // RSVPs
  protected.POST("/events/:id/rsvp", cfg.ParticipantHandler.Rsvp)
  protected.DELETE("/events/:id/rsvp", cfg.ParticipantHandler.CancelRsvp)
  protected.GET("/rsvps", cfg.ParticipantHandler.ReadMine)
  // Follows
  protected.POST("/follows", cfg.FollowHandler.Follow)
  protected.DELETE("/follows", cfg.FollowHandler.Unfollow)
  protected.POST("/follows/:id/respond", cfg.FollowHandler.Respond)
  protected.GET("/follows", cfg.FollowHandler.ReadFollowing)
  // Notifications
  protected.GET("/notifications", cfg.NotificationHandler.ReadMine)
  protected.GET("/notifications/unread-count", cfg.NotificationHandler.UnreadCount)
  protected.POST("/notifications/:id/read", cfg.NotificationHandler.MarkRead)
  // Feed
  protected.GET("/feed", cfg.FeedHandler.GetFeed)
  protected.POST("/feed/refresh", cfg.FeedHandler.Refresh)

  return router
}

package app

import (
	"github.com/gatherle/gatherle-backend/internal/handlers"
	"github.com/gatherle/gatherle-backend/internal/logger"
	"github.com/gatherle/gatherle-backend/internal/realtime"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Organization *handlers.OrganizationHandler
	Venue        *handlers.VenueHandler
	Event        *handlers.EventHandler
	Participant  *handlers.ParticipantHandler
	Follow       *handlers.FollowHandler
	Notification *handlers.NotificationHandler
	Feed         *handlers.FeedHandler
	Realtime     *handlers.RealtimeHandler
}

func wireHandlers(log *logger.Logger, services Services, sseHub *realtime.SSEHub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:         handlers.NewAuthHandler(services.Auth),
		User:         handlers.NewUserHandler(services.User),
		Organization: handlers.NewOrganizationHandler(services.Organization),
		Venue:        handlers.NewVenueHandler(services.Venue),
		Event:        handlers.NewEventHandler(log, services.Event),
		Participant:  handlers.NewParticipantHandler(services.Participation),
		Follow:       handlers.NewFollowHandler(services.Follow),
		Notification: handlers.NewNotificationHandler(services.Notification),
		Feed:         handlers.NewFeedHandler(log, services.Feed),
		Realtime:     handlers.NewRealtimeHandler(log, sseHub),
	}
}

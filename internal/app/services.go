package app

import (
	"gorm.io/gorm"

	"github.com/gatherle/gatherle-backend/internal/jobs"
	"github.com/gatherle/gatherle-backend/internal/logger"
	"github.com/gatherle/gatherle-backend/internal/realtime"
	"github.com/gatherle/gatherle-backend/internal/services"
)

type Services struct {
	Auth           services.AuthService
	User           services.UserService
	Organization   services.OrganizationService
	Venue          services.VenueService
	Event          services.EventService
	Participation  services.ParticipationService
	Follow         services.FollowService
	Notification   services.NotificationService
	Recommendation services.RecommendationService
	Feed           services.FeedService

	JobRunner *jobs.Runner
	SSEBus    realtime.Bus
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) (Services, error) {
	log.Info("Wiring services...")

	jobRunner := jobs.NewRunner(log)

	sseBus, err := realtime.NewRedisBus(log)
	if err != nil {
		// Realtime fan-out is best effort; the API works without it.
		log.Warn("Redis SSE bus unavailable, realtime updates disabled", "error", err)
		sseBus = nil
	}

	authService := services.NewAuthService(
		db,
		log,
		repos.User,
		repos.UserToken,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	recommendationService := services.NewRecommendationService(
		db,
		log,
		repos.User,
		repos.Event,
		repos.Participant,
		repos.Follow,
		repos.UserFeed,
		jobRunner,
		sseBus,
	)

	userService := services.NewUserService(db, log, repos.User)
	organizationService := services.NewOrganizationService(db, log, repos.Organization)
	venueService := services.NewVenueService(db, log, repos.Venue)
	notificationService := services.NewNotificationService(db, log, repos.Notification, repos.User, sseBus)
	eventService := services.NewEventService(db, log, repos.Event, recommendationService)
	participationService := services.NewParticipationService(
		db,
		log,
		repos.Participant,
		repos.Event,
		repos.UserFeed,
		recommendationService,
	)
	followService := services.NewFollowService(
		db,
		log,
		repos.Follow,
		repos.Event,
		recommendationService,
		notificationService,
		sseBus,
	)
	feedService := services.NewFeedService(db, log, repos.UserFeed, recommendationService, jobRunner)

	return Services{
		Auth:           authService,
		User:           userService,
		Organization:   organizationService,
		Venue:          venueService,
		Event:          eventService,
		Participation:  participationService,
		Follow:         followService,
		Notification:   notificationService,
		Recommendation: recommendationService,
		Feed:           feedService,
		JobRunner:      jobRunner,
		SSEBus:         sseBus,
	}, nil
}

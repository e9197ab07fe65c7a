package app

import (
	"gorm.io/gorm"

	"github.com/gatherle/gatherle-backend/internal/logger"
	"github.com/gatherle/gatherle-backend/internal/repos"
)

type Repos struct {
	User         repos.UserRepo
	UserToken    repos.UserTokenRepo
	Organization repos.OrganizationRepo
	Venue        repos.VenueRepo
	Event        repos.EventRepo
	Participant  repos.EventParticipantRepo
	Follow       repos.FollowRepo
	UserFeed     repos.UserFeedRepo
	Notification repos.NotificationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         repos.NewUserRepo(db, log),
		UserToken:    repos.NewUserTokenRepo(db, log),
		Organization: repos.NewOrganizationRepo(db, log),
		Venue:        repos.NewVenueRepo(db, log),
		Event:        repos.NewEventRepo(db, log),
		Participant:  repos.NewEventParticipantRepo(db, log),
		Follow:       repos.NewFollowRepo(db, log),
		UserFeed:     repos.NewUserFeedRepo(db, log),
		Notification: repos.NewNotificationRepo(db, log),
	}
}

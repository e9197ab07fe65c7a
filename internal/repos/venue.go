package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type VenueRepo interface {
  Create(ctx context.Context, tx *gorm.DB, venues []*types.Venue) ([]*types.Venue, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, venueIDs []uuid.UUID) ([]*types.Venue, error)
}

type venueRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewVenueRepo(db *gorm.DB, baseLog *logger.Logger) VenueRepo {
  repoLog := baseLog.With("repo", "VenueRepo")
  return &venueRepo{db: db, log: repoLog}
}

func (vr *venueRepo) Create(ctx context.Context, tx *gorm.DB, venues []*types.Venue) ([]*types.Venue, error) {
  transaction := tx
  if transaction == nil {
    transaction = vr.db
  }

  if len(venues) == 0 {
    return []*types.Venue{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&venues).Error; err != nil {
    return nil, err
  }
  return venues, nil
}

func (vr *venueRepo) GetByIDs(ctx context.Context, tx *gorm.DB, venueIDs []uuid.UUID) ([]*types.Venue, error) {
  transaction := tx
  if transaction == nil {
    transaction = vr.db
  }

  var results []*types.Venue
  if len(venueIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", venueIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

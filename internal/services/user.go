package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/repos"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type UserService interface {
  GetMe(ctx context.Context) (*types.User, error)
  // UpdateInterests replaces the user's interest categories. The next feed
  // recompute picks the change up.
  UpdateInterests(ctx context.Context, categoryIDs []string) (*types.User, error)
  MuteOrganization(ctx context.Context, orgID uuid.UUID) (*types.User, error)
  MuteUser(ctx context.Context, mutedUserID uuid.UUID) (*types.User, error)
}

type userService struct {
  db        *gorm.DB
  log       *logger.Logger
  userRepo  repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
  return &userService{
    db:       db,
    log:      baseLog.With("service", "UserService"),
    userRepo: userRepo,
  }
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
  user, err := us.loadRequestUser(ctx)
  if err != nil {
    return nil, err
  }
  return user, nil
}

func (us *userService) UpdateInterests(ctx context.Context, categoryIDs []string) (*types.User, error) {
  user, err := us.loadRequestUser(ctx)
  if err != nil {
    return nil, err
  }

  user.Interests = datatypes.NewJSONSlice(dedupe(categoryIDs))
  if uErr := us.userRepo.Update(ctx, nil, user); uErr != nil {
    return nil, fmt.Errorf("Failed to update interests: %w", uErr)
  }
  return user, nil
}

func (us *userService) MuteOrganization(ctx context.Context, orgID uuid.UUID) (*types.User, error) {
  user, err := us.loadRequestUser(ctx)
  if err != nil {
    return nil, err
  }

  user.MutedOrgIDs = datatypes.NewJSONSlice(appendUnique(user.MutedOrgIDs, orgID.String()))
  if uErr := us.userRepo.Update(ctx, nil, user); uErr != nil {
    return nil, fmt.Errorf("Failed to mute organization: %w", uErr)
  }
  return user, nil
}

func (us *userService) MuteUser(ctx context.Context, mutedUserID uuid.UUID) (*types.User, error) {
  user, err := us.loadRequestUser(ctx)
  if err != nil {
    return nil, err
  }

  user.MutedUserIDs = datatypes.NewJSONSlice(appendUnique(user.MutedUserIDs, mutedUserID.String()))
  if uErr := us.userRepo.Update(ctx, nil, user); uErr != nil {
    return nil, fmt.Errorf("Failed to mute user: %w", uErr)
  }
  return user, nil
}

func (us *userService) loadRequestUser(ctx context.Context) (*types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }
  users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load user: %w", err)
  }
  if len(users) == 0 {
    return nil, fmt.Errorf("user not found")
  }
  return users[0], nil
}

func dedupe(values []string) []string {
  seen := make(map[string]bool, len(values))
  out := make([]string, 0, len(values))
  for _, v := range values {
    if v == "" || seen[v] {
      continue
    }
    seen[v] = true
    out = append(out, v)
  }
  return out
}

func appendUnique(values []string, value string) []string {
  for _, v := range values {
    if v == value {
      return values
    }
  }
  return append(values, value)
}

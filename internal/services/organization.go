package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/gatherle/gatherle-backend/internal/logger"
  "github.com/gatherle/gatherle-backend/internal/repos"
  "github.com/gatherle/gatherle-backend/internal/requestdata"
  "github.com/gatherle/gatherle-backend/internal/types"
)

type CreateOrganizationInput struct {
  Name          string    `json:"name"`
  Description   string    `json:"description,omitempty"`
}

type OrganizationService interface {
  CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*types.Organization, error)
  GetOrganization(ctx context.Context, orgID uuid.UUID) (*types.Organization, error)
}

type organizationService struct {
  db      *gorm.DB
  log     *logger.Logger
  orgRepo repos.OrganizationRepo
}

func NewOrganizationService(db *gorm.DB, baseLog *logger.Logger, orgRepo repos.OrganizationRepo) OrganizationService {
  return &organizationService{
    db:      db,
    log:     baseLog.With("service", "OrganizationService"),
    orgRepo: orgRepo,
  }
}

func (os *organizationService) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*types.Organization, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return nil, fmt.Errorf("not authenticated")
  }
  if input.Name == "" {
    return nil, fmt.Errorf("missing name")
  }

  org := &types.Organization{
    ID:          uuid.New(),
    Name:        input.Name,
    Description: input.Description,
    OwnerUserID: rd.UserID,
  }

  if _, err := os.orgRepo.Create(ctx, nil, []*types.Organization{org}); err != nil {
    return nil, fmt.Errorf("Failed to create organization: %w", err)
  }
  return org, nil
}

func (os *organizationService) GetOrganization(ctx context.Context, orgID uuid.UUID) (*types.Organization, error) {
  orgs, err := os.orgRepo.GetByIDs(ctx, nil, []uuid.UUID{orgID})
  if err != nil {
    return nil, fmt.Errorf("Failed to load organization: %w", err)
  }
  if len(orgs) == 0 {
    return nil, fmt.Errorf("organization not found")
  }
  return orgs[0], nil
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gatherle/gatherle-backend/internal/logger"
	"github.com/gatherle/gatherle-backend/internal/repos"
	"github.com/gatherle/gatherle-backend/internal/types"
)

type fakeOrgStore struct {
	repos.OrganizationRepo
	created []*types.Organization
	byID    []*types.Organization
}

func (f *fakeOrgStore) Create(ctx context.Context, tx *gorm.DB, orgs []*types.Organization) ([]*types.Organization, error) {
	f.created = append(f.created, orgs...)
	return orgs, nil
}

func (f *fakeOrgStore) GetByIDs(ctx context.Context, tx *gorm.DB, orgIDs []uuid.UUID) ([]*types.Organization, error) {
	return f.byID, nil
}

func TestCreateOrganizationSetsOwner(t *testing.T) {
	userID := uuid.New()
	store := &fakeOrgStore{}
	svc := NewOrganizationService(nil, logger.NewNop(), store)

	org, err := svc.CreateOrganization(authedCtx(userID), CreateOrganizationInput{Name: "Jazz Collective"})
	if err != nil {
		t.Fatalf("CreateOrganization: %v", err)
	}
	if org.OwnerUserID != userID {
		t.Fatalf("owner: want=%s got=%s", userID, org.OwnerUserID)
	}
	if len(store.created) != 1 || store.created[0].Name != "Jazz Collective" {
		t.Fatalf("persisted orgs: %v", store.created)
	}
}

func TestCreateOrganizationValidation(t *testing.T) {
	svc := NewOrganizationService(nil, logger.NewNop(), &fakeOrgStore{})

	if _, err := svc.CreateOrganization(context.Background(), CreateOrganizationInput{Name: "x"}); err == nil {
		t.Fatalf("expected error without authentication")
	}
	if _, err := svc.CreateOrganization(authedCtx(uuid.New()), CreateOrganizationInput{}); err == nil {
		t.Fatalf("expected error for missing name")
	}
}

func TestGetOrganizationNotFound(t *testing.T) {
	svc := NewOrganizationService(nil, logger.NewNop(), &fakeOrgStore{})

	if _, err := svc.GetOrganization(context.Background(), uuid.New()); err == nil {
		t.Fatalf("expected error for unknown organization")
	}
}

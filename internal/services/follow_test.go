package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gatherle/gatherle-backend/internal/logger"
	"github.com/gatherle/gatherle-backend/internal/repos"
	"github.com/gatherle/gatherle-backend/internal/requestdata"
	"github.com/gatherle/gatherle-backend/internal/types"
)

type fakeFollowStore struct {
	repos.FollowRepo
	byID    *types.Follow
	edge    *types.Follow
	upserts []*types.Follow
	deleted int
	updated []types.FollowApprovalStatus
}

func (f *fakeFollowStore) GetByID(ctx context.Context, tx *gorm.DB, followID uuid.UUID) (*types.Follow, error) {
	return f.byID, nil
}

func (f *fakeFollowStore) GetByEdge(ctx context.Context, tx *gorm.DB, followerUserID uuid.UUID, targetType types.FollowTargetType, targetID uuid.UUID) (*types.Follow, error) {
	return f.edge, nil
}

func (f *fakeFollowStore) Upsert(ctx context.Context, tx *gorm.DB, follow *types.Follow) (*types.Follow, error) {
	f.upserts = append(f.upserts, follow)
	return follow, nil
}

func (f *fakeFollowStore) DeleteEdge(ctx context.Context, tx *gorm.DB, followerUserID uuid.UUID, targetType types.FollowTargetType, targetID uuid.UUID) error {
	f.deleted++
	return nil
}

func (f *fakeFollowStore) UpdateApprovalStatus(ctx context.Context, tx *gorm.DB, followID uuid.UUID, status types.FollowApprovalStatus) error {
	f.updated = append(f.updated, status)
	return nil
}

type notifPair struct {
	recipient uuid.UUID
	actor     uuid.UUID
}

type fakeNotifService struct {
	NotificationService
	requests  []notifPair
	accepts   []notifPair
	readMarks []notifPair
}

func (f *fakeNotifService) NotifyFollowRequest(ctx context.Context, recipientUserID, actorUserID uuid.UUID) {
	f.requests = append(f.requests, notifPair{recipient: recipientUserID, actor: actorUserID})
}

func (f *fakeNotifService) NotifyFollowAccepted(ctx context.Context, recipientUserID, actorUserID uuid.UUID) {
	f.accepts = append(f.accepts, notifPair{recipient: recipientUserID, actor: actorUserID})
}

func (f *fakeNotifService) MarkFollowRequestRead(ctx context.Context, recipientUserID, actorUserID uuid.UUID) {
	f.readMarks = append(f.readMarks, notifPair{recipient: recipientUserID, actor: actorUserID})
}

func authedCtx(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

type followFixture struct {
	store  *fakeFollowStore
	events *fakeEventStore
	rec    *fakeRecService
	notif  *fakeNotifService
	svc    FollowService
}

func newFollowFixture(store *fakeFollowStore) *followFixture {
	f := &followFixture{
		store:  store,
		events: &fakeEventStore{},
		rec:    &fakeRecService{},
		notif:  &fakeNotifService{},
	}
	f.svc = NewFollowService(nil, logger.NewNop(), store, f.events, f.rec, f.notif, nil)
	return f
}

func TestFollowTargetValidation(t *testing.T) {
	userID := uuid.New()
	f := newFollowFixture(&fakeFollowStore{})

	cases := []struct {
		name       string
		ctx        context.Context
		targetType types.FollowTargetType
		targetID   uuid.UUID
	}{
		{name: "unauthenticated", ctx: context.Background(), targetType: types.FollowTargetUser, targetID: uuid.New()},
		{name: "missing target", ctx: authedCtx(userID), targetType: types.FollowTargetUser, targetID: uuid.Nil},
		{name: "self follow", ctx: authedCtx(userID), targetType: types.FollowTargetUser, targetID: userID},
		{name: "unknown target type", ctx: authedCtx(userID), targetType: "Venue", targetID: uuid.New()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.FollowTarget(tc.ctx, tc.targetType, tc.targetID); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestFollowUserSendsFollowRequestNotification(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()
	f := newFollowFixture(&fakeFollowStore{})

	follow, err := f.svc.FollowTarget(authedCtx(userID), types.FollowTargetUser, targetID)
	if err != nil {
		t.Fatalf("FollowTarget: %v", err)
	}
	if follow.ApprovalStatus != types.FollowApprovalPending {
		t.Fatalf("approval: want=%s got=%s", types.FollowApprovalPending, follow.ApprovalStatus)
	}
	if len(f.notif.requests) != 1 || f.notif.requests[0] != (notifPair{recipient: targetID, actor: userID}) {
		t.Fatalf("follow request notifications: %v", f.notif.requests)
	}
	// User follows do not touch any event counter.
	if len(f.events.savedDeltas) != 0 {
		t.Fatalf("saved count changes: %v", f.events.savedDeltas)
	}
}

func TestSaveEventBumpsSavedCountOnce(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	f := newFollowFixture(&fakeFollowStore{})

	first, err := f.svc.FollowTarget(authedCtx(userID), types.FollowTargetEvent, eventID)
	if err != nil {
		t.Fatalf("FollowTarget: %v", err)
	}
	if len(f.events.savedDeltas) != 1 || f.events.savedDeltas[0] != 1 {
		t.Fatalf("saved count deltas after first save: %v", f.events.savedDeltas)
	}

	// Saving the same event again upserts the edge but must not bump the counter.
	f.store.edge = first
	if _, err := f.svc.FollowTarget(authedCtx(userID), types.FollowTargetEvent, eventID); err != nil {
		t.Fatalf("FollowTarget again: %v", err)
	}
	if len(f.events.savedDeltas) != 1 {
		t.Fatalf("saved count deltas after re-save: %v", f.events.savedDeltas)
	}
	if len(f.store.upserts) != 2 {
		t.Fatalf("upserts: want=2 got=%d", len(f.store.upserts))
	}
	// Saves are bookmarks, not social requests.
	if len(f.notif.requests) != 0 {
		t.Fatalf("notifications for event save: %v", f.notif.requests)
	}
}

func TestUnfollowWithoutEdgeIsANoOp(t *testing.T) {
	userID := uuid.New()
	f := newFollowFixture(&fakeFollowStore{})

	if err := f.svc.Unfollow(authedCtx(userID), types.FollowTargetEvent, uuid.New()); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
	if f.store.deleted != 0 {
		t.Fatalf("deletes: want=0 got=%d", f.store.deleted)
	}
	if len(f.events.savedDeltas) != 0 {
		t.Fatalf("saved count deltas: %v", f.events.savedDeltas)
	}
	if len(f.rec.followed) != 0 {
		t.Fatalf("no recompute expected, got %v", f.rec.followed)
	}
}

func TestUnsaveEventDropsSavedCount(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	store := &fakeFollowStore{edge: &types.Follow{
		ID:             uuid.New(),
		FollowerUserID: userID,
		TargetType:     types.FollowTargetEvent,
		TargetID:       eventID,
		ApprovalStatus: types.FollowApprovalAccepted,
	}}
	f := newFollowFixture(store)

	if err := f.svc.Unfollow(authedCtx(userID), types.FollowTargetEvent, eventID); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
	if f.store.deleted != 1 {
		t.Fatalf("deletes: want=1 got=%d", f.store.deleted)
	}
	if len(f.events.savedDeltas) != 1 || f.events.savedDeltas[0] != -1 {
		t.Fatalf("saved count deltas: %v", f.events.savedDeltas)
	}
}

func TestRespondToFollowAccept(t *testing.T) {
	targetID := uuid.New()
	followerID := uuid.New()
	store := &fakeFollowStore{byID: &types.Follow{
		ID:             uuid.New(),
		FollowerUserID: followerID,
		TargetType:     types.FollowTargetUser,
		TargetID:       targetID,
		ApprovalStatus: types.FollowApprovalPending,
	}}
	f := newFollowFixture(store)

	follow, err := f.svc.RespondToFollow(authedCtx(targetID), store.byID.ID, true)
	if err != nil {
		t.Fatalf("RespondToFollow: %v", err)
	}
	if follow.ApprovalStatus != types.FollowApprovalAccepted {
		t.Fatalf("approval: want=%s got=%s", types.FollowApprovalAccepted, follow.ApprovalStatus)
	}
	if len(store.updated) != 1 || store.updated[0] != types.FollowApprovalAccepted {
		t.Fatalf("persisted statuses: %v", store.updated)
	}
	// Acceptance changes the follower's friend signals, so their feed refreshes.
	if len(f.rec.followed) != 1 || f.rec.followed[0] != followerID {
		t.Fatalf("recompute trigger: %v", f.rec.followed)
	}
	// The original request notification is retired and the follower hears back.
	if len(f.notif.readMarks) != 1 || f.notif.readMarks[0] != (notifPair{recipient: targetID, actor: followerID}) {
		t.Fatalf("read marks: %v", f.notif.readMarks)
	}
	if len(f.notif.accepts) != 1 || f.notif.accepts[0] != (notifPair{recipient: followerID, actor: targetID}) {
		t.Fatalf("accept notifications: %v", f.notif.accepts)
	}
}

func TestRespondToFollowReject(t *testing.T) {
	targetID := uuid.New()
	followerID := uuid.New()
	store := &fakeFollowStore{byID: &types.Follow{
		ID:             uuid.New(),
		FollowerUserID: followerID,
		TargetType:     types.FollowTargetUser,
		TargetID:       targetID,
		ApprovalStatus: types.FollowApprovalPending,
	}}
	f := newFollowFixture(store)

	follow, err := f.svc.RespondToFollow(authedCtx(targetID), store.byID.ID, false)
	if err != nil {
		t.Fatalf("RespondToFollow: %v", err)
	}
	if follow.ApprovalStatus != types.FollowApprovalRejected {
		t.Fatalf("approval: want=%s got=%s", types.FollowApprovalRejected, follow.ApprovalStatus)
	}
	// The request notification is still retired, but no rejection is announced.
	if len(f.notif.readMarks) != 1 || f.notif.readMarks[0] != (notifPair{recipient: targetID, actor: followerID}) {
		t.Fatalf("read marks: %v", f.notif.readMarks)
	}
	if len(f.notif.accepts) != 0 {
		t.Fatalf("no accept notification expected, got %v", f.notif.accepts)
	}
}

func TestRespondToFollowOnlyTargetMayRespond(t *testing.T) {
	store := &fakeFollowStore{byID: &types.Follow{
		ID:             uuid.New(),
		FollowerUserID: uuid.New(),
		TargetType:     types.FollowTargetUser,
		TargetID:       uuid.New(),
		ApprovalStatus: types.FollowApprovalPending,
	}}
	f := newFollowFixture(store)

	// A third user, neither follower nor target.
	if _, err := f.svc.RespondToFollow(authedCtx(uuid.New()), store.byID.ID, true); err == nil {
		t.Fatalf("expected authorization error")
	}
	if len(store.updated) != 0 {
		t.Fatalf("no status change expected, got %v", store.updated)
	}
}

package explore_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/api"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/app"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/cache"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/config"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/logger"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/service/explore"
)

// setupService spins up an in-memory SQLite DB, applies migrations,
// seeds the minimal dataset, starts a miniredis, and wires everything into
// an ExploreService instance.
//
// Seed:
//   - user1 → user2 like, user2 → user1 like (mutual)
//   - user3 → user1 like, but user1 → user3 pass
func setupService(t *testing.T) (*explore.Service, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))
	require.NoError(t, db.SeedMinimalTestData(dbase))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	appCtx := app.New(cfg, dbase, cache.NewRedisCache(cfg), logger.Discard())
	return explore.NewExploreService(appCtx), dbase, mr
}

// TestPutDecisionAndMutualLike ensures that a mutual like is correctly detected
// when user2 likes back user1, who already liked user2 in the seed dataset.
func TestPutDecisionAndMutualLike(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.PutDecision(ctx, &api.PutDecisionRequest{
		ActorUserID:     "2",
		RecipientUserID: "1",
		Kind:            "superlike",
	})
	require.NoError(t, err)
	assert.True(t, resp.MutualLikes)

	resp, err = svc.PutDecision(ctx, &api.PutDecisionRequest{ActorUserID: "4", RecipientUserID: "1", Kind: "pass"})
	require.NoError(t, err)
	assert.False(t, resp.MutualLikes)
}

func TestPutDecisionValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	for _, req := range []*api.PutDecisionRequest{
		{ActorUserID: "x", RecipientUserID: "1", Kind: "like"},
		{ActorUserID: "1", RecipientUserID: "", Kind: "like"},
		{ActorUserID: "1", RecipientUserID: "1", Kind: "like"},
		{ActorUserID: "1", RecipientUserID: "2", Kind: "maybe"},
	} {
		_, err := svc.PutDecision(ctx, req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "%+v", req)
	}
}

// TestPutDecisionMovesCachedCount flips a like to a pass and back; the cached
// counter always matches the database.
func TestPutDecisionMovesCachedCount(t *testing.T) {
	ctx := context.Background()
	svc, _, mr := setupService(t)

	resp, err := svc.CountLikedYou(ctx, &api.CountLikedYouRequest{RecipientUserID: "1"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.Count)

	// user4 likes user1 twice: counted once
	for i := 0; i < 2; i++ {
		_, err = svc.PutDecision(ctx, &api.PutDecisionRequest{ActorUserID: "4", RecipientUserID: "1", Kind: "like"})
		require.NoError(t, err)
	}
	val, err := mr.Get("likes:count:1")
	require.NoError(t, err)
	assert.Equal(t, "2", val)

	_, err = svc.PutDecision(ctx, &api.PutDecisionRequest{ActorUserID: "4", RecipientUserID: "1", Kind: "pass"})
	require.NoError(t, err)
	resp, err = svc.CountLikedYou(ctx, &api.CountLikedYouRequest{RecipientUserID: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.Count)
}

// TestPutDecisionPassHidesLiker checks both sides of a pass: passing a liker
// drops them from your count, and a like from someone you passed never shows.
func TestPutDecisionPassHidesLiker(t *testing.T) {
	ctx := context.Background()
	svc, _, mr := setupService(t)

	resp, err := svc.CountLikedYou(ctx, &api.CountLikedYouRequest{RecipientUserID: "1"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.Count)

	_, err = svc.PutDecision(ctx, &api.PutDecisionRequest{ActorUserID: "1", RecipientUserID: "2", Kind: "pass"})
	require.NoError(t, err)
	val, err := mr.Get("likes:count:1")
	require.NoError(t, err)
	assert.Equal(t, "0", val)

	_, err = svc.PutDecision(ctx, &api.PutDecisionRequest{ActorUserID: "3", RecipientUserID: "1", Kind: "superlike"})
	require.NoError(t, err)
	resp, err = svc.CountLikedYou(ctx, &api.CountLikedYouRequest{RecipientUserID: "1"})
	require.NoError(t, err)
	assert.Zero(t, resp.Count, "user1 passed user3")
}

func TestPutDecisionMutualCheckFails(t *testing.T) {
	ctx := context.Background()
	svc, dbase, _ := setupService(t)

	require.NoError(t, dbase.Callback().Query().Before("gorm:query").Register("test:fail_reads", func(tx *gorm.DB) {
		_ = tx.AddError(errors.New("read failed"))
	}))

	_, err := svc.PutDecision(ctx, &api.PutDecisionRequest{ActorUserID: "2", RecipientUserID: "1", Kind: "like"})
	assert.Equal(t, codes.Internal, status.Code(err))
}

// TestListLikedYou checks that only valid likers are returned.
// Expects only user2 because user3 liked user1 but was passed by user1.
func TestListLikedYou(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.ListLikedYou(ctx, &api.ListLikedYouRequest{RecipientUserID: "1"})
	require.NoError(t, err)

	require.Len(t, resp.Likers, 1)
	assert.Equal(t, "2", resp.Likers[0].ActorID)
	assert.Equal(t, "like", resp.Likers[0].Kind)
	assert.Nil(t, resp.NextPaginationToken)
}

// TestListNewLikedYou checks that new likes are correctly filtered.
// User2 is mutual and user3 was passed, so nothing is new.
func TestListNewLikedYou(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	resp, err := svc.ListNewLikedYou(ctx, &api.ListLikedYouRequest{RecipientUserID: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Likers, 0)

	resp, err = svc.ListNewLikedYou(ctx, &api.ListLikedYouRequest{RecipientUserID: "3"})
	require.NoError(t, err)
	assert.Empty(t, resp.Likers)

	_, err = svc.ListNewLikedYou(ctx, &api.ListLikedYouRequest{RecipientUserID: "-1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestCountLikedYouCache verifies like counts with cache.
// Only user2 counts for user1. User3 is excluded due to a pass.
func TestCountLikedYouCache(t *testing.T) {
	ctx := context.Background()
	svc, dbase, mr := setupService(t)

	// First call → DB
	resp1, err := svc.CountLikedYou(ctx, &api.CountLikedYouRequest{RecipientUserID: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp1.Count)
	assert.True(t, mr.Exists("likes:count:1"))

	// Second call → cache, even though the DB changed underneath
	require.NoError(t, dbase.Exec("DELETE FROM decisions").Error)
	resp2, err := svc.CountLikedYou(ctx, &api.CountLikedYouRequest{RecipientUserID: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp2.Count)
}

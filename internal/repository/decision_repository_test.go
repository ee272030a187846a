package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/repository"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	return database
}

func TestCreateOrUpdateDecision(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 2, swipe.SuperLike, 1))
	got, err := repo.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "superlike", got.Kind)
	assert.True(t, got.Liked)

	// overwrite with pass
	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 2, swipe.Pass, 3))
	got, err = repo.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "pass", got.Kind)
	assert.False(t, got.Liked)
	assert.Equal(t, uint64(3), got.Sequence)
}

func TestDeleteDecision(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 2, swipe.Like, 1))
	require.NoError(t, repo.CreateOrUpdateDecision(ctx, 1, 3, swipe.Pass, 2))
	require.NoError(t, repo.DeleteDecision(ctx, 1, 2))
	require.NoError(t, repo.DeleteDecision(ctx, 1, 99), "missing row is fine")

	_, err := repo.Get(ctx, 1, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	ids, err := repo.DecidedIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, ids)
}

func TestGetLikersAndPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	_ = repo.CreateOrUpdateDecision(ctx, 1, 99, swipe.Like, 1)
	_ = repo.CreateOrUpdateDecision(ctx, 2, 99, swipe.Like, 1)
	_ = repo.CreateOrUpdateDecision(ctx, 3, 99, swipe.SuperLike, 1)
	// recipient passed actor 2 → exclude
	_ = repo.CreateOrUpdateDecision(ctx, 99, 2, swipe.Pass, 1)

	first, next, err := repo.GetLikers(ctx, 99, nil, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotNil(t, next)

	second, next, err := repo.GetLikers(ctx, 99, next, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Nil(t, next)

	got := []uint64{first[0].ActorID, second[0].ActorID}
	assert.ElementsMatch(t, []uint64{1, 3}, got)

	count, err := repo.CountLikers(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetNewLikers(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	// actor 1 liked 99, and 99 superliked back → mutual
	_ = repo.CreateOrUpdateDecision(ctx, 1, 99, swipe.Like, 1)
	_ = repo.CreateOrUpdateDecision(ctx, 99, 1, swipe.SuperLike, 1)

	// actor 2 liked 99, but not mutual
	_ = repo.CreateOrUpdateDecision(ctx, 2, 99, swipe.Like, 1)

	decisions, _, err := repo.GetNewLikers(ctx, 99, nil, 10)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, uint64(2), decisions[0].ActorID)

	liked, err := repo.HasLiked(ctx, 99, 1)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestGetLikers_BadToken(t *testing.T) {
	repo := repository.NewDecisionRepository(setupTestDB(t))
	bad := "%%%"
	_, _, err := repo.GetLikers(context.Background(), 1, &bad, 5)
	assert.Error(t, err)
}

package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"influencer-api/config"
	"influencer-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(config.Config{
		Env:        "test",
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { config.CloseDB(db) })
	return db
}

func TestAssignedOnlyIgnoresOtherUsersInfluencers(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	tags := NewTagRepository(db)
	influencers := NewInfluencerRepository(db)

	tag := models.NewTag(1, "Shared")
	require.NoError(t, tags.Create(ctx, &tag))

	// Another user's influencer points at user 1's tag.
	foreign := &models.Influencer{UserID: 2, Name: "x", InstaID: "x", InstaLink: "x", Tags: []models.Tag{tag}}
	require.NoError(t, influencers.Create(ctx, foreign))

	assigned, err := tags.List(ctx, 1, true)
	require.NoError(t, err)
	assert.Empty(t, assigned)

	own := &models.Influencer{UserID: 1, Name: "y", InstaID: "y", InstaLink: "y", Tags: []models.Tag{tag}}
	require.NoError(t, influencers.Create(ctx, own))

	assigned, err = tags.List(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, tag.ID, assigned[0].ID)
}

func TestGetByIDsDropsForeignIDs(t *testing.T) {
	ctx := context.Background()
	styles := NewStyleRepository(openDB(t))

	mine := models.NewStyle(1, "Mine")
	theirs := models.NewStyle(2, "Theirs")
	require.NoError(t, styles.Create(ctx, &mine))
	require.NoError(t, styles.Create(ctx, &theirs))

	found, err := styles.GetByIDs(ctx, 1, []uint{mine.ID, theirs.ID, 999})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, mine.ID, found[0].ID)

	found, err = styles.GetByIDs(ctx, 1, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGetListFilterHasNoDuplicates(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	tags := NewTagRepository(db)
	influencers := NewInfluencerRepository(db)

	a, b := models.NewTag(1, "a"), models.NewTag(1, "b")
	require.NoError(t, tags.Create(ctx, &a))
	require.NoError(t, tags.Create(ctx, &b))

	inf := &models.Influencer{UserID: 1, Name: "both", InstaID: "x", InstaLink: "x", Tags: []models.Tag{a, b}}
	require.NoError(t, influencers.Create(ctx, inf))

	list, err := influencers.GetList(ctx, 1, models.InfluencerFilter{TagIDs: []uint{a.ID, b.ID}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []uint{a.ID, b.ID}, list[0].TagIDs())
}

func TestUpdateLeavesNilRelationsAlone(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	tags := NewTagRepository(db)
	influencers := NewInfluencerRepository(db)

	tag := models.NewTag(1, "keep")
	require.NoError(t, tags.Create(ctx, &tag))
	inf := &models.Influencer{UserID: 1, Name: "x", InstaID: "x", InstaLink: "x", Tags: []models.Tag{tag}}
	require.NoError(t, influencers.Create(ctx, inf))

	inf.Name = "renamed"
	require.NoError(t, influencers.Update(ctx, inf, nil, nil))

	stored, err := influencers.GetByID(ctx, 1, inf.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Name)
	assert.Equal(t, []uint{tag.ID}, stored.TagIDs())

	empty := []models.Tag{}
	require.NoError(t, influencers.Update(ctx, stored, &empty, nil))

	stored, err = influencers.GetByID(ctx, 1, inf.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Tags)
}

package index

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"asset-indexer/core/assets"
	"asset-indexer/core/database"
	"asset-indexer/feature/index/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func openStore(t *testing.T, root string) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "assets.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewStore(db, assets.Config{Folder: root}.Resolve(), zap.NewNop(), nil)
}

func dumpItems(t *testing.T, s *Store) []models.Item {
	t.Helper()
	var rows []models.Item
	require.NoError(t, s.DB().Order("rowid").Find(&rows).Error)
	return rows
}

func dumpBlueprints(t *testing.T, s *Store) []models.Blueprint {
	t.Helper()
	var rows []models.Blueprint
	require.NoError(t, s.DB().Order("rowid").Find(&rows).Error)
	return rows
}

func TestStore_Open(t *testing.T) {
	root := sampleTree(t)
	s := openStore(t, root)
	ctx := context.Background()

	assert.False(t, s.Exists())

	built, err := s.Open(ctx)
	require.NoError(t, err)
	assert.True(t, built)
	assert.True(t, s.Exists())

	items, blueprints, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), items)
	assert.Equal(t, int64(3), blueprints)

	// A second open finds the schema and leaves the rows alone.
	built, err = s.Open(ctx)
	require.NoError(t, err)
	assert.False(t, built)

	items, _, err = s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), items)
}

func TestStore_RebuildIdempotent(t *testing.T) {
	root := sampleTree(t)
	s := openStore(t, root)
	ctx := context.Background()

	first, err := s.Rebuild(ctx)
	require.NoError(t, err)
	itemsBefore := dumpItems(t, s)
	blueprintsBefore := dumpBlueprints(t, s)

	second, err := s.Rebuild(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.Blueprints, second.Blueprints)
	assert.Equal(t, itemsBefore, dumpItems(t, s))
	assert.Equal(t, blueprintsBefore, dumpBlueprints(t, s))
}

func TestStore_RebuildPicksUpChanges(t *testing.T) {
	root := sampleTree(t)
	s := openStore(t, root)
	ctx := context.Background()

	_, err := s.Open(ctx)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(root, "items", "generic", "apple.consumable")))
	writeFile(t, root, "items/generic/pear.consumable", `{"itemName": "pear"}`)

	stats, err := s.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Items)

	names := make([]string, 0)
	for _, r := range dumpItems(t, s) {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "pear")
	assert.NotContains(t, names, "apple")
}

func TestStore_CommitRollsBack(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	s := NewStore(db, assets.Roots{}, zap.NewNop(), nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM items").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM blueprints").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO `items`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = s.commit(context.Background(), []models.Item{{Name: "apple", Filename: "apple.item", Folder: "/a", Icon: "/a/x.png", Category: "item"}}, nil)
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CommitEmpty(t *testing.T) {
	root := t.TempDir()
	s := openStore(t, root)
	ctx := context.Background()

	stats, err := s.Rebuild(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Items)
	assert.Zero(t, stats.Blueprints)
	assert.True(t, s.Exists())
}

func TestStore_RebuildMissingRoot(t *testing.T) {
	root := sampleTree(t)
	s := openStore(t, root)
	ctx := context.Background()

	_, err := s.Open(ctx)
	require.NoError(t, err)
	itemsBefore := dumpItems(t, s)
	blueprintsBefore := dumpBlueprints(t, s)

	require.NoError(t, os.RemoveAll(root))

	stats, err := s.Rebuild(ctx)
	assert.ErrorIs(t, err, assets.ErrNoAssetRoot)
	assert.Nil(t, stats)
	assert.Equal(t, itemsBefore, dumpItems(t, s))
	assert.Equal(t, blueprintsBefore, dumpBlueprints(t, s))
}

func TestStore_OpenWithoutAssetFolder(t *testing.T) {
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "assets.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	s := NewStore(db, assets.Config{}.Resolve(), zap.NewNop(), nil)

	built, err := s.Open(context.Background())
	assert.ErrorIs(t, err, assets.ErrNoAssetRoot)
	assert.False(t, built)
	assert.False(t, s.Exists())
}

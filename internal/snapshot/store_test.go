package snapshot_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"rajmahal-backend/internal/models"
	"rajmahal-backend/internal/snapshot"
)

func TestSaveAndLoadSlot(t *testing.T) {
	s, err := snapshot.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)

	orders := []models.Order{{Sno: "101", Product: "sherwani"}}
	require.NoError(t, s.Save(snapshot.SlotOrders, orders))

	var loaded []models.Order
	require.NoError(t, s.Load(snapshot.SlotOrders, &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, "101", loaded[0].Sno)
}

func TestSaveOverwritesSlot(t *testing.T) {
	s, err := snapshot.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)

	require.NoError(t, s.Save(snapshot.SlotOrders, []models.Order{{Sno: "101"}}))
	require.NoError(t, s.Save(snapshot.SlotOrders, []models.Order{{Sno: "202"}}))

	// Only the latest snapshot is kept, it is a cache, not a queue.
	var loaded []models.Order
	require.NoError(t, s.Load(snapshot.SlotOrders, &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, "202", loaded[0].Sno)
}

func TestLoadMissingSlot(t *testing.T) {
	s, err := snapshot.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)

	var loaded []models.Order
	err = s.Load(snapshot.SlotOrders, &loaded)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

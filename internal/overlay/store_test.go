package overlay

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djgmh9/Dicto-sub000/internal/config"
	"github.com/djgmh9/Dicto-sub000/internal/model"
)

func newTestStore(t *testing.T) (*PositionStore, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	store := NewPositionStore(settings, newFakeWindowSystem(400, 800), ButtonSizePx)
	t.Cleanup(store.Close)
	return store, settings
}

func TestPositionStoreFirstRunHasNoPosition(t *testing.T) {
	store, _ := newTestStore(t)

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok, "fresh install must report no saved position")
}

func TestPositionStoreSaveSyncRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	saved := model.ScreenPosition{X: 33, Y: 44}
	require.NoError(t, store.SaveSync(saved))

	pos, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, pos)
}

func TestPositionStoreAsyncSaveCommitsOnClose(t *testing.T) {
	store, settings := newTestStore(t)

	store.Save(model.ScreenPosition{X: 5, Y: 6})
	store.Close()

	// Close drains the queue, so the async write must have landed
	assert.Equal(t, model.ScreenPosition{X: 5, Y: 6}, settings.GetFloatingButtonPosition())
}

func TestPositionStoreSaveSyncObservesEarlierWrites(t *testing.T) {
	store, settings := newTestStore(t)

	store.Save(model.ScreenPosition{X: 1, Y: 2})
	store.Save(model.ScreenPosition{X: 3, Y: 4})
	require.NoError(t, store.SaveSync(model.ScreenPosition{X: 9, Y: 9}))

	// FIFO order: by the time SaveSync returns, the queued writes are
	// committed and the synchronous one is last
	assert.Equal(t, model.ScreenPosition{X: 9, Y: 9}, settings.GetFloatingButtonPosition())
}

func TestPositionStoreSaveAfterCloseIsDropped(t *testing.T) {
	store, _ := newTestStore(t)
	store.Close()

	store.Save(model.ScreenPosition{X: 7, Y: 7})

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok, "write after close must not be committed")
}

func TestPositionStoreSaveSyncAfterCloseFails(t *testing.T) {
	store, _ := newTestStore(t)
	store.Close()

	err := store.SaveSync(model.ScreenPosition{X: 7, Y: 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreIO)
}

func TestPositionStoreCloseIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	store.Close()
	store.Close()
}

func TestPositionStoreConstrain(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		pos      model.ScreenPosition
		expected model.ScreenPosition
	}{
		{model.ScreenPosition{X: 100, Y: 200}, model.ScreenPosition{X: 100, Y: 200}},
		{model.ScreenPosition{X: 900, Y: 900}, model.ScreenPosition{X: 372, Y: 744}},
		{model.ScreenPosition{X: -999, Y: -5}, model.ScreenPosition{X: -28, Y: 0}},
	}

	for _, tt := range tests {
		if got := store.Constrain(tt.pos); got != tt.expected {
			t.Errorf("Constrain(%s) = %s, expected %s", tt.pos, got, tt.expected)
		}
	}
}

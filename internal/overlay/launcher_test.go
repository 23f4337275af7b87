package overlay

import (
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djgmh9/Dicto-sub000/internal/broadcast"
	"github.com/djgmh9/Dicto-sub000/internal/config"
	"github.com/djgmh9/Dicto-sub000/internal/model"
)

type launcherHarness struct {
	facade   *LauncherFacade
	settings *config.Settings

	mu         sync.Mutex
	permission bool
	builds     int
}

func newLauncherHarness(t *testing.T) *launcherHarness {
	t.Helper()
	app := test.NewApp()

	h := &launcherHarness{settings: config.NewSettings(app), permission: true}
	h.facade = NewLauncherFacade(h.settings, func() (*ProcessHost, *Coordinator) {
		h.mu.Lock()
		h.builds++
		h.mu.Unlock()

		coordinator := NewCoordinator(
			newFakeWindowSystem(400, 800),
			&fakePositionStore{ok: false},
			h.settings,
			broadcast.NewBus(),
			&fakeForeground{},
			&fakeLauncher{},
			clockwork.NewFakeClock(),
		)
		return NewProcessHost(coordinator), coordinator
	}, h.hasPermission)
	t.Cleanup(h.facade.StopFloatingWindow)
	return h
}

func (h *launcherHarness) hasPermission() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.permission
}

func (h *launcherHarness) setPermission(granted bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.permission = granted
}

func (h *launcherHarness) buildCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.builds
}

func (h *launcherHarness) waitVisible(t *testing.T) *Coordinator {
	t.Helper()
	h.facade.mu.Lock()
	coordinator := h.facade.coordinator
	h.facade.mu.Unlock()
	require.NotNil(t, coordinator)
	require.Eventually(t, func() bool {
		return coordinator.Visibility() == model.OverlayVisible
	}, time.Second, 5*time.Millisecond)
	return coordinator
}

func TestLauncherFacadeStartRequiresPermission(t *testing.T) {
	h := newLauncherHarness(t)
	h.setPermission(false)

	err := h.facade.StartFloatingWindow()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, 0, h.buildCount(), "no process may be built without permission")
	assert.False(t, h.settings.GetFloatingWindowEnabled())
	assert.False(t, h.facade.IsRunning())
	assert.False(t, h.facade.IsPermissionGranted())
}

func TestLauncherFacadeStartAndStop(t *testing.T) {
	h := newLauncherHarness(t)

	require.NoError(t, h.facade.StartFloatingWindow())
	assert.True(t, h.facade.IsRunning())
	assert.True(t, h.settings.GetFloatingWindowEnabled(), "start records the enabled flag")
	assert.Equal(t, 1, h.buildCount())

	h.facade.StopFloatingWindow()
	assert.False(t, h.facade.IsRunning())
	assert.False(t, h.settings.GetFloatingWindowEnabled(), "stop clears the enabled flag")

	// Stopping again is a no-op
	h.facade.StopFloatingWindow()
	assert.Equal(t, 1, h.buildCount())
}

func TestLauncherFacadeStartWhileRunningIsIdempotent(t *testing.T) {
	h := newLauncherHarness(t)

	require.NoError(t, h.facade.StartFloatingWindow())
	require.NoError(t, h.facade.StartFloatingWindow())

	assert.Equal(t, 1, h.buildCount(), "a running subsystem must not be rebuilt")
}

func TestLauncherFacadeRestartBuildsFreshProcess(t *testing.T) {
	h := newLauncherHarness(t)

	require.NoError(t, h.facade.StartFloatingWindow())
	h.facade.StopFloatingWindow()
	require.NoError(t, h.facade.StartFloatingWindow())

	assert.Equal(t, 2, h.buildCount(), "every start constructs a new process")
	assert.True(t, h.facade.IsRunning())
}

func TestLauncherFacadeShutdownKeepsEnabledFlag(t *testing.T) {
	h := newLauncherHarness(t)

	require.NoError(t, h.facade.StartFloatingWindow())
	h.facade.Shutdown()

	assert.False(t, h.facade.IsRunning())
	assert.True(t, h.settings.GetFloatingWindowEnabled(),
		"app exit must not disable the subsystem for the next run")
}

func TestLauncherFacadeShowFallsBackToStart(t *testing.T) {
	h := newLauncherHarness(t)

	require.NoError(t, h.facade.ShowFloatingButton())

	assert.True(t, h.facade.IsRunning())
	assert.Equal(t, 1, h.buildCount())
}

func TestLauncherFacadeShowReattachesHiddenButton(t *testing.T) {
	h := newLauncherHarness(t)
	require.NoError(t, h.facade.StartFloatingWindow())
	coordinator := h.waitVisible(t)

	coordinator.handleTapped()
	require.Equal(t, model.OverlayHidden, coordinator.Visibility())

	require.NoError(t, h.facade.ShowFloatingButton())
	assert.Equal(t, model.OverlayVisible, coordinator.Visibility())
	assert.Equal(t, 1, h.buildCount(), "re-showing must not restart the process")
}

func TestLauncherFacadeTrashDeletionStopsSubsystem(t *testing.T) {
	h := newLauncherHarness(t)

	var stopMu sync.Mutex
	stopped := 0
	h.facade.SetStoppedCallback(func() {
		stopMu.Lock()
		stopped++
		stopMu.Unlock()
	})

	require.NoError(t, h.facade.StartFloatingWindow())
	coordinator := h.waitVisible(t)

	coordinator.handleDragStart(model.ScreenPosition{X: 0, Y: 100})
	coordinator.handleDragEnd(model.ScreenPosition{X: 200, Y: 728}, model.ScreenPosition{X: 172, Y: 700}, true)

	assert.False(t, h.facade.IsRunning(), "trash deletion stops the whole subsystem")
	assert.False(t, h.settings.GetFloatingWindowEnabled())
	assert.Equal(t, 1, h.buildCount(), "an orderly deletion is not restarted")

	stopMu.Lock()
	defer stopMu.Unlock()
	assert.Equal(t, 1, stopped, "the stopped callback reports the internal stop")
}

func TestLauncherFacadeRestartsAbnormalExit(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)

	var mu sync.Mutex
	builds := 0
	facade := NewLauncherFacade(settings, func() (*ProcessHost, *Coordinator) {
		mu.Lock()
		builds++
		first := builds == 1
		mu.Unlock()

		coordinator := NewCoordinator(
			newFakeWindowSystem(400, 800),
			&fakePositionStore{ok: false},
			settings,
			broadcast.NewBus(),
			&fakeForeground{},
			&fakeLauncher{},
			clockwork.NewFakeClock(),
		)
		if first {
			// First process dies right after entering the foreground
			return NewProcessHost(&fakeDelegate{startPanic: true}), coordinator
		}
		return NewProcessHost(coordinator), coordinator
	}, func() bool { return true })
	t.Cleanup(facade.StopFloatingWindow)

	require.NoError(t, facade.StartFloatingWindow())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return builds == 2 && facade.IsRunning()
	}, time.Second, 5*time.Millisecond, "abnormal exit must be restarted")
	assert.True(t, settings.GetFloatingWindowEnabled())
}

// crashingDelegate dies on start but holds its teardown until the gate is
// closed, so tests can order the exit against other events.
type crashingDelegate struct {
	cleanupGate chan struct{}
}

func (d *crashingDelegate) Initialize() {}

func (d *crashingDelegate) Start() {
	panic("overlay process crashed")
}

func (d *crashingDelegate) Cleanup() {
	<-d.cleanupGate
}

func TestLauncherFacadeDoesNotRestartWhenDisabled(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	gate := make(chan struct{})

	var mu sync.Mutex
	builds := 0
	facade := NewLauncherFacade(settings, func() (*ProcessHost, *Coordinator) {
		mu.Lock()
		builds++
		mu.Unlock()

		coordinator := NewCoordinator(
			newFakeWindowSystem(400, 800),
			&fakePositionStore{ok: false},
			settings,
			broadcast.NewBus(),
			&fakeForeground{},
			&fakeLauncher{},
			clockwork.NewFakeClock(),
		)
		return NewProcessHost(&crashingDelegate{cleanupGate: gate}), coordinator
	}, func() bool { return true })
	t.Cleanup(facade.StopFloatingWindow)

	require.NoError(t, facade.StartFloatingWindow())

	// The user disables the subsystem before the crash finishes tearing down
	settings.SetFloatingWindowEnabled(false)
	close(gate)

	require.Eventually(t, func() bool {
		return !facade.IsRunning()
	}, time.Second, 5*time.Millisecond)

	assert.Never(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return builds > 1
	}, 200*time.Millisecond, 20*time.Millisecond, "a disabled subsystem must stay down")
}

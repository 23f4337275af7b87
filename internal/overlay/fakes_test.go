package overlay

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// fakeWindowSystem records attach and detach calls so tests can assert on
// surface state without a real canvas.
type fakeWindowSystem struct {
	mu          sync.Mutex
	width       int
	height      int
	attachErr   error
	attachCount int
	attached    map[fyne.CanvasObject]model.ScreenPosition
}

func newFakeWindowSystem(width, height int) *fakeWindowSystem {
	return &fakeWindowSystem{
		width:    width,
		height:   height,
		attached: make(map[fyne.CanvasObject]model.ScreenPosition),
	}
}

func (f *fakeWindowSystem) Attach(obj fyne.CanvasObject, pos model.ScreenPosition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attachErr != nil {
		return f.attachErr
	}
	if _, ok := f.attached[obj]; ok {
		return nil
	}
	f.attachCount++
	f.attached[obj] = pos
	return nil
}

func (f *fakeWindowSystem) Detach(obj fyne.CanvasObject) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.attached, obj)
}

func (f *fakeWindowSystem) ScreenSize() (int, int) {
	return f.width, f.height
}

func (f *fakeWindowSystem) attachedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.attached)
}

func (f *fakeWindowSystem) isAttached(obj fyne.CanvasObject) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.attached[obj]
	return ok
}

func (f *fakeWindowSystem) attachedPos(obj fyne.CanvasObject) (model.ScreenPosition, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pos, ok := f.attached[obj]
	return pos, ok
}

// fakePositionStore is a Store with scripted load behavior and recorded
// writes.
type fakePositionStore struct {
	mu        sync.Mutex
	pos       model.ScreenPosition
	ok        bool
	loadErr   error
	loadGate  chan struct{} // when non-nil, Load blocks until the gate closes
	saves     []model.ScreenPosition
	syncSaves []model.ScreenPosition
	closed    bool
}

func (f *fakePositionStore) Load() (model.ScreenPosition, bool, error) {
	if f.loadGate != nil {
		<-f.loadGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos, f.ok, f.loadErr
}

func (f *fakePositionStore) Save(pos model.ScreenPosition) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, pos)
}

func (f *fakePositionStore) SaveSync(pos model.ScreenPosition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncSaves = append(f.syncSaves, pos)
	return nil
}

func (f *fakePositionStore) Constrain(pos model.ScreenPosition) model.ScreenPosition {
	return ConstrainPosition(pos, ButtonSizePx, 400, 800)
}

func (f *fakePositionStore) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakePositionStore) savedPositions() []model.ScreenPosition {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ScreenPosition(nil), f.saves...)
}

func (f *fakePositionStore) syncSavedPositions() []model.ScreenPosition {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ScreenPosition(nil), f.syncSaves...)
}

func (f *fakePositionStore) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// fakeForeground counts promote and demote calls.
type fakeForeground struct {
	mu       sync.Mutex
	promotes int
	demotes  int
	err      error
}

func (f *fakeForeground) Promote() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.promotes++
	return f.err
}

func (f *fakeForeground) Demote() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.demotes++
}

func (f *fakeForeground) promoteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.promotes
}

func (f *fakeForeground) demoteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.demotes
}

// fakeLauncher records translator launches and can fail on demand.
type fakeLauncher struct {
	mu       sync.Mutex
	err      error
	launches int
}

func (f *fakeLauncher) LaunchTranslator() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.launches++
	return f.err
}

func (f *fakeLauncher) launchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.launches
}

// fakeDelegate is a LifecycleDelegate with recorded calls and optional
// panics for supervisor tests.
type fakeDelegate struct {
	mu          sync.Mutex
	initialized int
	started     int
	cleanedUp   int
	initPanic   bool
	startPanic  bool
}

func (f *fakeDelegate) Initialize() {
	f.mu.Lock()
	f.initialized++
	panicNow := f.initPanic
	f.mu.Unlock()
	if panicNow {
		panic("delegate initialize failed")
	}
}

func (f *fakeDelegate) Start() {
	f.mu.Lock()
	f.started++
	panicNow := f.startPanic
	f.mu.Unlock()
	if panicNow {
		panic("delegate start failed")
	}
}

func (f *fakeDelegate) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleanedUp++
}

func (f *fakeDelegate) counts() (initialized, started, cleanedUp int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initialized, f.started, f.cleanedUp
}

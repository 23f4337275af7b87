package overlay

import (
	"fmt"
	"log"
	"sync"

	"github.com/djgmh9/Dicto-sub000/internal/config"
	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// writeQueueSize bounds the async write queue. Drop positions arrive one per
// completed gesture, so the buffer stays small; a full queue drops the write
// instead of blocking a UI callback.
const writeQueueSize = 16

// writeRequest is one queued position write. done is nil for fire-and-forget
// writes and closed after the commit for synchronous ones.
type writeRequest struct {
	pos  model.ScreenPosition
	done chan struct{}
}

// PositionStore persists the floating button position through the app
// preferences. A single writer goroutine commits all writes in FIFO order,
// which is what lets a blocking SaveSync guarantee that the position it
// observes is the last one written.
type PositionStore struct {
	settings *config.Settings
	windows  WindowSystem
	size     int

	writes    chan writeRequest
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewPositionStore creates a store writing through settings and starts its
// writer goroutine. windows supplies the screen bounds used by Constrain;
// size is the widget edge length in pixels.
func NewPositionStore(settings *config.Settings, windows WindowSystem, size int) *PositionStore {
	ps := &PositionStore{
		settings: settings,
		windows:  windows,
		size:     size,
		writes:   make(chan writeRequest, writeQueueSize),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go ps.run()
	return ps
}

// Load returns the last persisted position. ok is false on a fresh install,
// before any position has been saved.
func (ps *PositionStore) Load() (model.ScreenPosition, bool, error) {
	if !ps.settings.HasSavedButtonPosition() {
		return model.ScreenPosition{}, false, nil
	}
	return ps.settings.GetFloatingButtonPosition(), true, nil
}

// Save queues an asynchronous write of pos. It never blocks: when the queue
// is full or the store is closed the write is dropped and logged.
func (ps *PositionStore) Save(pos model.ScreenPosition) {
	select {
	case <-ps.done:
		log.Printf("Position store closed, dropping write %s", pos)
		return
	default:
	}

	select {
	case ps.writes <- writeRequest{pos: pos}:
	default:
		log.Printf("Position write queue full, dropping write %s", pos)
	}
}

// SaveSync writes pos and blocks until the writer goroutine has committed
// it. Because the writer drains the queue in order, every earlier Save is
// committed first and pos is the last position observed.
func (ps *PositionStore) SaveSync(pos model.ScreenPosition) error {
	req := writeRequest{pos: pos, done: make(chan struct{})}

	select {
	case ps.writes <- req:
	case <-ps.done:
		return fmt.Errorf("synchronous save of %s after close: %w", pos, ErrStoreIO)
	}

	select {
	case <-req.done:
		return nil
	case <-ps.done:
		return fmt.Errorf("store closed before committing %s: %w", pos, ErrStoreIO)
	}
}

// Constrain clamps pos to the current screen bounds
func (ps *PositionStore) Constrain(pos model.ScreenPosition) model.ScreenPosition {
	w, h := ps.windows.ScreenSize()
	return ConstrainPosition(pos, ps.size, w, h)
}

// Close stops the writer goroutine after draining queued writes. Safe to
// call more than once.
func (ps *PositionStore) Close() {
	ps.closeOnce.Do(func() { close(ps.quit) })
	<-ps.done
}

func (ps *PositionStore) run() {
	defer close(ps.done)
	for {
		select {
		case req := <-ps.writes:
			ps.commit(req)
		case <-ps.quit:
			for {
				select {
				case req := <-ps.writes:
					ps.commit(req)
				default:
					return
				}
			}
		}
	}
}

func (ps *PositionStore) commit(req writeRequest) {
	ps.settings.SetFloatingButtonPosition(req.pos)
	log.Printf("Saved floating button position %s", req.pos)
	if req.done != nil {
		close(req.done)
	}
}

package overlay

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/djgmh9/Dicto-sub000/internal/model"
)

// canvasWindowSystem draws overlay objects on a Fyne canvas overlay stack,
// above all other app content. It is the in-process counterpart of an OS
// overlay window; a platform backend would implement the same interface.
//
// Each object gets its own layout-free wrapper so the overlay stack can
// resize the wrapper to the full canvas without touching the object's own
// position and size. Not safe for concurrent use; UI goroutine only.
type canvasWindowSystem struct {
	canvas   fyne.Canvas
	wrappers map[fyne.CanvasObject]*fyne.Container
}

// NewCanvasWindowSystem returns a WindowSystem backed by the overlay stack
// of c
func NewCanvasWindowSystem(c fyne.Canvas) WindowSystem {
	return &canvasWindowSystem{
		canvas:   c,
		wrappers: make(map[fyne.CanvasObject]*fyne.Container),
	}
}

func (ws *canvasWindowSystem) Attach(obj fyne.CanvasObject, pos model.ScreenPosition) error {
	if ws.canvas == nil {
		return fmt.Errorf("no canvas for overlay surface: %w", ErrWindowAttach)
	}
	if _, ok := ws.wrappers[obj]; ok {
		return nil
	}

	obj.Move(fyne.NewPos(float32(pos.X), float32(pos.Y)))
	wrapper := container.NewWithoutLayout(obj)
	ws.wrappers[obj] = wrapper
	ws.canvas.Overlays().Add(wrapper)
	return nil
}

func (ws *canvasWindowSystem) Detach(obj fyne.CanvasObject) {
	wrapper, ok := ws.wrappers[obj]
	if !ok {
		return
	}
	delete(ws.wrappers, obj)
	ws.canvas.Overlays().Remove(wrapper)
}

func (ws *canvasWindowSystem) ScreenSize() (int, int) {
	if ws.canvas == nil {
		return 0, 0
	}
	size := ws.canvas.Size()
	return int(size.Width), int(size.Height)
}

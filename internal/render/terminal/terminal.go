package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/tictactoe"
)

const inviteText = "Tap To Play"

// Screen draws the board in the terminal and turns mouse clicks into
// pointer events. Board coordinates are terminal cells.
type Screen struct {
	logger   *slog.Logger
	geometry tictactoe.Geometry

	mu      sync.Mutex
	state   state
	running bool
}

func New(logger *slog.Logger, geometry tictactoe.Geometry) *Screen {
	return &Screen{
		logger:   logger.With("component", "terminal"),
		geometry: geometry,
	}
}

// Run owns the terminal until ctx is canceled or the user presses Esc or
// Ctrl+C. Left clicks are passed to onPointer.
func (that *Screen) Run(ctx context.Context, onPointer func(x, y float64)) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer func() {
		that.mu.Lock()
		that.running = false
		that.mu.Unlock()

		termbox.Close()
	}()

	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	that.mu.Lock()
	that.running = true
	that.mu.Unlock()

	that.draw()

	go func() {
		<-ctx.Done()
		termbox.Interrupt()
	}()

	for {
		event := termbox.PollEvent()

		switch event.Type {
		case termbox.EventInterrupt:
			return nil
		case termbox.EventError:
			return fmt.Errorf("terminal error: %w", event.Err)
		case termbox.EventKey:
			if event.Key == termbox.KeyEsc || event.Key == termbox.KeyCtrlC {
				return nil
			}
		case termbox.EventMouse:
			if event.Key == termbox.MouseLeft {
				// aim at the middle of the terminal cell
				onPointer(float64(event.MouseX)+0.5, float64(event.MouseY)+0.5)
			}
		case termbox.EventResize:
			that.draw()
		}
	}
}

func (that *Screen) Render(batch entity.RenderBatch) {
	that.mu.Lock()
	that.state.apply(batch)
	running := that.running
	that.mu.Unlock()

	for i := 0; running && i < len(batch.Placements); i++ {
		// terminal bell stands in for the placement sound
		_, _ = os.Stdout.WriteString("\a")
	}

	that.draw()
}

func (that *Screen) draw() {
	that.mu.Lock()
	defer that.mu.Unlock()

	// batches before Run only update the state
	if !that.running {
		return
	}

	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		that.logger.Debug("terminal not ready", "error", err)
		return
	}

	for _, cell := range that.state.layout(that.geometry) {
		attr := termbox.ColorDefault
		if cell.bold {
			attr |= termbox.AttrBold
		}

		termbox.SetCell(cell.x, cell.y, cell.ch, attr, termbox.ColorDefault)
	}

	if err := termbox.Flush(); err != nil {
		that.logger.Error("failed to flush terminal", "error", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/tictactoe"
)

const inboxSize = 64

type Renderer interface {
	Render(batch entity.RenderBatch)
}

type moveSender interface {
	SendMoveRequest(ctx context.Context, cell entity.CellIndex) error
}

type updateMessage struct {
	update entity.Update
}

type pointerMessage struct {
	point tictactoe.Point
}

type assetsLoadedMessage struct {
	session uint64
	assets  entity.PlayerAssets
	err     error
}

// Reconciler keeps the presentation in sync with the authoritative
// snapshots. All state changes happen on the goroutine running Run.
type Reconciler struct {
	logger   *slog.Logger
	geometry tictactoe.Geometry
	binder   *PlayerBinder
	renderer Renderer
	sender   moveSender

	inbox chan any
	done  chan struct{}
	once  sync.Once

	phase   Phase
	session Session

	viewMu sync.RWMutex
	view   entity.View
}

func NewReconciler(logger *slog.Logger, geometry tictactoe.Geometry, binder *PlayerBinder, renderer Renderer, sender moveSender) *Reconciler {
	return &Reconciler{
		logger:   logger.With("component", "reconciler"),
		geometry: geometry,
		binder:   binder,
		renderer: renderer,
		sender:   sender,

		inbox: make(chan any, inboxSize),
		done:  make(chan struct{}),

		phase: PhaseColdStart,
		view:  entity.View{Phase: PhaseColdStart.String()},
	}
}

// Run processes messages one at a time until ctx is canceled.
func (that *Reconciler) Run(ctx context.Context) error {
	defer that.once.Do(func() { close(that.done) })

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case msg := <-that.inbox:
			that.dispatch(ctx, msg)
		}
	}
}

// OnUpdate queues a snapshot from the channel.
func (that *Reconciler) OnUpdate(update entity.Update) {
	that.post(updateMessage{update: update})
}

// OnPointer queues a pointer-down at screen coordinates.
func (that *Reconciler) OnPointer(x, y float64) {
	that.post(pointerMessage{point: tictactoe.Point{X: x, Y: y}})
}

// View returns the presentation state after the latest pass.
func (that *Reconciler) View() entity.View {
	that.viewMu.RLock()
	defer that.viewMu.RUnlock()

	view := that.view
	view.Panels = append([]entity.PlayerPanel(nil), that.view.Panels...)

	return view
}

func (that *Reconciler) post(msg any) {
	select {
	case that.inbox <- msg:
	case <-that.done:
	}
}

func (that *Reconciler) dispatch(ctx context.Context, msg any) {
	switch m := msg.(type) {
	case updateMessage:
		that.reconcile(ctx, m.update)
	case pointerMessage:
		that.handlePointer(ctx, m.point)
	case assetsLoadedMessage:
		that.handleAssetsLoaded(m)
	default:
		that.logger.Warn("unknown message", "type", fmt.Sprintf("%T", msg))
	}
}

// reconcile runs one pass for an incoming snapshot.
func (that *Reconciler) reconcile(ctx context.Context, update entity.Update) {
	log := that.logger.With("method", "reconcile")

	batch := entity.RenderBatch{}

	if that.phase == PhaseColdStart {
		that.session.Reset()
		that.phase = PhaseAwaitingFirstSnapshot
	}

	if tictactoe.ShouldReset(update.Event) {
		that.session.Reset()
		that.phase = PhaseAwaitingFirstSnapshot
		batch.Reset = true
		log.Info("new game, session reset", "session", that.session.ID)
	}

	if that.phase == PhaseAwaitingFirstSnapshot {
		sessionID := that.session.ID
		that.binder.BindOnce(ctx, &that.session, update, func(assets entity.PlayerAssets, err error) {
			that.post(assetsLoadedMessage{session: sessionID, assets: assets, err: err})
		})
		that.phase = PhaseActive
	}

	turn := tictactoe.ResolveTurn(update.Game.LastMoverID, that.session.Players(), that.session.LocalViewer)
	that.session.LastMover = turn.LastMover
	that.session.CurrentMover = turn.CurrentMover
	that.session.IsLocalTurn = turn.IsLocalTurn

	for _, placement := range tictactoe.Diff(that.session.Rendered, update.Game.Cells) {
		mark, ok := tictactoe.MarkFor(placement.Player, that.session.FirstPlayer, that.session.SecondPlayer)
		if !ok {
			log.Debug("placement deferred", "cell", placement.Cell, "player", placement.Player,
				"error", apperror.ErrStaleReference)
			continue
		}

		placement.Mark = mark
		that.session.Rendered = that.session.Rendered.With(placement.Cell)
		that.session.Marks[placement.Cell] = mark
		batch.Placements = append(batch.Placements, placement)
	}

	if occupied := update.Game.Cells.Occupied(); !that.session.Rendered.SubsetOf(occupied) {
		log.Warn("snapshot dropped cells that are already rendered",
			"rendered", that.session.Rendered.Cells(), "occupied", occupied.Cells())
	}

	that.fill(&batch)
	that.publish(batch)
}

func (that *Reconciler) handlePointer(ctx context.Context, point tictactoe.Point) {
	log := that.logger.With("method", "handlePointer")

	if that.phase != PhaseActive || !that.session.IsLocalTurn {
		log.Debug("pointer dropped", "x", point.X, "y", point.Y, "error", apperror.ErrOutOfTurn)
		return
	}

	cell, err := that.geometry.CellAt(point)
	if err != nil {
		log.Debug("pointer dropped", "error", err)
		return
	}

	if err = that.sender.SendMoveRequest(ctx, cell); err != nil {
		log.Error("failed to send move request", "cell", cell, "error", err)
	}
}

func (that *Reconciler) handleAssetsLoaded(msg assetsLoadedMessage) {
	log := that.logger.With("method", "handleAssetsLoaded", "session", msg.session)

	if msg.session != that.session.ID || that.phase != PhaseActive {
		log.Debug("assets of a previous session dropped", "current", that.session.ID)
		return
	}

	if msg.err != nil {
		log.Error("failed to load player assets", "error", msg.err)
		return
	}

	that.session.AssetsReady = true
	that.session.Panels = that.binder.Panels(&that.session, msg.assets)

	batch := entity.RenderBatch{Panels: that.session.Panels}
	that.fill(&batch)
	that.publish(batch)

	log.Info("player panels ready")
}

// fill sets the parts of a batch that are recomputed on every pass.
func (that *Reconciler) fill(batch *entity.RenderBatch) {
	batch.Session = that.session.ID
	batch.CurrentMover = that.session.CurrentMover
	batch.IsLocalTurn = that.session.IsLocalTurn
	batch.ShowInvite = that.session.Rendered.IsEmpty() && that.session.IsLocalTurn

	if that.session.AssetsReady {
		emphasis := tictactoe.Emphasis(that.session.CurrentMover, that.session.FirstPlayer, that.session.SecondPlayer)
		batch.Emphasis = &emphasis
	}
}

func (that *Reconciler) publish(batch entity.RenderBatch) {
	that.renderer.Render(batch)

	view := entity.View{
		Session:      that.session.ID,
		Phase:        that.phase.String(),
		Marks:        that.session.Marks,
		CurrentMover: that.session.CurrentMover,
		IsLocalTurn:  that.session.IsLocalTurn,
		ShowInvite:   batch.ShowInvite,
		Emphasis:     batch.Emphasis,
		Panels:       append([]entity.PlayerPanel(nil), that.session.Panels...),
	}

	that.viewMu.Lock()
	that.view = view
	that.viewMu.Unlock()
}

package usecase

import (
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

// Phase is the state of the reconciliation loop.
type Phase int

const (
	PhaseColdStart Phase = iota
	PhaseAwaitingFirstSnapshot
	PhaseActive
)

func (that Phase) String() string {
	switch that {
	case PhaseColdStart:
		return "cold_start"
	case PhaseAwaitingFirstSnapshot:
		return "awaiting_first_snapshot"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// Session is the derived state between one game start and the next reset.
// It is owned by the reconciliation loop and never shared.
type Session struct {
	ID uint64

	FirstPlayer  entity.PlayerID
	SecondPlayer entity.PlayerID
	LocalViewer  entity.PlayerID
	PlayersBound bool

	LastMover    entity.PlayerID
	CurrentMover entity.PlayerID
	IsLocalTurn  bool

	Rendered entity.CellSet
	Marks    [entity.CellCount]string

	AssetsReady bool
	Panels      []entity.PlayerPanel
}

// Players returns the bound pair in binding order.
func (that *Session) Players() [2]entity.PlayerID {
	return [2]entity.PlayerID{that.FirstPlayer, that.SecondPlayer}
}

// IsBound reports whether id is one of the two bound players.
func (that *Session) IsBound(id entity.PlayerID) bool {
	return that.PlayersBound && id.IsSet() && (id == that.FirstPlayer || id == that.SecondPlayer)
}

// Reset discards everything derived from the previous game and moves on to
// a new session id.
func (that *Session) Reset() {
	*that = Session{ID: that.ID + 1}
}

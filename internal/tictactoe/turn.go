package tictactoe

import "github.com/rocketscienceinc/tictactoe-client/internal/entity"

// Turn is the outcome of ResolveTurn.
type Turn struct {
	// LastMover is the snapshot's last mover, or the second player when
	// nobody has moved yet.
	LastMover    entity.PlayerID
	CurrentMover entity.PlayerID
	IsLocalTurn  bool
}

// ResolveTurn works out whose turn it is. With no last mover the second
// player is treated as having moved last, so the first player opens.
// Observers (empty localViewer) are never on turn.
func ResolveTurn(lastMover entity.PlayerID, allPlayerIDs [2]entity.PlayerID, localViewer entity.PlayerID) Turn {
	first, second := allPlayerIDs[0], allPlayerIDs[1]

	effective := lastMover
	if !effective.IsSet() {
		effective = second
	}

	current := first
	if effective == first {
		current = second
	}

	return Turn{
		LastMover:    effective,
		CurrentMover: current,
		IsLocalTurn:  localViewer.IsSet() && localViewer != effective,
	}
}

// Emphasis highlights the current mover's panel and dims the other one.
func Emphasis(currentMover, first, second entity.PlayerID) entity.Emphasis {
	emphasis := entity.Emphasis{First: entity.AlphaDimmed, Second: entity.AlphaDimmed}

	switch currentMover {
	case first:
		emphasis.First = entity.AlphaEmphasized
	case second:
		emphasis.Second = entity.AlphaEmphasized
	}

	return emphasis
}

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
)

const (
	BoardSide = 3
	CellCount = BoardSide * BoardSide

	EmptyCell PlayerID = ""

	MarkX = "X"
	MarkO = "O"

	EventStateSync = "stateSync"
)

// CellIndex is a row-major index into the 3x3 board.
type CellIndex int

func (that CellIndex) Valid() bool {
	return that >= 0 && that < CellCount
}

func (that CellIndex) Validate() error {
	if !that.Valid() {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, int(that))
	}

	return nil
}

// Col and Row return the column and row of the cell on the board.
func (that CellIndex) Col() int { return int(that) % BoardSide }
func (that CellIndex) Row() int { return int(that) / BoardSide }

// PlayerID is an opaque identifier assigned by the authoritative channel.
// The zero value means "absent".
type PlayerID string

func (that PlayerID) IsSet() bool {
	return that != EmptyCell
}

// Board is the authoritative cell assignment. Unset cells hold EmptyCell.
type Board [CellCount]PlayerID

// Occupied returns the set of cells with an assignment.
func (that *Board) Occupied() CellSet {
	var set CellSet
	for i, owner := range that {
		if owner.IsSet() {
			set = set.With(CellIndex(i))
		}
	}

	return set
}

// GameSnapshot is the authoritative state at one sync point.
type GameSnapshot struct {
	Cells       Board    `json:"cells"`
	LastMoverID PlayerID `json:"lastMovePlayerId,omitempty"`
}

// SyncEvent is an optional notification delivered with a snapshot.
type SyncEvent struct {
	Name      string `json:"name"`
	IsNewGame bool   `json:"isNewGame"`
}

// Update is everything the channel hands over on a state change.
type Update struct {
	Game          GameSnapshot `json:"game"`
	LocalViewerID PlayerID     `json:"yourPlayerId,omitempty"`
	AllPlayerIDs  [2]PlayerID  `json:"allPlayerIds"`
	Event         *SyncEvent   `json:"event,omitempty"`
}

// CellSet is a set of cell indices packed into a bitmask.
type CellSet uint16

func (that CellSet) Has(cell CellIndex) bool {
	if !cell.Valid() {
		return false
	}

	return that&(1<<uint(cell)) != 0
}

func (that CellSet) With(cell CellIndex) CellSet {
	if !cell.Valid() {
		return that
	}

	return that | 1<<uint(cell)
}

func (that CellSet) Len() int {
	n := 0
	for set := that; set != 0; set &= set - 1 {
		n++
	}

	return n
}

func (that CellSet) IsEmpty() bool {
	return that == 0
}

// SubsetOf reports whether every cell in the set is also in other.
func (that CellSet) SubsetOf(other CellSet) bool {
	return that&^other == 0
}

// Cells lists the members in ascending order.
func (that CellSet) Cells() []CellIndex {
	cells := make([]CellIndex, 0, that.Len())
	for i := CellIndex(0); i < CellCount; i++ {
		if that.Has(i) {
			cells = append(cells, i)
		}
	}

	return cells
}

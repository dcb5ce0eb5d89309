package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

// Point is a position in screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Geometry maps between cell indices and screen regions of a board whose
// top-left corner is Origin and whose cells are CellSize wide and tall.
type Geometry struct {
	Origin   Point
	CellSize float64
}

func NewGeometry(originX, originY, cellSize float64) Geometry {
	return Geometry{
		Origin:   Point{X: originX, Y: originY},
		CellSize: cellSize,
	}
}

// CellAt returns the cell under the given point.
func (that Geometry) CellAt(p Point) (entity.CellIndex, error) {
	if that.CellSize <= 0 {
		return 0, fmt.Errorf("%w: cell size %v", apperror.ErrOffBoard, that.CellSize)
	}

	col := math.Floor((p.X - that.Origin.X) / that.CellSize)
	row := math.Floor((p.Y - that.Origin.Y) / that.CellSize)

	if col < 0 || col >= entity.BoardSide || row < 0 || row >= entity.BoardSide {
		return 0, fmt.Errorf("%w: (%v, %v)", apperror.ErrOffBoard, p.X, p.Y)
	}

	return entity.CellIndex(int(col) + int(row)*entity.BoardSide), nil
}

// CellCenter returns the center of the given cell.
func (that Geometry) CellCenter(cell entity.CellIndex) (Point, error) {
	if err := cell.Validate(); err != nil {
		return Point{}, err
	}

	return Point{
		X: that.Origin.X + float64(cell.Col())*that.CellSize + that.CellSize/2,
		Y: that.Origin.Y + float64(cell.Row())*that.CellSize + that.CellSize/2,
	}, nil
}

// Size is the width and height of the whole board.
func (that Geometry) Size() float64 {
	return that.CellSize * entity.BoardSide
}

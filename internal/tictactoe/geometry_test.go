package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_CellAt(t *testing.T) {
	geometry := NewGeometry(10, 20, 100)

	t.Run("Maps points inside each cell to its row-major index", func(t *testing.T) {
		// Given: the center of every cell
		for i := entity.CellIndex(0); i < entity.CellCount; i++ {
			center, err := geometry.CellCenter(i)
			require.NoError(t, err)

			// When: mapping the center back to a cell
			cell, err := geometry.CellAt(center)

			// Then: the same cell is returned
			require.NoError(t, err)
			assert.Equal(t, i, cell)
		}
	})

	t.Run("Top-left corner belongs to cell 0", func(t *testing.T) {
		cell, err := geometry.CellAt(Point{X: 10, Y: 20})

		require.NoError(t, err)
		assert.Equal(t, entity.CellIndex(0), cell)
	})

	t.Run("Bottom-right region maps to cell 8", func(t *testing.T) {
		cell, err := geometry.CellAt(Point{X: 309.9, Y: 319.9})

		require.NoError(t, err)
		assert.Equal(t, entity.CellIndex(8), cell)
	})

	t.Run("Points left of or above the board are off board", func(t *testing.T) {
		_, err := geometry.CellAt(Point{X: 9, Y: 50})
		require.ErrorIs(t, err, apperror.ErrOffBoard)

		_, err = geometry.CellAt(Point{X: 50, Y: 19})
		require.ErrorIs(t, err, apperror.ErrOffBoard)
	})

	t.Run("Points right of or below the board are off board", func(t *testing.T) {
		_, err := geometry.CellAt(Point{X: 310, Y: 50})
		require.ErrorIs(t, err, apperror.ErrOffBoard)

		_, err = geometry.CellAt(Point{X: 50, Y: 320})
		require.ErrorIs(t, err, apperror.ErrOffBoard)
	})

	t.Run("Zero cell size never maps a point", func(t *testing.T) {
		_, err := Geometry{}.CellAt(Point{})

		assert.ErrorIs(t, err, apperror.ErrOffBoard)
	})
}

func TestGeometry_CellCenter(t *testing.T) {
	geometry := NewGeometry(0, 0, 30)

	t.Run("Center of cell 4 is the middle of the board", func(t *testing.T) {
		center, err := geometry.CellCenter(4)

		require.NoError(t, err)
		assert.Equal(t, Point{X: 45, Y: 45}, center)
		assert.InDelta(t, 90.0, geometry.Size(), 0.0001)
	})

	t.Run("Invalid cell", func(t *testing.T) {
		_, err := geometry.CellCenter(9)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})
}

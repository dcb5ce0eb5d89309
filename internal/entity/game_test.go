package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellIndex_Validate(t *testing.T) {
	t.Run("Accepts every index on the board", func(t *testing.T) {
		for i := CellIndex(0); i < CellCount; i++ {
			require.NoError(t, i.Validate())
		}
	})

	t.Run("Rejects an index past the board", func(t *testing.T) {
		// When: validating cell 9
		err := CellIndex(9).Validate()

		// Then: ErrInvalidCell is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Rejects a negative index", func(t *testing.T) {
		assert.ErrorIs(t, CellIndex(-1).Validate(), apperror.ErrInvalidCell)
	})
}

func TestCellIndex_RowCol(t *testing.T) {
	// Given: the center-right cell
	cell := CellIndex(5)

	// Then: it sits on row 1, column 2
	assert.Equal(t, 1, cell.Row())
	assert.Equal(t, 2, cell.Col())
}

func TestCellSet(t *testing.T) {
	t.Run("With adds cells and Cells lists them in ascending order", func(t *testing.T) {
		// Given: cells added out of order
		set := CellSet(0).With(8).With(0).With(4)

		// Then: they come back sorted
		assert.Equal(t, []CellIndex{0, 4, 8}, set.Cells())
		assert.Equal(t, 3, set.Len())
		assert.True(t, set.Has(4))
		assert.False(t, set.Has(5))
	})

	t.Run("With ignores invalid cells", func(t *testing.T) {
		set := CellSet(0).With(9).With(-1)

		assert.True(t, set.IsEmpty())
	})

	t.Run("SubsetOf", func(t *testing.T) {
		small := CellSet(0).With(1)
		big := small.With(2)

		assert.True(t, small.SubsetOf(big))
		assert.False(t, big.SubsetOf(small))
		assert.True(t, CellSet(0).SubsetOf(small))
	})
}

func TestBoard_Occupied(t *testing.T) {
	// Given: a board with marks on the diagonal
	board := Board{"a", EmptyCell, EmptyCell, EmptyCell, "b", EmptyCell, EmptyCell, EmptyCell, "a"}

	// When: collecting the occupied cells
	occupied := board.Occupied()

	// Then: only the diagonal is returned
	assert.Equal(t, []CellIndex{0, 4, 8}, occupied.Cells())
}

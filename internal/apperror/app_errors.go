package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrOffBoard       = errors.New("point is outside the board")
	ErrOutOfTurn      = errors.New("it's not your turn")
	ErrStaleReference = errors.New("player is not bound to this session")
	ErrNotConnected   = errors.New("channel is not connected")
	ErrAssetNotFound  = errors.New("asset not found")
)

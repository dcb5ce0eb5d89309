package tictactoe

import "github.com/rocketscienceinc/tictactoe-client/internal/entity"

// ShouldReset reports whether event starts a fresh game. A stateSync sent
// on reconnect to a game in progress does not.
func ShouldReset(event *entity.SyncEvent) bool {
	return event != nil && event.Name == entity.EventStateSync && event.IsNewGame
}

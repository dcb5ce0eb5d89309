package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const (
	actionConnect   = "connect"
	actionStateSync = "state:sync"
	actionGameTurn  = "game:turn"
	actionError     = "error"
)

// Message is the envelope of every frame exchanged with the game server.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SyncPayload is the body of a state:sync message.
type SyncPayload struct {
	entity.Update
	Players map[entity.PlayerID]entity.PlayerProfile `json:"players,omitempty"`
}

// TurnPayload is the body of a game:turn request.
type TurnPayload struct {
	Cell  entity.CellIndex `json:"cell"`
	MsgID string           `json:"msgId"`
}

type ConnectPayload struct {
	Player *entity.Player `json:"player,omitempty"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

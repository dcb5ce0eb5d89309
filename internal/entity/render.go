package entity

const (
	SoundSelect = "select"

	AlphaEmphasized = 1.0
	AlphaDimmed     = 0.5
)

// Placement is one newly rendered mark.
type Placement struct {
	Cell   CellIndex `json:"cell"`
	Player PlayerID  `json:"player"`
	Mark   string    `json:"mark"`
	Sound  string    `json:"sound"`
}

// PlayerPanel is the identity panel shown for one bound player.
type PlayerPanel struct {
	PlayerID    PlayerID `json:"player_id"`
	DisplayName string   `json:"display_name"`
	Mark        string   `json:"mark"`
	Avatar      *Asset   `json:"avatar,omitempty"`
	IsLocal     bool     `json:"is_local"`
}

// Emphasis is the alpha applied to each player panel.
type Emphasis struct {
	First  float64 `json:"first"`
	Second float64 `json:"second"`
}

// RenderBatch is the output of one reconciliation pass.
type RenderBatch struct {
	Session      uint64        `json:"session"`
	Reset        bool          `json:"reset,omitempty"`
	Placements   []Placement   `json:"placements,omitempty"`
	CurrentMover PlayerID      `json:"current_mover"`
	IsLocalTurn  bool          `json:"is_local_turn"`
	Emphasis     *Emphasis     `json:"emphasis,omitempty"`
	ShowInvite   bool          `json:"show_invite"`
	Panels       []PlayerPanel `json:"panels,omitempty"`
}

// View is the accumulated presentation state after the latest pass.
type View struct {
	Session      uint64            `json:"session"`
	Phase        string            `json:"phase"`
	Marks        [CellCount]string `json:"marks"`
	CurrentMover PlayerID          `json:"current_mover"`
	IsLocalTurn  bool              `json:"is_local_turn"`
	ShowInvite   bool              `json:"show_invite"`
	Emphasis     *Emphasis         `json:"emphasis,omitempty"`
	Panels       []PlayerPanel     `json:"panels,omitempty"`
}

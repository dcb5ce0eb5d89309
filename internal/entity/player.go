package entity

// Player identifies the local client to the game server.
type Player struct {
	ID PlayerID `json:"id"`
}

// PlayerProfile is the presentation data the channel knows about a player.
type PlayerProfile struct {
	DisplayName     string `json:"displayName"`
	AvatarReference string `json:"avatarUrl"`
}

// AssetRequest asks for the avatar of one bound player.
type AssetRequest struct {
	PlayerID        PlayerID
	AvatarReference string
}

// Asset is a loaded avatar image.
type Asset struct {
	PlayerID    PlayerID `json:"player_id"`
	ContentType string   `json:"content_type"`
	Data        []byte   `json:"data"`
}

// PlayerAssets is the result of one load batch, keyed by player.
type PlayerAssets map[PlayerID]*Asset

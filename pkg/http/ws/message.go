package ws

import (
	"encoding/json"
	"time"
)

// MessageType constants for the fight-feed protocol.
const (
	// Server -> Client
	TypeFightResult = "fight_result"
	TypeError       = "error"
	TypePing        = "ping"
	TypePong        = "pong"
)

// Message wraps all WebSocket payloads with a type tag.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// FightResultPayload is pushed to every connected client after a fight.
type FightResultPayload struct {
	Winner     string    `json:"winner"`
	Loser      string    `json:"loser"`
	WinnerID   int64     `json:"winner_id"`
	LoserID    int64     `json:"loser_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

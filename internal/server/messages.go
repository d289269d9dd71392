package server

import "boomgates/internal/game"

// Message types
const (
	MsgTypeConstants = "constants"
	MsgTypeSnapshot  = "snapshot"
	MsgTypeGameEvent = "gameEvent"

	MsgTypeKeyDown = "keyDown"
	MsgTypeKeyUp   = "keyUp"
	MsgTypeAction  = "action"
	MsgTypePause   = "pause"
	MsgTypeReset   = "reset"
)

// Game event names
const (
	EventGameOver = "gameOver"
	EventReset    = "reset"
	EventPaused   = "paused"
	EventResumed  = "resumed"
)

// InputMsg is a client-to-server frame. Key is only used by keyDown and keyUp.
type InputMsg struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
}

// ConstantsMsg is sent once when a client connects
type ConstantsMsg struct {
	Type      string             `msgpack:"type"`
	Constants game.GameConstants `msgpack:"constants"`
}

// SnapshotMsg carries the game view after a tick
type SnapshotMsg struct {
	Type     string        `msgpack:"type"`
	Time     int64         `msgpack:"time"`
	Snapshot game.Snapshot `msgpack:"snapshot"`
}

// GameEventMsg announces a state change such as game over or pause
type GameEventMsg struct {
	Type       string `msgpack:"type"`
	Event      string `msgpack:"event"`
	Score      uint64 `msgpack:"score"`
	Multiplier uint64 `msgpack:"multiplier"`
	Cause      string `msgpack:"cause,omitempty"`
}

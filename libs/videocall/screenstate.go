package videocall

// ScreenState is the call screen's current state. It is derived client
// state, never persisted; a new session starts over at PRE_CALL.
type ScreenState string

const (
	// StatePreCall is the initial state: the session details screen,
	// before any join attempt.
	StatePreCall ScreenState = "PRE_CALL"
	// StateConsent means a join was requested but recording consent has
	// not been given yet.
	StateConsent ScreenState = "CONSENT"
	// StateWaiting means the local party joined the room and is waiting
	// for the counterpart.
	StateWaiting ScreenState = "WAITING"
	// StateInCall means both parties are connected.
	StateInCall ScreenState = "IN_CALL"
	// StateReconnecting means the transport lost its connection and is
	// re-establishing it.
	StateReconnecting ScreenState = "RECONNECTING"
	// StatePostCall is terminal for the screen lifecycle.
	StatePostCall ScreenState = "POST_CALL"
)

// Valid returns true iff the value is a supported screen state.
func (s ScreenState) Valid() bool {
	switch s {
	case StatePreCall, StateConsent, StateWaiting, StateInCall, StateReconnecting, StatePostCall:
		return true
	}
	return false
}

// ConnectionState is the transport level connection state as reported by
// the video provider's SDK.
type ConnectionState string

const (
	ConnectionStateConnected    ConnectionState = "connected"
	ConnectionStateReconnecting ConnectionState = "reconnecting"
	ConnectionStateDisconnected ConnectionState = "disconnected"
)

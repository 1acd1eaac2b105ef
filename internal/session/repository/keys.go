package repository

const (
	stateKeyPrefix  = "session:state:"
	eventsKeyPrefix = "session:events:"
)

// StateKey is the hash holding a session's fields.
func StateKey(sessionID string) string {
	return stateKeyPrefix + sessionID
}

// EventsChannel is the pub/sub channel for a session's change events.
func EventsChannel(sessionID string) string {
	return eventsKeyPrefix + sessionID
}

package service

// Broadcaster pushes events to a user's connected clients. Implemented by
// the WebSocket hub; delivery is best-effort.
type Broadcaster interface {
	BroadcastToUser(userID string, msgType string, payload interface{})
}

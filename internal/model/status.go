package model

// SessionStatus represents the lifecycle state of a viewer session
type SessionStatus string

const (
	// SessionStatusClosed means no session is live (initial and after dismiss)
	SessionStatusClosed SessionStatus = "Closed"

	// SessionStatusPreparing means the model asset is being fetched
	SessionStatusPreparing SessionStatus = "Preparing"

	// SessionStatusReady means the asset is materialized locally and renderable
	SessionStatusReady SessionStatus = "Ready"

	// SessionStatusError means the session failed with a user-facing message
	SessionStatusError SessionStatus = "Error"
)

// String returns the string representation of SessionStatus
func (ss SessionStatus) String() string {
	return string(ss)
}

// IsOpen returns true if a session is live (anything but Closed)
func (ss SessionStatus) IsOpen() bool {
	return ss != SessionStatusClosed
}

// IsTerminal returns true if the session reached a final outcome. Terminal
// sessions stay as they are until the modal is reopened or the source URL
// changes.
func (ss SessionStatus) IsTerminal() bool {
	return ss == SessionStatusReady || ss == SessionStatusError
}

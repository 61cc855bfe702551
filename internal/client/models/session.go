package models

// Session is the locally persisted identity of the logged-in user.
//
// It is written once on successful login or signup, read at the start of
// every protected view, and removed on logout. Nothing server-side
// validates it per request; it is advisory and never expires on its own.
type Session struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
}

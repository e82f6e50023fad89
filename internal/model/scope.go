package model

// Scope identifies the caller a request is processed on behalf of. The
// parser itself is stateless, so scope is carried for logging and for
// downstream consumers of parse results.
type Scope struct {
	UserID   string
	Username string
}

package model

// Scope identifies who a request is made on behalf of.
type Scope struct {
	UserID   string
	Username string
}

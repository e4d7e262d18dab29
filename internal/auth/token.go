package auth

import "github.com/google/uuid"

// NewToken returns an opaque bearer token for a successful login.
//
// The client stores it and attaches it as an Authorization header, but the
// backend does not keep a session table and does not verify the token on
// later requests. That gap is inherited from the product as shipped and is
// tracked in DESIGN.md rather than fixed here.
func NewToken() string {
	return uuid.NewString()
}

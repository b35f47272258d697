package types

import "github.com/golang-jwt/jwt/v4"

// Claims carried by the session token. GuestID is attached at sign-in once
// the provider identity has been resolved to a guest record.
type Claims struct {
	Email   string `json:"email"`
	GuestID uint   `json:"guest_id"`
	UID     string `json:"uid"`
	jwt.RegisteredClaims
}

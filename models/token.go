package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller as asserted by a verified token.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Claims is the JWT claim set issued by the authentication service.
// The custom id/username pair sits next to the registered claims
// (iss, sub, iat, exp).
//
// UserID is named apart from the registered "jti" ID to avoid shadowing.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token wraps a signed identity token.
//
// SignedString holds the compact JWS form that is handed to the client;
// Claims holds the decoded claim set after signing or parsing.
type Token struct {
	SignedString string `json:"-"`
	Claims       Claims `json:"-"`
}

// Identity returns the identity asserted by the token.
func (t Token) Identity() Identity {
	return Identity{ID: t.Claims.UserID, Username: t.Claims.Username}
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

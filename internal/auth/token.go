// Package auth handles bearer tokens, the capability policy evaluated
// per request, and password hashing.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified claim set embedded in a bearer token. It
// only ever comes out of Codec.DecodeToken.
type Identity struct {
	Username string
	IsAdmin  bool
}

// Codec signs and verifies bearer tokens with a process-wide HMAC
// secret loaded once at startup.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// SignToken produces a signed token embedding exactly the identity
// claims and nothing else. Tokens carry no expiry.
func (c *Codec) SignToken(ident Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": ident.Username,
		"isAdmin":  ident.IsAdmin,
	})
	return token.SignedString(c.secret)
}

// DecodeToken verifies a token and extracts its identity. Any failure
// (malformed text, wrong signature, wrong algorithm, missing claims)
// yields nil: downstream authorization must not be able to tell a bad
// token from no token. The verification detail never propagates.
func (c *Codec) DecodeToken(tokenText string) *Identity {
	token, err := jwt.Parse(tokenText, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil
	}
	isAdmin, _ := claims["isAdmin"].(bool)
	return &Identity{Username: username, IsAdmin: isAdmin}
}

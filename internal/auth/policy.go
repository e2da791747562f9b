package auth

import (
	"github.com/jobhive/jobhive/internal/apperr"
)

// Capability is the access level a route requires.
type Capability int

const (
	// Public routes pass with or without an identity.
	Public Capability = iota
	// LoggedIn requires any verified identity.
	LoggedIn
	// AdminOnly requires an identity with the admin flag.
	AdminOnly
	// AdminOrSelf requires an admin identity or one whose username
	// matches the route's subject parameter.
	AdminOrSelf
)

// Authorize evaluates an identity (nil when the request carried no
// usable token) against the required capability. routeSubject is only
// consulted for AdminOrSelf. The only failure is the absence of the
// needed capability.
func Authorize(ident *Identity, required Capability, routeSubject string) error {
	switch required {
	case Public:
		return nil
	case LoggedIn:
		if ident != nil {
			return nil
		}
	case AdminOnly:
		if ident != nil && ident.IsAdmin {
			return nil
		}
	case AdminOrSelf:
		if ident != nil && (ident.IsAdmin || ident.Username == routeSubject) {
			return nil
		}
	}
	return apperr.Unauthorized("insufficient permissions")
}

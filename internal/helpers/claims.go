package helpers

import "github.com/google/uuid"

// AuthClaims is the authenticated caller identity the middleware stores in
// the request context once the token is verified and the user is loaded.
type AuthClaims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Name   string    `json:"name,omitempty"`
	Phone  string    `json:"phone,omitempty"`
}

func (ac *AuthClaims) IsAdmin() bool {
	return ac.Role == "admin"
}

func (ac *AuthClaims) IsWorker() bool {
	return ac.Role == "worker"
}

func (ac *AuthClaims) HasRole(role string) bool {
	return ac.Role == role
}

func (ac *AuthClaims) IsOwner(userID uuid.UUID) bool {
	return ac.UserID == userID
}

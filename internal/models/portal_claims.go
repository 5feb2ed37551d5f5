package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin  = "admin"
	RoleCoach  = "coach"
	RoleClient = "client"
)

// PortalClaims are the claims carried by tokens issued to coaches and portal
// parents by the external identity provider. ClientID is only set for the
// client role and names the billing account the token may read.
type PortalClaims struct {
	jwt.RegisteredClaims
	ClientID string `json:"client_id,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

package members

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTClaims represents the claims stored in a session token.
type JWTClaims struct {
	jwt.RegisteredClaims
	MemberID   string `json:"member_id"`
	LoginEmail string `json:"login_email"`
}

// NewJWTClaims creates claims for a signed-in member.
func NewJWTClaims(memberID, loginEmail, issuer string, expiresAt time.Time) *JWTClaims {
	return &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(time.Now()),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
		MemberID:   memberID,
		LoginEmail: loginEmail,
	}
}

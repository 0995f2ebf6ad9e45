package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrSubjectMismatch is returned when a valid token names a different user than the request
var ErrSubjectMismatch = errors.New("token subject does not match user-id")

// GenerateIdentityToken creates an HS256 token whose subject is the user id.
// The identity provider at the edge issues these in production; cmd/token mints them locally.
func GenerateIdentityToken(userID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,                           // User the token speaks for
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)), // Token expiry
		IssuedAt:  jwt.NewNumericDate(now),          // Issued at current time
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// VerifyIdentityToken parses tokenStr and checks that its subject is userID
func VerifyIdentityToken(tokenStr, userID, secret string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return err // Return error if parsing fails
	}
	if !token.Valid {
		return jwt.ErrSignatureInvalid
	}
	if claims.Subject != userID {
		return ErrSubjectMismatch
	}
	return nil
}

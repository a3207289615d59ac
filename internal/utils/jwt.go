package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/civilci/intake-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateIdentityToken creates a signed HMAC-SHA256 identity token carrying
// the given external subject and email.
//
// The portal never issues tokens on its own; this helper exists for the
// identity provider side of shared-key deployments and for tests.
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateIdentityToken("idp", "ext-42", "a@b.c", time.Hour, "secret")
func GenerateIdentityToken(issuer, externalID, email string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || externalID == "" || email == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating identity token")
	}

	now := time.Now()
	claims := &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   externalID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing identity token: %w", err)
	}

	return tokenString, nil
}

// ValidateIdentityToken validates the given token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Presence of the subject and email claims
//
// Example usage:
//
//	claims, err := utils.ValidateIdentityToken(rawToken, "secret", "idp")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateIdentityToken(tokenString, tokenSignKey, tokenIssuer string) (*models.IdentityClaims, error) {
	claims := &models.IdentityClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if _, _, err = claims.Identity(); err != nil {
		return nil, err
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

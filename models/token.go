package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrIncompleteIdentity is returned when a verified token lacks the subject
// or the email claim.
var ErrIncompleteIdentity = errors.New("identity token is missing subject or email")

// IdentityClaims is the claim set issued by the external identity provider.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, iss, exp)
// and adds the email address the portal uses for notifications and for
// admin promotion.
type IdentityClaims struct {
	jwt.RegisteredClaims

	// Email is the verified email address of the identity.
	Email string `json:"email"`
}

// Identity returns the external subject and email carried by the claims.
func (c *IdentityClaims) Identity() (externalID, email string, err error) {
	externalID, err = c.GetSubject()
	if err != nil {
		return "", "", fmt.Errorf("error extracting subject from token: %w", err)
	}

	if externalID == "" || c.Email == "" {
		return "", "", ErrIncompleteIdentity
	}

	return externalID, c.Email, nil
}

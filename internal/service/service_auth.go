package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/civilci/intake-portal/internal/config"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/internal/store"
	"github.com/civilci/intake-portal/internal/utils"
	"github.com/civilci/intake-portal/models"
)

// authService is the concrete implementation of AuthService.
// It verifies identity provider tokens and provisions the user they name.
type authService struct {
	// userRepository stores provisioned identities.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret shared with the identity provider.
	tokenSignKey string

	// tokenIssuer is the required "iss" claim.
	tokenIssuer string

	// adminEmails holds lower-cased addresses provisioned as admins.
	adminEmails map[string]struct{}

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			admins[email] = struct{}{}
		}
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		adminEmails:    admins,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Authenticate verifies the token signature, issuer and expiry, then
// upserts the user by external id.
//
// Returns ErrUnauthenticated (wrapped) for any token problem; repository
// failures are returned wrapped as is.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ValidateIdentityToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	externalID, email, err := claims.Identity()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	role := models.RoleClient
	if _, ok := a.adminEmails[strings.ToLower(email)]; ok {
		role = models.RoleAdmin
	}

	now := a.now().UTC()
	user, err := a.userRepository.UpsertUser(ctx, models.User{
		ID:         a.ids.Generate(),
		ExternalID: externalID,
		Email:      email,
		Role:       role,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		log.Err(err).Str("external_id", externalID).Msg("error provisioning user")
		return models.User{}, fmt.Errorf("provisioning user: %w", err)
	}

	return user, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUser provisions the user on first sight of its external id and
// returns the stored row, which keeps the id assigned on first insert.
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.User
	err = r.db.withRetry(ctx, func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, args...), &saved)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error upserting user")
		if v := r.db.violation(err); v != nil {
			return models.User{}, v
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = scanUser(r.db.QueryRowContext(ctx, query, args...), &user)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func scanUser(row rowScanner, user *models.User) error {
	var role string
	if err := row.Scan(&user.ID, &user.ExternalID, &user.Email, &role, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return err
	}

	parsed, err := models.ParseRole(role)
	if err != nil {
		return err
	}
	user.Role = parsed
	return nil
}

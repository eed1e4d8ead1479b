package usecase

import (
	"context"
	"errors"
	"strings"

	"go-healthcare-records/internal/access"
	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNoAuthenticatedUser = errors.New("user not found in context")
	ErrUserNotFound        = errors.New("user not found")
)

// currentActor resolves the authenticated user from the request context and
// loads its role tag from the database. The role is looked up per request
// rather than trusted from token claims because a profile can be created
// after login.
func currentActor(ctx context.Context, db *gorm.DB, userRepo repository.UserRepository) (access.Actor, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return access.Actor{}, ErrNoAuthenticatedUser
	}

	user, err := userRepo.FindByID(db, userID)
	if err != nil {
		return access.Actor{}, err
	}
	if user == nil {
		return access.Actor{}, ErrUserNotFound
	}

	return access.ActorFor(user), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

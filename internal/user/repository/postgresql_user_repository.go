// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/allisson/users/internal/database"
	apperrors "github.com/allisson/users/internal/errors"
	"github.com/allisson/users/internal/user/domain"
)

// userColumns is the canonical column list shared by all user queries.
const userColumns = `id, email, username, password, phone, cell, dob, pps, gender,
	name_title, name_first, name_last,
	picture_small, picture_medium, picture_large,
	location_street, location_city, location_state, location_zip,
	created_at, updated_at`

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Create inserts a new user and assigns the store-generated id.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	row := flattenUser(user)
	query := `INSERT INTO users (email, username, password, phone, cell, dob, pps, gender,
				name_title, name_first, name_last,
				picture_small, picture_medium, picture_large,
				location_street, location_city, location_state, location_zip,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		user.Email, user.Username, user.Password, user.Phone, user.Cell, row.dob,
		user.PPS, user.Gender,
		row.nameTitle, row.nameFirst, row.nameLast,
		row.pictureSmall, row.pictureMedium, row.pictureLarge,
		row.locationStreet, row.locationCity, row.locationState, row.locationZip,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return domain.NewUniqueConstraintError(field)
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by id.
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return user, nil
}

// GetByLogin retrieves a user by email or username.
func (r *PostgreSQLUserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR username = $1`

	user, err := scanUser(querier.QueryRowContext(ctx, query, login))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by login")
	}

	return user, nil
}

// List retrieves users ordered by id with an offset/limit window.
func (r *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Update persists every mutable column of the user row.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	user.UpdatedAt = time.Now().UTC()

	row := flattenUser(user)
	query := `UPDATE users
			  SET email = $1, username = $2, phone = $3, cell = $4, dob = $5, pps = $6, gender = $7,
				  name_title = $8, name_first = $9, name_last = $10,
				  picture_small = $11, picture_medium = $12, picture_large = $13,
				  location_street = $14, location_city = $15, location_state = $16, location_zip = $17,
				  updated_at = $18
			  WHERE id = $19`

	result, err := querier.ExecContext(ctx, query,
		user.Email, user.Username, user.Phone, user.Cell, row.dob, user.PPS, user.Gender,
		row.nameTitle, row.nameFirst, row.nameLast,
		row.pictureSmall, row.pictureMedium, row.pictureLarge,
		row.locationStreet, row.locationCity, row.locationState, row.locationZip,
		user.UpdatedAt, user.ID,
	)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return domain.NewUniqueConstraintError(field)
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by id, reporting whether a row existed.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete user")
	}

	return affected > 0, nil
}

// uniqueViolationField reports whether the error is a unique constraint
// violation and names the conflicting field when it can be identified.
// PostgreSQL: `duplicate key value violates unique constraint "users_email_key"`.
// MySQL: `Error 1062 ... Duplicate entry 'x' for key 'users.email'`.
func uniqueViolationField(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "duplicate key") &&
		!strings.Contains(msg, "unique constraint") &&
		!strings.Contains(msg, "duplicate entry") {
		return "", false
	}

	switch {
	case strings.Contains(msg, "username"):
		return "username", true
	case strings.Contains(msg, "email"):
		return "email", true
	default:
		return "", false
	}
}

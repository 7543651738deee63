package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/users/internal/database"
	apperrors "github.com/allisson/users/internal/errors"
	"github.com/allisson/users/internal/user/domain"
)

// MySQLUserRepository handles user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user and assigns the store-generated id.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
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
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		user.Email, user.Username, user.Password, user.Phone, user.Cell, row.dob,
		user.PPS, user.Gender,
		row.nameTitle, row.nameFirst, row.nameLast,
		row.pictureSmall, row.pictureMedium, row.pictureLarge,
		row.locationStreet, row.locationCity, row.locationState, row.locationZip,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return domain.NewUniqueConstraintError(field)
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read generated user id")
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by id.
func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

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
func (r *MySQLUserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? OR username = ?`

	user, err := scanUser(querier.QueryRowContext(ctx, query, login, login))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by login")
	}

	return user, nil
}

// List retrieves users ordered by id with an offset/limit window.
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT ? OFFSET ?`

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
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	user.UpdatedAt = time.Now().UTC()

	row := flattenUser(user)
	query := `UPDATE users
			  SET email = ?, username = ?, phone = ?, cell = ?, dob = ?, pps = ?, gender = ?,
				  name_title = ?, name_first = ?, name_last = ?,
				  picture_small = ?, picture_medium = ?, picture_large = ?,
				  location_street = ?, location_city = ?, location_state = ?, location_zip = ?,
				  updated_at = ?
			  WHERE id = ?`

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

	// MySQL reports zero affected rows for no-op updates, so absence cannot be
	// inferred here; the use case reads the row first inside the transaction.
	if _, err := result.RowsAffected(); err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}
	return nil
}

// Delete removes a user by id, reporting whether a row existed.
func (r *MySQLUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete user")
	}

	return affected > 0, nil
}

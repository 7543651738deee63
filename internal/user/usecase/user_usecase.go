package usecase

import (
	"context"
	"strings"

	"github.com/allisson/go-pwdhash"

	"github.com/allisson/users/internal/database"
	apperrors "github.com/allisson/users/internal/errors"
	"github.com/allisson/users/internal/user/domain"
)

// UserUseCase handles user-related business logic.
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       Repository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(txManager database.TxManager, userRepo Repository) (UseCase, error) {
	// Interactive policy balances hashing cost against request latency
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: hasher,
	}, nil
}

// List returns one page of users ordered by id. It probes one row beyond the
// requested window; when the store holds more, the next page window is set to
// {offset+limit, limit}. The limit is trusted to be within bounds, validation
// happens at the HTTP boundary.
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) (*domain.PageResult, error) {
	users, err := uc.userRepo.List(ctx, offset, limit+1)
	if err != nil {
		return nil, err
	}

	result := &domain.PageResult{Items: users}
	if len(users) > limit {
		result.Items = users[:limit]
		result.NextPage = &domain.Page{Offset: offset + limit, Limit: limit}
	}

	return result, nil
}

// Get retrieves a user by id.
func (uc *UserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// Create registers a new user. Email and username are lowercased and trimmed,
// the password is hashed with Argon2id, and the store assigns the id.
// Uniqueness is enforced by the store and surfaces as UniqueConstraintError.
func (uc *UserUseCase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Username: strings.ToLower(strings.TrimSpace(input.Username)),
		Password: hashedPassword,
		Phone:    input.Phone,
		Cell:     input.Cell,
		DOB:      input.DOB,
		PPS:      input.PPS,
		Gender:   input.Gender,
		Name:     input.Name,
		Picture:  input.Picture,
		Location: input.Location,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Update applies only the supplied fields to an existing user within a
// transaction, so the read-modify-write cannot interleave with a concurrent
// update. Nil fields are left unchanged; uniqueness of an updated email or
// username is re-checked by the store.
func (uc *UserUseCase) Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error) {
	var user *domain.User

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		applyUpdate(current, input)

		if err := uc.userRepo.Update(ctx, current); err != nil {
			return err
		}

		user = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user by id. Absence is a normal outcome reported as false.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.userRepo.Delete(ctx, id)
}

// VerifyLogin looks up a user by email or username and verifies the password
// against the stored hash. Both an unknown login and a mismatched password
// produce ErrInvalidLogin, so the response does not reveal which was wrong.
func (uc *UserUseCase) VerifyLogin(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := uc.userRepo.GetByLogin(ctx, strings.ToLower(strings.TrimSpace(login)))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrInvalidLogin
		}
		return nil, err
	}

	ok, err := uc.passwordHasher.Verify([]byte(password), user.Password)
	if err != nil || !ok {
		return nil, domain.ErrInvalidLogin
	}

	return user, nil
}

// applyUpdate copies the supplied fields of input onto user.
func applyUpdate(user *domain.User, input UpdateUserInput) {
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Username != nil {
		user.Username = strings.ToLower(strings.TrimSpace(*input.Username))
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Cell != nil {
		user.Cell = *input.Cell
	}
	if input.DOB != nil {
		user.DOB = input.DOB
	}
	if input.PPS != nil {
		user.PPS = *input.PPS
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.Name != nil {
		user.Name = input.Name
	}
	if input.Picture != nil {
		user.Picture = input.Picture
	}
	if input.Location != nil {
		user.Location = input.Location
	}
}

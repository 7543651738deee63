package usecase

import (
	"context"
	"time"

	"github.com/allisson/users/internal/metrics"
	"github.com/allisson/users/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record reports the outcome and duration of a single operation.
func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

// List records metrics for user list operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) (*domain.PageResult, error) {
	start := time.Now()
	result, err := u.next.List(ctx, offset, limit)
	u.record(ctx, "user_list", start, err)
	return result, err
}

// Get records metrics for user read operations.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, id int64) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, id)
	u.record(ctx, "user_get", start, err)
	return user, err
}

// Create records metrics for user creation operations.
func (u *userUseCaseWithMetrics) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	u.record(ctx, "user_create", start, err)
	return user, err
}

// Update records metrics for user update operations.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, id, input)
	u.record(ctx, "user_update", start, err)
	return user, err
}

// Delete records metrics for user delete operations.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	deleted, err := u.next.Delete(ctx, id)
	u.record(ctx, "user_delete", start, err)
	return deleted, err
}

// VerifyLogin records metrics for login verification operations.
func (u *userUseCaseWithMetrics) VerifyLogin(ctx context.Context, login, password string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.VerifyLogin(ctx, login, password)
	u.record(ctx, "user_verify_login", start, err)
	return user, err
}

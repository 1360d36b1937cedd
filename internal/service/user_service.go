package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eaglebank/bank-api/internal/access"
	"github.com/eaglebank/bank-api/internal/errs"
	"github.com/eaglebank/bank-api/internal/idgen"
	"github.com/eaglebank/bank-api/internal/models"
)

// maxCreateAttempts bounds the retries around a lost check-then-insert race:
// the store's uniqueness constraint can still fire after a clean existence
// check, and that is a collision to retry, not a hard failure.
const maxCreateAttempts = 5

// UserStore is the persistence surface the user flows depend on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// CreateUserParams carries the client-supplied profile fields. Any
// client-supplied identifier is ignored; the server always generates one.
type CreateUserParams struct {
	Name        string
	Email       string
	PhoneNumber string
	Address     *models.Address
}

// UserService orchestrates the user flows: identifier generation on create,
// owner-only access on read/patch/delete, and partial-update merging.
type UserService struct {
	store UserStore
	ids   *idgen.Generator
}

func NewUserService(store UserStore, ids *idgen.Generator) *UserService {
	return &UserService{store: store, ids: ids}
}

func (s *UserService) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	exists := func(id string) (bool, error) {
		return s.store.ExistsByID(ctx, id)
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		id, err := s.ids.UserID(exists)
		if err != nil {
			if errors.Is(err, idgen.ErrExhausted) {
				return nil, fmt.Errorf("%v: %w", err, errs.ErrConflict)
			}
			return nil, err
		}

		now := time.Now().UTC()
		user := &models.User{
			ID:          id,
			Name:        params.Name,
			Email:       params.Email,
			PhoneNumber: params.PhoneNumber,
			Address:     params.Address,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err = s.store.Create(ctx, user)
		if errors.Is(err, errs.ErrConflict) {
			// Lost the race between existence check and insert; regenerate.
			continue
		}
		if err != nil {
			return nil, err
		}
		return user, nil
	}
	return nil, fmt.Errorf("could not create user after %d attempts: %w", maxCreateAttempts, errs.ErrConflict)
}

func (s *UserService) GetUser(ctx context.Context, callerID, userID string) (*models.User, error) {
	if err := access.Check(callerID, userID); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, userID)
}

// PatchUser overwrites only the fields present in the patch and merges the
// address field by field. The identifier never changes.
func (s *UserService) PatchUser(ctx context.Context, callerID, userID string, patch models.UserPatch) (*models.User, error) {
	if err := access.Check(callerID, userID); err != nil {
		return nil, err
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, callerID, userID string) error {
	if err := access.Check(callerID, userID); err != nil {
		return err
	}
	return s.store.Delete(ctx, userID)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/eaglebank/bank-api/internal/access"
	"github.com/eaglebank/bank-api/internal/errs"
	"github.com/eaglebank/bank-api/internal/idgen"
	"github.com/eaglebank/bank-api/internal/models"
)

var userIDPattern = regexp.MustCompile(`^usr-[A-Za-z0-9]{5}$`)

// AccountStore is the persistence surface the account flows depend on.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	ExistsBySortCode(ctx context.Context, sortCode string) (bool, error)
}

// CreateAccountParams carries the client-supplied account fields.
type CreateAccountParams struct {
	Name        string
	AccountType string
}

// AccountService opens and reads accounts. An account is keyed by the
// owning user's identifier, so each identifier holds at most one account.
type AccountService struct {
	store    AccountStore
	ids      *idgen.Generator
	currency string
}

func NewAccountService(store AccountStore, ids *idgen.Generator, currency string) *AccountService {
	return &AccountService{store: store, ids: ids, currency: currency}
}

// CreateAccount validates the caller identity format, rejects a duplicate
// identifier, generates a fresh account number and sort code, and persists
// the account with a zero balance in the configured currency.
func (s *AccountService) CreateAccount(ctx context.Context, userID string, params CreateAccountParams) (*models.Account, error) {
	if !userIDPattern.MatchString(userID) {
		return nil, fmt.Errorf("user-id header is required and must match pattern 'usr-xxxxx': %w", errs.ErrInvalid)
	}

	taken, err := s.store.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("an account with the provided user-id already exists: %w", errs.ErrConflict)
	}

	if !models.ValidAccountType(params.AccountType) {
		return nil, fmt.Errorf("accountType is required and must be one of 'personal' or 'business': %w", errs.ErrInvalid)
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		accountNumber, err := s.ids.AccountNumber(func(n string) (bool, error) {
			return s.store.ExistsByAccountNumber(ctx, n)
		})
		if err != nil {
			return nil, asConflictIfExhausted(err)
		}

		sortCode, err := s.ids.SortCode(func(c string) (bool, error) {
			return s.store.ExistsBySortCode(ctx, c)
		})
		if err != nil {
			return nil, asConflictIfExhausted(err)
		}

		now := time.Now().UTC()
		account := &models.Account{
			ID:            userID,
			AccountNumber: accountNumber,
			SortCode:      sortCode,
			Name:          params.Name,
			AccountType:   params.AccountType,
			Balance:       0,
			Currency:      s.currency,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		err = s.store.Create(ctx, account)
		if errors.Is(err, errs.ErrConflict) {
			// A concurrent insert won one of the unique constraints between
			// our existence checks and this insert; pick fresh candidates.
			continue
		}
		if err != nil {
			return nil, err
		}
		return account, nil
	}
	return nil, fmt.Errorf("could not create account after %d attempts: %w", maxCreateAttempts, errs.ErrConflict)
}

func (s *AccountService) GetAccount(ctx context.Context, callerID, accountID string) (*models.Account, error) {
	if err := access.Check(callerID, accountID); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, accountID)
}

func asConflictIfExhausted(err error) error {
	if errors.Is(err, idgen.ErrExhausted) {
		return fmt.Errorf("%v: %w", err, errs.ErrConflict)
	}
	return err
}

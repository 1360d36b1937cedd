package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/bank-api/internal/cache"
	"github.com/eaglebank/bank-api/internal/errs"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/redis/go-redis/v9"
)

const accountViewKeyPrefix = "account:view:"

// AccountRepository persists accounts in PostgreSQL, keyed by the owning
// user's identifier, with a Redis read model in front of the lookup path.
type AccountRepository struct {
	db    *sql.DB
	views *cache.ViewCache[models.Account]
}

func NewAccountRepository(db *sql.DB, redisClient *redis.Client) *AccountRepository {
	r := &AccountRepository{db: db}
	if redisClient != nil {
		r.views = cache.NewViewCache[models.Account](redisClient, accountViewKeyPrefix, 0)
	}
	return r
}

// Create inserts the account row. A unique violation on any of the id,
// account_number or sort_code constraints is reported as errs.ErrConflict;
// the caller decides whether that is terminal (duplicate id) or a retryable
// generation collision.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, account_number, sort_code, name, account_type, balance, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.AccountNumber, account.SortCode, account.Name,
		account.AccountType, account.Balance, account.Currency,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account insert collided on a unique constraint: %w", errs.ErrConflict)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	r.views.Set(ctx, account.ID, account)
	return nil
}

// GetByID returns the account from Redis first, then PostgreSQL, warming
// the cache on a database hit.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if account, ok := r.views.Get(ctx, id); ok {
		return account, nil
	}

	query := `
		SELECT id, account_number, sort_code, name, account_type, balance, currency, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.AccountNumber, &account.SortCode, &account.Name,
		&account.AccountType, &account.Balance, &account.Currency,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	r.views.Set(ctx, account.ID, &account)
	return &account, nil
}

func (r *AccountRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, id)
}

func (r *AccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`, accountNumber)
}

func (r *AccountRepository) ExistsBySortCode(ctx context.Context, sortCode string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE sort_code = $1)`, sortCode)
}

func (r *AccountRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

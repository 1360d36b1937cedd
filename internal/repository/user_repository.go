package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/bank-api/internal/cache"
	"github.com/eaglebank/bank-api/internal/errs"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const userViewKeyPrefix = "user:view:"

// UserRepository persists users in PostgreSQL and keeps a Redis read model
// in front of the lookup path. Pass a nil Redis client to run uncached.
type UserRepository struct {
	db    *sql.DB
	views *cache.ViewCache[models.User]
}

func NewUserRepository(db *sql.DB, redisClient *redis.Client) *UserRepository {
	r := &UserRepository{db: db}
	if redisClient != nil {
		r.views = cache.NewViewCache[models.User](redisClient, userViewKeyPrefix, 0)
	}
	return r
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, phone_number,
			address_line1, address_line2, address_line3, address_town, address_county, address_postcode,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	line1, line2, line3, town, county, postcode := addressColumns(user.Address)
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PhoneNumber,
		line1, line2, line3, town, county, postcode,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user id %s already exists: %w", user.ID, errs.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.views.Set(ctx, user.ID, user)
	return nil
}

// GetByID returns the user from Redis first, then PostgreSQL, warming the
// cache on a database hit.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if user, ok := r.views.Get(ctx, id); ok {
		return user, nil
	}

	query := `
		SELECT id, name, email, phone_number,
			   address_line1, address_line2, address_line3, address_town, address_county, address_postcode,
			   created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user models.User
	var line1, line2, line3, town, county, postcode sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PhoneNumber,
		&line1, &line2, &line3, &town, &county, &postcode,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.Address = scanAddress(line1, line2, line3, town, county, postcode)

	r.views.Set(ctx, user.ID, &user)
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone_number = $4,
			address_line1 = $5, address_line2 = $6, address_line3 = $7,
			address_town = $8, address_county = $9, address_postcode = $10,
			updated_at = $11
		WHERE id = $1
	`
	line1, line2, line3, town, county, postcode := addressColumns(user.Address)
	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PhoneNumber,
		line1, line2, line3, town, county, postcode,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", user.ID, errs.ErrNotFound)
	}
	r.views.Set(ctx, user.ID, user)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", id, errs.ErrNotFound)
	}
	r.views.Delete(ctx, id)
	return nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func addressColumns(a *models.Address) (line1, line2, line3, town, county, postcode sql.NullString) {
	if a == nil {
		return
	}
	return nullString(a.Line1), nullString(a.Line2), nullString(a.Line3),
		nullString(a.Town), nullString(a.County), nullString(a.Postcode)
}

func scanAddress(line1, line2, line3, town, county, postcode sql.NullString) *models.Address {
	if !line1.Valid && !line2.Valid && !line3.Valid && !town.Valid && !county.Valid && !postcode.Valid {
		return nil
	}
	return &models.Address{
		Line1:    line1.String,
		Line2:    line2.String,
		Line3:    line3.String,
		Town:     town.String,
		County:   county.String,
		Postcode: postcode.String,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

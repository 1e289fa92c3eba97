// Package repository provides data access layer for accounts.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
	authModel "github.com/pixelpirates/leaderboard/internal/auth/model"
	"github.com/pixelpirates/leaderboard/internal/database/dberr"
)

// Repository defines the interface for account data access operations.
type Repository interface {
	// Create inserts a new account.
	Create(ctx context.Context, account *authModel.Account) error

	// GetByID finds an account by id.
	GetByID(ctx context.Context, id string) (*authModel.Account, error)

	// GetByEmail finds an account by email, case-insensitively.
	GetByEmail(ctx context.Context, email string) (*authModel.Account, error)

	// CountByRole counts accounts with the given role.
	CountByRole(ctx context.Context, role access.Role) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new account repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new account.
func (r *repository) Create(ctx context.Context, account *authModel.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return authModel.ErrEmailExists
		}
		return err
	}

	r.logger.Debugw("account created", "account_id", account.ID, "role", account.Role)
	return nil
}

// GetByID finds an account by id.
func (r *repository) GetByID(ctx context.Context, id string) (*authModel.Account, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByEmail finds an account by email, case-insensitively.
func (r *repository) GetByEmail(ctx context.Context, email string) (*authModel.Account, error) {
	return r.first(ctx, "email = ?", authModel.NormalizeEmail(email))
}

func (r *repository) first(ctx context.Context, query string, arg string) (*authModel.Account, error) {
	var account authModel.Account
	err := r.db.WithContext(ctx).Where(query, arg).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// CountByRole counts accounts with the given role.
func (r *repository) CountByRole(ctx context.Context, role access.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&authModel.Account{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}

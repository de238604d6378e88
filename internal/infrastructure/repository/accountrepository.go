package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helioscale/internal/domain/account"
	"helioscale/internal/infrastructure/persistence/mappers"
	"helioscale/internal/infrastructure/persistence/models"
	"helioscale/internal/shared/db"
	apperrors "helioscale/internal/shared/errors"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(gdb *gorm.DB) *AccountRepository {
	return &AccountRepository{
		db:     gdb,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Save(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("email is already registered")
		}
		return fmt.Errorf("failed to save account: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists the flag columns explicitly; gorm skips zero-value
	// booleans on struct updates otherwise.
	result := tx.
		Model(&models.AccountModel{}).
		Where("id = ?", model.ID).
		Select("email", "name", "phone", "company", "password_hash",
			"is_admin", "is_employee", "is_active", "is_verified", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.AccountModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count accounts: %w", err)
	}

	return count > 0, nil
}

func (r *AccountRepository) List(ctx context.Context, filter account.Filter) ([]*account.Account, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AccountModel{})

	if filter.IsEmployee != nil {
		query = query.Where("is_employee = ?", *filter.IsEmployee)
	}
	if filter.IsAdmin != nil {
		query = query.Where("is_admin = ?", *filter.IsAdmin)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var rows []models.AccountModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]*account.Account, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}

	return accounts, total, nil
}

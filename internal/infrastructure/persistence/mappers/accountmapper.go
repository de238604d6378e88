package mappers

import (
	"fmt"

	"helioscale/internal/domain/account"
	vo "helioscale/internal/domain/account/valueobjects"
	"helioscale/internal/infrastructure/persistence/models"
)

// AccountMapper handles the conversion between Account domain entities
// and persistence models.
type AccountMapper interface {
	ToModel(a *account.Account) *models.AccountModel
	ToDomain(model *models.AccountModel) (*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToModel(a *account.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:           a.ID(),
		Email:        a.Email().String(),
		Name:         a.Name(),
		Phone:        a.Phone(),
		Company:      a.Company(),
		PasswordHash: a.PasswordHash(),
		IsAdmin:      a.IsAdmin(),
		IsEmployee:   a.IsEmployee(),
		IsActive:     a.IsActive(),
		IsVerified:   a.IsVerified(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func (m *AccountMapperImpl) ToDomain(model *models.AccountModel) (*account.Account, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in account row (id=%d): %w", model.ID, err)
	}

	return account.ReconstructAccount(
		model.ID,
		email,
		model.Name,
		model.Phone,
		model.Company,
		model.PasswordHash,
		model.IsAdmin,
		model.IsEmployee,
		model.IsActive,
		model.IsVerified,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

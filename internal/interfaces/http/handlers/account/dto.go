package account

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helioscale/internal/application/account/usecases"
	"helioscale/internal/domain/account"
)

type CreateEmployeeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Password string `json:"password" binding:"required"`
}

func (r *CreateEmployeeRequest) ToCommand() usecases.CreateEmployeeCommand {
	return usecases.CreateEmployeeCommand{
		Email:    r.Email,
		Name:     r.Name,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

type SetVerifiedRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Company string `json:"company" binding:"omitempty,max=100"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type ListAccountsRequest struct {
	IsEmployee *bool
	IsAdmin    *bool
	IsActive   *bool
	IsVerified *bool
	Page       int
	PageSize   int
}

func parseListAccountsRequest(c *gin.Context) *ListAccountsRequest {
	req := &ListAccountsRequest{Page: 1, PageSize: 20}

	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		req.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", "20")); err == nil && v > 0 && v <= 100 {
		req.PageSize = v
	}

	req.IsEmployee = parseBoolQuery(c, "is_employee")
	req.IsAdmin = parseBoolQuery(c, "is_admin")
	req.IsActive = parseBoolQuery(c, "is_active")
	req.IsVerified = parseBoolQuery(c, "is_verified")
	return req
}

func parseBoolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

type AccountResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	IsEmployee bool      `json:"is_employee"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAccountResponse(acc *account.Account) AccountResponse {
	return AccountResponse{
		ID:         acc.ID(),
		Email:      acc.Email().String(),
		Name:       acc.Name(),
		Phone:      acc.Phone(),
		Company:    acc.Company(),
		IsAdmin:    acc.IsAdmin(),
		IsEmployee: acc.IsEmployee(),
		IsActive:   acc.IsActive(),
		IsVerified: acc.IsVerified(),
		CreatedAt:  acc.CreatedAt(),
	}
}

func NewAccountResponseList(accounts []*account.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, NewAccountResponse(acc))
	}
	return responses
}

package account

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helioscale/internal/application/account/usecases"
	"helioscale/internal/interfaces/http/middleware"
	"helioscale/internal/shared/utils"
)

type CreateEmployeeExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateEmployeeCommand) (*usecases.CreateEmployeeResult, error)
}

type ListAccountsExecutor interface {
	Execute(ctx context.Context, cmd usecases.ListAccountsCommand) (*usecases.ListAccountsResult, error)
}

type SetVerifiedExecutor interface {
	Execute(ctx context.Context, cmd usecases.SetVerifiedCommand) (*usecases.SetVerifiedResult, error)
}

type DeactivateAccountExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeactivateAccountCommand) (*usecases.DeactivateAccountResult, error)
}

type GetAccountExecutor interface {
	Execute(ctx context.Context, cmd usecases.GetAccountCommand) (*usecases.GetAccountResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*usecases.UpdateProfileResult, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error
}

type Handler struct {
	createEmployeeUC CreateEmployeeExecutor
	listAccountsUC   ListAccountsExecutor
	setVerifiedUC    SetVerifiedExecutor
	deactivateUC     DeactivateAccountExecutor
	getAccountUC     GetAccountExecutor
	updateProfileUC  UpdateProfileExecutor
	changePasswordUC ChangePasswordExecutor
}

func NewHandler(
	createEmployeeUC CreateEmployeeExecutor,
	listAccountsUC ListAccountsExecutor,
	setVerifiedUC SetVerifiedExecutor,
	deactivateUC DeactivateAccountExecutor,
	getAccountUC GetAccountExecutor,
	updateProfileUC UpdateProfileExecutor,
	changePasswordUC ChangePasswordExecutor,
) *Handler {
	return &Handler{
		createEmployeeUC: createEmployeeUC,
		listAccountsUC:   listAccountsUC,
		setVerifiedUC:    setVerifiedUC,
		deactivateUC:     deactivateUC,
		getAccountUC:     getAccountUC,
		updateProfileUC:  updateProfileUC,
		changePasswordUC: changePasswordUC,
	}
}

// CreateEmployee handles POST /admin/employees
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createEmployeeUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewAccountResponse(result.Account), "Employee account created successfully")
}

// ListAccounts handles GET /admin/accounts
func (h *Handler) ListAccounts(c *gin.Context) {
	req := parseListAccountsRequest(c)

	result, err := h.listAccountsUC.Execute(c.Request.Context(), usecases.ListAccountsCommand{
		IsEmployee: req.IsEmployee,
		IsAdmin:    req.IsAdmin,
		IsActive:   req.IsActive,
		IsVerified: req.IsVerified,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewAccountResponseList(result.Accounts), result.Total, req.Page, req.PageSize)
}

// SetVerified handles PATCH /admin/accounts/:id/verified
func (h *Handler) SetVerified(c *gin.Context) {
	accountID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.setVerifiedUC.Execute(c.Request.Context(), usecases.SetVerifiedCommand{
		AccountID: accountID,
		Verified:  *req.Verified,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account verification updated", NewAccountResponse(result.Account))
}

// Deactivate handles POST /admin/accounts/:id/deactivate
func (h *Handler) Deactivate(c *gin.Context) {
	accountID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.deactivateUC.Execute(c.Request.Context(), usecases.DeactivateAccountCommand{
		AccountID: accountID,
		ActorID:   claims.AccountID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account deactivated", NewAccountResponse(result.Account))
}

// GetProfile handles GET /profile
func (h *Handler) GetProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.getAccountUC.Execute(c.Request.Context(), usecases.GetAccountCommand{
		AccountID: claims.AccountID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewAccountResponse(result.Account))
}

// UpdateProfile handles PUT /profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		AccountID: claims.AccountID,
		Name:      req.Name,
		Phone:     req.Phone,
		Company:   req.Company,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", NewAccountResponse(result.Account))
}

// ChangePassword handles POST /profile/password
func (h *Handler) ChangePassword(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		AccountID:   claims.AccountID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

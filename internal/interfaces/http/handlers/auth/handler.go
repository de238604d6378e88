package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helioscale/internal/application/auth/usecases"
	"helioscale/internal/shared/logger"
	"helioscale/internal/shared/utils"
)

type SignupExecutor interface {
	Execute(ctx context.Context, cmd usecases.SignupCommand) (*usecases.SignupResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type PromoteExecutor interface {
	Execute(ctx context.Context, cmd usecases.PromoteAccountCommand) (*usecases.PromoteAccountResult, error)
}

type Handler struct {
	signupUC  SignupExecutor
	loginUC   LoginExecutor
	promoteUC PromoteExecutor
	logger    logger.Interface
}

func NewHandler(signupUC SignupExecutor, loginUC LoginExecutor, promoteUC PromoteExecutor) *Handler {
	return &Handler{
		signupUC:  signupUC,
		loginUC:   loginUC,
		promoteUC: promoteUC,
		logger:    logger.NewLogger().Named("auth-handler"),
	}
}

// Signup handles POST /auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewAccountResponse(result.Account), "Account created successfully")
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		Account:   NewAccountResponse(result.Account),
	})
}

// Promote handles POST /auth/promote
func (h *Handler) Promote(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.promoteUC.Execute(c.Request.Context(), usecases.PromoteAccountCommand{
		Email:  req.Email,
		Secret: req.Secret,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account promoted successfully", NewAccountResponse(result.Account))
}

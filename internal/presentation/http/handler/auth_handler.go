package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alnubras/pos-api/internal/application/service"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/request"
	"github.com/alnubras/pos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles cashier sign-in
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Code and PIN are required")
		return
	}

	out, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Code: req.Code,
		PIN:  req.PIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Signed in", gin.H{
		"cashier":      out.Cashier,
		"access_token": out.AccessToken,
	})
}

// Register handles creating a new terminal operator
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterCashierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name, code and PIN are required")
		return
	}

	cashier, err := h.authService.RegisterCashier(c.Request.Context(), &service.RegisterCashierInput{
		Name: req.Name,
		Code: req.Code,
		PIN:  req.PIN,
		Role: req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cashier created", cashier)
}

// Me returns the authenticated cashier
func (h *AuthHandler) Me(c *gin.Context) {
	cashierID := GetCashierID(c)
	if cashierID == 0 {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	cashier, err := h.authService.GetCashier(c.Request.Context(), cashierID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashier retrieved", cashier)
}

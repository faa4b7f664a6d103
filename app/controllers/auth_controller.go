package controllers

import (
	"errors"
	"net/http"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/repositories"
	"github.com/ibomiri431-oss/metra-feer/app/services"
	"github.com/ibomiri431-oss/metra-feer/pkg/ctx"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type credentialsInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// identity is the public shape of an account. The client stores it and
// sends the id back on later requests; there is no session.
func identity(u *models.User) map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"role":     u.Role,
	}
}

// Login handles POST /api/login.
func (c *AuthController) Login(cx *ctx.Context) {
	var input credentialsInput
	if !cx.BindJSON(&input) {
		return
	}

	user, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			cx.Error(http.StatusUnauthorized, "Hatalı kullanıcı adı veya şifre")
			return
		}
		logger.WithCtx(cx.Context()).Error("login failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(identity(user))
}

// Register handles POST /api/register.
func (c *AuthController) Register(cx *ctx.Context) {
	var input credentialsInput
	if !cx.BindJSON(&input) {
		return
	}

	user, err := c.service.Register(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			cx.Error(http.StatusBadRequest, "Kullanıcı adı zaten kullanımda")
			return
		}
		logger.WithCtx(cx.Context()).Error("register failed", "error", err)
		cx.Error(http.StatusInternalServerError, "Sunucu hatası")
		return
	}
	cx.OK(identity(user))
}

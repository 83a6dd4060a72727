package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-blog/internal/core/auth"
	"go-gin-blog/internal/service"
	"go-gin-blog/internal/transport/http/router"
)

type AuthHandler struct {
	users *service.UserService
	jwter *auth.JWTer
}

func NewAuthHandler(users *service.UserService, jwter *auth.JWTer) *AuthHandler {
	return &AuthHandler{users: users, jwter: jwter}
}

func (h *AuthHandler) Priority() int { return 10 }

func (h *AuthHandler) MountAPI(public, authed *gin.RouterGroup) {
	ezPublic := router.NewEZ(public)
	ezAuth := router.NewEZ(authed)

	type credIn struct {
		Name     string `json:"name"     form:"name"     binding:"omitempty,max=64"`
		Email    string `json:"email"    form:"email"    binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	type tokenOut struct {
		Token string `json:"token"`
		User  gin.H  `json:"user"`
	}

	router.RegisterAction(ezPublic, router.Action[credIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: router.BindForm,
		Handler: func(c *gin.Context, in *credIn) (tokenOut, error) {
			u, err := h.users.Register(c.Request.Context(), in.Name, in.Email, in.Password)
			if err != nil {
				return tokenOut{}, mapServiceErr(err)
			}
			tok, err := h.jwter.Issue(u.ID, u.Role)
			if err != nil {
				return tokenOut{}, router.Internal("issue token failed", err)
			}
			return tokenOut{
				Token: tok,
				User:  gin.H{"id": u.ID, "email": u.Email, "name": u.Name, "role": u.Role},
			}, nil
		},
	})

	router.RegisterAction(ezPublic, router.Action[credIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: router.BindForm,
		Handler: func(c *gin.Context, in *credIn) (tokenOut, error) {
			u, err := h.users.Login(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return tokenOut{}, mapServiceErr(err)
			}
			tok, err := h.jwter.Issue(u.ID, u.Role)
			if err != nil {
				return tokenOut{}, router.Internal("issue token failed", err)
			}
			return tokenOut{
				Token: tok,
				User:  gin.H{"id": u.ID, "email": u.Email, "name": u.Name, "role": u.Role},
			}, nil
		},
	})

	type meOut struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}
	router.RegisterAction(ezAuth, router.Action[struct{}, meOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: router.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (meOut, error) {
			u, err := h.users.Get(c.Request.Context(), c.GetString("userId"))
			if err != nil {
				return meOut{}, router.Internal("db error", err)
			}
			if u == nil {
				return meOut{}, router.NotFound("user not found")
			}
			return meOut{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}, nil
		},
	})
}

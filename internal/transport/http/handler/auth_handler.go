package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/domain"
	"storefront-api/internal/feature/auth"
	resp "storefront-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
	log *zap.Logger
}

func NewAuthHandler(svc *auth.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type registerReq struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	Contact              string `json:"contact" binding:"omitempty,max=20"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}

	u, err := h.svc.Register(auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Contact:  req.Contact,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			resp.ValidationFailed(c, resp.FieldError("email", "The email has already been taken."))
			return
		}
		h.log.Error("register", zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful", "user": u})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationFailed(c, resp.FromBinding(err))
		return
	}

	res, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			resp.Message(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.Error("login", zap.Error(err))
		resp.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	msg := "Login successful, redirecting to the front store"
	if res.User.Role == domain.RoleAdmin {
		msg = "Login successful, redirecting to admin dashboard"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  msg,
		"user":     res.User,
		"redirect": res.Redirect,
		"token":    res.Token,
	})
}

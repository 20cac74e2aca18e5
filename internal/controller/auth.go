package controller

import (
	"net/http"

	"marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type authRoutesHandler struct {
	authService service.Auth
	validate    *validator.Validate
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *authRoutesHandler {
	h := &authRoutesHandler{authService: services.Auth, validate: v}

	outer.POST("/auth/register", h.Register)
	outer.POST("/auth/login", h.Login)

	return h
}

type registerInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"required,oneof=BUYER SELLER"`
}

// /auth/register
func (h *authRoutesHandler) Register(c echo.Context) error {
	var input registerInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	err := h.authService.Register(c.Request().Context(), &service.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err == nil {
		return c.JSON(http.StatusCreated, messageResponse{"User registered successfully"})
	}

	switch err {
	case service.ErrEmailTaken:
		return c.JSON(http.StatusConflict, errorResponse{"Email already exists"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Registration failed"})
	}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// /auth/login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)})
	}

	session, err := h.authService.Login(c.Request().Context(), input.Email, input.Password)
	if err == nil {
		return c.JSON(http.StatusOK, session)
	}

	switch err {
	case service.ErrInvalidCredentials:
		return c.JSON(http.StatusUnauthorized, errorResponse{"Invalid credentials"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Login failed"})
	}
}

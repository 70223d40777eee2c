// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"acceso-portal/internal/notifier"
	"acceso-portal/internal/services"
	"acceso-portal/internal/transport/httpdto"
	portal_errors "acceso-portal/pkg/errors"
)

// Fixed client-facing messages. Internal error detail never crosses the
// wire.
const (
	MsgMissingFields      = "Faltan datos"
	MsgDuplicateEmail     = "Este email ya está registrado"
	MsgInvalidCredentials = "Credenciales incorrectas"
	MsgLoginOK            = "Inicio de sesión exitoso"
	MsgRegisterOK         = "Registro exitoso"
	MsgRegisterFailed     = "Error al procesar el registro"
	MsgInternal           = "Error interno"
)

// AuthHandler handles the form submission endpoints.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(MsgMissingFields))
		return
	}

	info, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Meta:     clientMeta(c),
	})
	if err != nil {
		c.JSON(services.HTTPStatus(err), httpdto.NewErrorResponse(loginErrorMessage(err)))
		return
	}

	dto := toUserDTO(info)
	c.JSON(http.StatusOK, httpdto.LoginResponse{
		Success: true,
		Message: MsgLoginOK,
		User:    &dto,
	})
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(MsgMissingFields))
		return
	}

	id, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		RegistrationCode: req.RegistrationCode,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Password:         req.Password,
		PhoneCode:        req.PhoneCode,
		Phone:            req.Phone,
		Meta:             clientMeta(c),
	})
	if err != nil {
		c.JSON(services.HTTPStatus(err), httpdto.NewErrorResponse(registerErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, httpdto.RegisterResponse{
		Success: true,
		Message: MsgRegisterOK,
		UserID:  id,
	})
}

// Users handles GET /api/users.
func (h *AuthHandler) Users(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(MsgInternal))
		return
	}

	dtos := make([]httpdto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}

	c.JSON(http.StatusOK, httpdto.UsersResponse{
		Total: int64(len(dtos)),
		Users: dtos,
	})
}

func clientMeta(c *gin.Context) notifier.ClientMeta {
	ua := c.Request.UserAgent()
	if ua == "" {
		ua = "Desconocido"
	}
	return notifier.ClientMeta{
		IP:        c.ClientIP(),
		UserAgent: ua,
		At:        time.Now(),
	}
}

func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, portal_errors.ErrInvalidInput):
		return MsgMissingFields
	case errors.Is(err, portal_errors.ErrUnauthorized):
		return MsgInvalidCredentials
	default:
		return MsgInternal
	}
}

func registerErrorMessage(err error) string {
	switch {
	case errors.Is(err, portal_errors.ErrInvalidInput):
		return MsgMissingFields
	case errors.Is(err, portal_errors.ErrAlreadyExists):
		return MsgDuplicateEmail
	default:
		return MsgRegisterFailed
	}
}

func toUserDTO(u services.UserInfo) httpdto.UserDTO {
	return httpdto.UserDTO{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		PhoneCode:        u.PhoneCode,
		Phone:            u.Phone,
		RegistrationCode: u.RegistrationCode,
		CreatedAt:        u.CreatedAt.Format(time.RFC3339),
	}
}

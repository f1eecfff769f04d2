package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionIssuer
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionIssuer) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	input, err := validation.BuildRegisterInput(req)
	if err != nil {
		middleware.Abort(c, http.StatusBadRequest, validation.MsgKey(err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			middleware.Abort(c, http.StatusBadRequest, apierrors.MsgUserExists)
		case errors.Is(err, domain.ErrInvalidInput):
			middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		default:
			zap.L().Error("failed to register user", zap.Error(err))
			middleware.Abort(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		}
		return
	}

	h.respondWithSession(c, http.StatusCreated, apierrors.MsgRegisterSuccess, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	credentials, err := validation.BuildCredentials(req)
	if err != nil {
		middleware.Abort(c, http.StatusBadRequest, validation.MsgKey(err))
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			middleware.Abort(c, http.StatusUnauthorized, apierrors.MsgInvalidCredentials)
		case errors.Is(err, domain.ErrInvalidInput):
			middleware.Abort(c, http.StatusBadRequest, apierrors.MsgMissingCredentials)
		default:
			zap.L().Error("failed to authenticate user", zap.Error(err))
			middleware.Abort(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		}
		return
	}

	h.respondWithSession(c, http.StatusOK, apierrors.MsgLoginSuccess, user)
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, msgKey string, user domain.User) {
	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		zap.L().Error("failed to issue session", zap.Uint64("user_id", user.ID), zap.Error(err))
		middleware.Abort(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	c.JSON(status, dto.AuthResponse{
		Message: apierrors.GetTransErrorMsg(msgKey, middleware.GetLang(c)),
		User:    mapper.ToUserItem(user),
		Token:   token,
	})
}

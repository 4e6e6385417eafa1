package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/adapter/http/mapper"
	"tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
	"tasktrack/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegister, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegister, lang),
		)
		return
	}

	user, token, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		Name:     name,
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgUserExists, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		User:    mapper.ToUserItem(user),
		Token:   token,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidLogin, lang),
		)
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password answer identically.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log user in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    mapper.ToUserItem(user),
		Token:   token,
	})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	items := mapper.ToUserItems(users)
	c.JSON(http.StatusOK, dto.UserListResponse{Users: items, Count: len(items)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := parseIDParam(c, lang, apierrors.MsgUserNotFound)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{User: mapper.ToUserItem(user)})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := parseIDParam(c, lang, apierrors.MsgUserNotFound)
	if !ok {
		return
	}
	if !h.requireSelf(c, userID, lang) {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegister, lang),
		)
		return
	}

	// Empty strings behave like omitted fields: the stored value wins.
	user, err := h.userService.UpdateUser(c.Request.Context(), userID, domain.UpdateUserInput{
		Name:     trimmedOrNil(req.Name),
		Email:    trimmedOrNil(req.Email),
		Password: presentOrNil(req.Password),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		case errors.Is(err, domain.ErrUserExists):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgUserExists, lang),
			)
		default:
			zap.L().Error("failed to update user", zap.Uint64("user_id", userID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateUser, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		Message: "User updated successfully",
		User:    mapper.ToUserItem(user),
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := parseIDParam(c, lang, apierrors.MsgUserNotFound)
	if !ok {
		return
	}
	if !h.requireSelf(c, userID, lang) {
		return
	}

	user, err := h.userService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete user", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		Message: "User deleted successfully",
		User:    mapper.ToUserItem(user),
	})
}

// requireSelf enforces that account mutations only target the caller's own
// account. Unlike task/category scoping this is a 403, not a 404: the target
// id is the caller's own input, there is nothing to hide.
func (h *UserHandler) requireSelf(c *gin.Context, userID uint64, lang string) bool {
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity.UserID != userID {
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgUserForbidden, lang),
		)
		return false
	}
	return true
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// presentOrNil keeps the value verbatim; passwords are never trimmed.
func presentOrNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}

// parseIDParam treats an unparsable :id like a missing row: no id that fails
// to parse can ever name one.
func parseIDParam(c *gin.Context, lang, notFoundKey string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, notFoundKey, lang),
		)
		return 0, false
	}
	return id, true
}

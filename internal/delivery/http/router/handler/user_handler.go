// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	httpmiddleware "orla/internal/delivery/http/middleware"
	"orla/internal/delivery/http/response"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc        usecase.UserUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:        uc,
		profileUC: profileUC,
		logger:    logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the user logout request.
func (h *UserHandler) Logout(c echo.Context) error {
	var input *usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me resolves the authenticated identity to a display profile. The endpoint
// never fails for an authenticated caller: when the profile row is missing or
// the lookup errors, a synthesized profile is returned with a notice.
func (h *UserHandler) Me(c echo.Context) error {
	userID, email, err := identityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	resolved := h.profileUC.ResolveProfile(c.Request().Context(), &usecase.ResolveProfileInput{
		UserID: userID,
		Email:  email,
	})

	if resolved.Synthesized {
		return response.SuccessWithNotice(c, http.StatusOK, resolved.Profile, "Profile resolved", resolved.Notice)
	}

	return response.Success(c, http.StatusOK, resolved.Profile, "Profile resolved")
}

// UpdateMe saves the caller's display profile. The first save after a
// synthesized /me response creates the missing profile row.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, email, err := identityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.UserID = userID
	input.Email = email

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// identityFromContext reads the identity set by the auth middleware.
func identityFromContext(c echo.Context) (uuid.UUID, string, error) {
	userID, ok := c.Get(httpmiddleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", domainerrors.ErrInvalidToken.WithDetails("user ID missing from token")
	}
	email, _ := c.Get(httpmiddleware.ContextKeyEmail).(string)

	return userID, email, nil
}

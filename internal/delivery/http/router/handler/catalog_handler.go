package handler

import (
	"log/slog"
	"net/http"

	"orla/internal/delivery/http/response"
	"orla/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the selector collections of the admin form.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOwners returns every property owner ordered by name.
func (h *CatalogHandler) ListOwners(c echo.Context) error {
	owners, err := h.uc.ListOwners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owners, "Owners retrieved successfully")
}

// CreateOwner registers a new property owner.
func (h *CatalogHandler) CreateOwner(c echo.Context) error {
	var input *usecase.CreateOwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	owner, err := h.uc.CreateOwner(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, owner, "Owner created successfully")
}

// ListBrokers returns every user profile ordered by name, for the lister selector.
func (h *CatalogHandler) ListBrokers(c echo.Context) error {
	brokers, err := h.uc.ListBrokers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brokers, "Brokers retrieved successfully")
}

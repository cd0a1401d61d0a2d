package handler

import (
	"log/slog"
	"net/http"

	"orla/internal/delivery/http/response"
	domainerrors "orla/internal/domain/errors"
	"orla/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for property listing handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the listing creation request. The body is the raw form
// state: every field a string, mapped and validated by the use case.
func (h *ListingHandler) Create(c echo.Context) error {
	var form usecase.ListingForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	userID, _, err := identityFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), &usecase.CreateListingInput{
		Form:      form,
		CreatedBy: userID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Listing created successfully")
}

// List handles the listing collection request. Filtering happens in memory
// over the full set; q is the free-text needle and status the enum filter.
func (h *ListingHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context(), &usecase.ListListingsInput{
		FreeText: c.QueryParam("q"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Items, "Listings retrieved successfully")
}

// Get handles the single listing request.
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("listing id must be a UUID")
	}

	view, err := h.uc.Get(c.Request().Context(), &usecase.GetListingInput{ID: id})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Listing retrieved successfully")
}

// setStatusRequest carries the target status of a transition.
type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles the status transition request for one listing.
func (h *ListingHandler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("listing id must be a UUID")
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.SetStatus(c.Request().Context(), &usecase.SetListingStatusInput{
		ID:     id,
		Status: req.Status,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Listing status updated")
}

// Delete handles the listing deletion request. The confirmation travels as
// the confirm query parameter; without confirm=true the use case refuses.
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("listing id must be a UUID")
	}

	if err := h.uc.Delete(c.Request().Context(), &usecase.DeleteListingInput{
		ID:        id,
		Confirmed: c.QueryParam("confirm") == "true",
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing deleted"}, "Listing deleted")
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-service/internal/inventory"
	pkgErrors "inventory-service/pkg/errors"
)

var (
	errNameRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "inventory_name is required")
	errPhotoRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "photo is required")
	errInvalidBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errPhotoTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Photo too large")
	errPhotoMissing  = pkgErrors.NewHTTPError(http.StatusNotFound, "Photo file not found on server")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is a storage failure and is reported as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, inventory.ErrPhotoRequired):
		return errPhotoRequired
	case errors.Is(err, inventory.ErrInvalidPayload):
		return errInvalidBody
	case errors.Is(err, inventory.ErrPhotoTooLarge):
		return errPhotoTooLarge
	case errors.Is(err, inventory.ErrItemNotFound), errors.Is(err, inventory.ErrNoPhoto):
		return pkgErrors.ErrNotFound
	case errors.Is(err, inventory.ErrPhotoNotFound):
		return errPhotoMissing
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// logError logs client errors at debug and storage failures at error.
func (h *handler) logError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	if h.mapError(err) != pkgErrors.ErrInternalServerError {
		h.l.Debugf(ctx, "%s: %v", op, err)
		return
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
}

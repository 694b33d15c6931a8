package response

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-service/pkg/errors"
)

// JSON sends data as JSON with the given status.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Text sends a plain text body with the given status.
func Text(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// Binary streams size bytes from r with a fixed content type.
func Binary(c *gin.Context, contentType string, size int64, r io.Reader) {
	c.DataFromReader(http.StatusOK, size, contentType, r, nil)
}

// Error renders err as plain text. *errors.HTTPError values keep their status
// and message, everything else is reported as an internal error.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = pkgErrors.ErrInternalServerError
	}
	c.String(httpErr.Code, httpErr.Message)
}

// AbortWithError renders err like Error and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// NotFound sends 404.
func NotFound(c *gin.Context) {
	Error(c, pkgErrors.ErrNotFound)
}

// MethodNotAllowed sends 405.
func MethodNotAllowed(c *gin.Context) {
	Error(c, pkgErrors.ErrMethodNotAllowed)
}

// InternalError sends 500.
func InternalError(c *gin.Context) {
	Error(c, pkgErrors.ErrInternalServerError)
}

package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"inventory-service/internal/inventory"
)

const photoField = "photo"

// processPhoto limits the body size and extracts the optional "photo" file.
// A request without a file (or without a multipart body) yields nil.
func (h *handler) processPhoto(c *gin.Context) (*multipart.FileHeader, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	fh, err := c.FormFile(photoField)
	if err == nil {
		return fh, nil
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, nil
	case errors.As(err, &maxErr):
		return nil, inventory.ErrPhotoTooLarge
	default:
		return nil, inventory.ErrInvalidPayload
	}
}

// processRegisterReq reads the registration form and its optional photo.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, *multipart.FileHeader, error) {
	var req registerReq

	fh, err := h.processPhoto(c)
	if err != nil {
		return req, nil, err
	}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		return req, nil, inventory.ErrInvalidPayload
	}
	return req, fh, nil
}

// processUpdateReq binds the optional JSON or form body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if hasBody(c.Request) {
		if err := c.ShouldBind(&req); err != nil {
			return req, inventory.ErrInvalidPayload
		}
	}
	req.ID = c.Param("id")
	return req, nil
}

// processSearchReq binds the search form or JSON body.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if hasBody(c.Request) {
		if err := c.ShouldBind(&req); err != nil {
			return req, inventory.ErrInvalidPayload
		}
	}
	return req, nil
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

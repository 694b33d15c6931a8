package http

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-service/internal/inventory"
	"inventory-service/pkg/response"
)

const msgDeleted = "Deleted"

// Register godoc
// @Summary     Register an inventory item
// @Description Creates an item from multipart form fields with an optional photo.
// @Tags        Inventory
// @Accept      multipart/form-data
// @Produce     json
// @Param       inventory_name formData string true  "Item name"
// @Param       description    formData string false "Item description"
// @Param       photo          formData file   false "Item photo"
// @Success     201 {object} itemResp
// @Failure     400 {string} string "inventory_name is required"
// @Failure     413 {string} string "Photo too large"
// @Failure     500 {string} string "Internal server error"
// @Router      /register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, fh, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	input := req.toInput()
	if fh != nil {
		f, err := fh.Open()
		if err != nil {
			h.l.Errorf(ctx, "Register: open upload: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		defer f.Close()
		input.Photo = f
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.logError(c, "uc.Create", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newItemResp(output.Item, true))
}

// List godoc
// @Summary     List inventory
// @Description Returns every registered item in registration order.
// @Tags        Inventory
// @Produce     json
// @Success     200 {array} itemResp
// @Router      /inventory [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.logError(c, "uc.List", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get an inventory item
// @Tags        Inventory
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {string} string "Not found"
// @Router      /inventory/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.logError(c, "uc.Detail", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item, true))
}

// Update godoc
// @Summary     Update an inventory item
// @Description Replaces name and/or description. Empty fields are left unchanged.
// @Tags        Inventory
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       id   path string    true  "Item ID"
// @Param       body body updateReq false "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {string} string "Invalid request body"
// @Failure     404 {string} string "Not found"
// @Router      /inventory/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.logError(c, "uc.Update", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item, true))
}

// Delete godoc
// @Summary     Delete an inventory item
// @Description Removes the item and its photo file.
// @Tags        Inventory
// @Produce     plain
// @Param       id path string true "Item ID"
// @Success     200 {string} string "Deleted"
// @Failure     404 {string} string "Not found"
// @Failure     500 {string} string "Internal server error"
// @Router      /inventory/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.logError(c, "uc.Delete", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Text(c, http.StatusOK, msgDeleted)
}

// GetPhoto godoc
// @Summary     Get an item photo
// @Tags        Inventory
// @Produce     jpeg
// @Param       id path string true "Item ID"
// @Success     200 {file} binary
// @Failure     404 {string} string "Not found"
// @Router      /inventory/{id}/photo [GET]
func (h *handler) GetPhoto(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetPhoto(ctx, c.Param("id"))
	if err != nil {
		h.logError(c, "uc.GetPhoto", err)
		response.Error(c, h.mapError(err))
		return
	}
	defer output.Content.Close()

	response.Binary(c, output.ContentType, output.Size, output.Content)
}

// UpdatePhoto godoc
// @Summary     Replace an item photo
// @Description Stores a new photo and removes the previous file.
// @Tags        Inventory
// @Accept      multipart/form-data
// @Produce     json
// @Param       id    path     string true "Item ID"
// @Param       photo formData file   true "New photo"
// @Success     200 {object} itemResp
// @Failure     400 {string} string "photo is required"
// @Failure     404 {string} string "Not found"
// @Router      /inventory/{id}/photo [PUT]
func (h *handler) UpdatePhoto(c *gin.Context) {
	ctx := c.Request.Context()

	fh, err := h.processPhoto(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	input := inventory.UpdatePhotoInput{ID: c.Param("id")}
	if fh != nil {
		var f multipart.File
		if f, err = fh.Open(); err != nil {
			h.l.Errorf(ctx, "UpdatePhoto: open upload: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		defer f.Close()
		input.Photo = f
	}

	output, err := h.uc.UpdatePhoto(ctx, input)
	if err != nil {
		h.logError(c, "uc.UpdatePhoto", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item, true))
}

// Search godoc
// @Summary     Find an item by ID
// @Description The photo link is only included when includePhoto is set and a photo exists.
// @Tags        Inventory
// @Accept      x-www-form-urlencoded,json
// @Produce     json
// @Param       id           formData string true  "Item ID"
// @Param       includePhoto formData string false "Include photo link"
// @Success     200 {object} itemResp
// @Failure     404 {string} string "Not found"
// @Router      /search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.logError(c, "uc.Search", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}

package http

import (
	"github.com/gin-gonic/gin"

	"inventory-service/internal/inventory"
	"inventory-service/pkg/log"
)

// DefaultMaxUploadSize caps request bodies carrying a photo.
const DefaultMaxUploadSize int64 = 10 << 20

// Handler is the public interface for the inventory HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetPhoto(c *gin.Context)
	UpdatePhoto(c *gin.Context)
	Search(c *gin.Context)
}

type handler struct {
	l             log.Logger
	uc            inventory.UseCase
	maxUploadSize int64
}

// New creates a new HTTP handler for the inventory domain.
// A non-positive maxUploadSize selects DefaultMaxUploadSize.
func New(l log.Logger, uc inventory.UseCase, maxUploadSize int64) Handler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &handler{
		l:             l,
		uc:            uc,
		maxUploadSize: maxUploadSize,
	}
}

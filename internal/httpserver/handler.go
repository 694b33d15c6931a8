package httpserver

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	inventoryHTTP "inventory-service/internal/inventory/delivery/http"
	"inventory-service/pkg/response"
)

var formPages = []string{"RegisterForm.html", "SearchForm.html"}

func (srv HTTPServer) mapHandlers() error {
	srv.registerFallbacks()
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerForms(); err != nil {
		return err
	}

	srv.registerDomainRoutes()
	srv.registerHeadRoutes()
	return nil
}

// registerFallbacks answers unknown paths with 404 and known paths hit with
// the wrong method with 405.
func (srv HTTPServer) registerFallbacks() {
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoRoute(response.NotFound)
	srv.gin.NoMethod(response.MethodNotAllowed)
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.middleware.Logging(),
		srv.middleware.Recovery(),
		srv.middleware.RateLimit(),
	)

	srv.l.Infof(context.Background(), "Environment: %s, gin mode: %s", srv.environment, srv.mode)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	srv.gin.GET("/docs/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerForms serves the static HTML forms from the configured FS.
func (srv HTTPServer) registerForms() error {
	if srv.forms == nil {
		srv.l.Warn(context.Background(), "Forms not configured, skipping form routes")
		return nil
	}

	for _, name := range formPages {
		page, err := fs.ReadFile(srv.forms, name)
		if err != nil {
			return fmt.Errorf("read form %s: %w", name, err)
		}
		srv.gin.GET("/"+name, func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		})
	}
	return nil
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	inventoryHTTP.RegisterRoutes(srv.gin, srv.inventoryHandler)
	srv.l.Info(context.Background(), "Inventory routes registered")
}

// registerHeadRoutes answers HEAD on every GET route with the GET handler.
// net/http drops the body of HEAD responses.
func (srv HTTPServer) registerHeadRoutes() {
	for _, route := range srv.gin.Routes() {
		if route.Method == http.MethodGet {
			srv.gin.HEAD(route.Path, route.HandlerFunc)
		}
	}
}

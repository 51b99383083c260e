package api

import (
	_ "embed"  // OpenAPI document
	"net/http" // HTTP status codes
	"strings"  // Path joining

	"github.com/gin-gonic/gin"                 // Gin web framework
	swaggerFiles "github.com/swaggo/files"     // Swagger UI assets
	ginSwagger "github.com/swaggo/gin-swagger" // Swagger UI handler
)

const openAPIFile = "openapi.yaml"

//go:embed openapi.yaml
var openAPIDoc []byte

// DocsHandler serves Swagger UI over the embedded OpenAPI document.
// It must be mounted on a catch-all route such as /api-docs/*any.
func DocsHandler() gin.HandlerFunc {
	// The UI loads the document relative to its own index page
	ui := ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(openAPIFile))
	return func(c *gin.Context) {
		switch c.Param("any") {
		case "", "/":
			c.Redirect(http.StatusMovedPermanently, strings.TrimSuffix(c.Request.URL.Path, "/")+"/index.html")
		case "/" + openAPIFile:
			c.Data(http.StatusOK, "application/yaml; charset=utf-8", openAPIDoc)
		default:
			ui(c)
		}
	}
}

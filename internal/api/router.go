package api

import (
	"time" // Request timeout

	"mindspace/internal/middleware" // Request logging and timeouts

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// RouterConfig controls how the account routes are mounted
type RouterConfig struct {
	Prefixes       []string      // Every prefix gets the same handler set, "/" when empty
	CORSOrigins    []string      // Allowed origins, CORS disabled when empty
	RequestTimeout time.Duration // Per-request deadline, none when zero
	TrustedProxies []string      // Proxies whose forwarding headers are trusted
}

// NewRouter builds the gin engine serving the account API
func NewRouter(rc RouterConfig, svc AccountService, store Pinger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Timeout(rc.RequestTimeout))

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies(rc.TrustedProxies); err != nil {
		return nil, err
	}
	if len(rc.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: rc.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", middleware.RequestIDHeader},
			MaxAge:       12 * time.Hour,
		}))
	}

	r.GET("/healthz", HealthHandler(store)) // Store liveness
	r.GET("/api-docs/*any", DocsHandler())  // Swagger UI and OpenAPI document

	prefixes := rc.Prefixes
	if len(prefixes) == 0 {
		prefixes = []string{"/"}
	}
	// The handler set is defined once and mounted under each prefix
	for _, prefix := range prefixes {
		mountAccountRoutes(r.Group(prefix), svc)
	}
	return r, nil
}

// mountAccountRoutes registers the three account routes on g
func mountAccountRoutes(g *gin.RouterGroup, svc AccountService) {
	g.POST("/register", RegisterHandler(svc)) // Registration endpoint
	g.POST("/login", LoginHandler(svc))       // Login endpoint
	g.GET("/users", ListUsersHandler(svc))    // Listing endpoint
}

package internal

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/teamtree-io/teamtree/docs"
	"github.com/teamtree-io/teamtree/internal/handler"
	"github.com/teamtree-io/teamtree/internal/middleware"
)

type Backend struct {
	R *gin.Engine
}

// Register assembles the gin engine: probes, metrics, CORS in debug mode,
// the versioned API groups of every manager, and the swagger UI.
func Register(conf *handler.RegisterConfig) *Backend {
	s := new(Backend)
	s.R = gin.Default()
	s.R.Use(middleware.RequestID())

	// Deployment health check
	s.R.GET("/v1/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})

	// Prometheus scrape endpoint
	s.R.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Enable CORS for http://localhost:XXXX in debug mode
	if gin.Mode() == gin.DebugMode {
		fe := os.Getenv("TEAMTREE_FE_PORT")
		if fe != "" {
			url := "http://localhost:" + fe
			corsConf := cors.DefaultConfig()
			corsConf.AllowOrigins = []string{url}
			s.R.Use(cors.New(corsConf))
		}
	}

	v1 := s.R.Group("/v1")
	for _, mgr := range registerManagers(conf) {
		mgr.RegisterRoutes(v1.Group("/" + mgr.GetName()))
	}

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	s.R.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return s
}

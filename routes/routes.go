package routes

import (
	"net/http"

	"github.com/saqi004/calories/config"
	"github.com/saqi004/calories/controllers"
	"github.com/saqi004/calories/middlewares"
	"github.com/saqi004/calories/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	services.RegisterMetrics()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cc := controllers.NewCalorieController(services.NewCalorieService())

	api := r.Group("/api/v1")
	if cfg.AuthEnabled() {
		api.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	}
	{
		api.POST("/calories", cc.Estimate)
		api.GET("/activity-levels", cc.ActivityLevels)
	}

	return r
}

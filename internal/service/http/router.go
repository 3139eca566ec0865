package httpsvc

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter собирает gin-роутер с маршрутами API.
func NewRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router.POST("/customers", h.CreateCustomer)
	router.POST("/products", h.CreateProduct)
	router.POST("/orders", h.CreateOrder)
	router.GET("/orders/:id", h.GetOrder)

	return router
}

package product

import (
	"go-sportstore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		// browsing is cheap for real users, this only stops bulk scraping
		products.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.GetList,
		)

		products.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetByID,
		)
	}
}

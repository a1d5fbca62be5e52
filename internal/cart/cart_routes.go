package cart

import (
	"go-sportstore/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, session middleware.SessionConfig) {
	carts := r.Group("/cart")
	carts.Use(middleware.Session(session))
	{
		carts.GET("", handler.Index)
		carts.GET("/summary", handler.Summary)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items")
		{
			items.POST("", handler.AddToCart)
			items.DELETE("/:productId", handler.RemoveFromCart)
		}
	}
}

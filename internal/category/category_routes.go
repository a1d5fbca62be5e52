package category

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	nav := r.Group("/nav")
	{
		nav.GET("/menu", handler.Menu)
	}
}

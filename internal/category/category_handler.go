package category

import (
	"net/http"

	"go-sportstore/internal/pkg/apperror"
	"go-sportstore/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("category.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("category.handler")
	}
	return &Handler{service: s, logger: l}
}

// GET /nav/menu?category=
func (h *Handler) Menu(c *gin.Context) {
	var selected *string
	if v := c.Query("category"); v != "" {
		selected = &v
	}

	res, err := h.service.Menu(c.Request.Context(), selected)
	if err != nil {
		h.logger.Error("http nav menu failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

package cart

import (
	"net/http"
	"strconv"

	"go-sportstore/internal/middleware"
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
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{service: s, logger: l}
}

// GET /cart?returnUrl=
func (h *Handler) Index(c *gin.Context) {
	res, err := h.service.Index(c.Request.Context(), sessionID(c), c.Query("returnUrl"))
	if err != nil {
		h.writeServiceError(c, "http cart index failed", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// GET /cart/summary
func (h *Handler) Summary(c *gin.Context) {
	res, err := h.service.Summary(c.Request.Context(), sessionID(c))
	if err != nil {
		h.writeServiceError(c, "http cart summary failed", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// POST /cart/items
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.AddToCart(c.Request.Context(), sessionID(c), req)
	if err != nil {
		h.writeServiceError(c, "http add to cart failed", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /cart/items/:productId?returnUrl=
func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidProduct)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.RemoveFromCart(c.Request.Context(), sessionID(c), productID, c.Query("returnUrl"))
	if err != nil {
		h.writeServiceError(c, "http remove from cart failed", err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), sessionID(c)); err != nil {
		h.writeServiceError(c, "http clear cart failed", err)
		return
	}
	response.Success(c, http.StatusOK, nil, nil)
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionContextKey)
}

func (h *Handler) writeServiceError(c *gin.Context, msg string, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

package product

import (
	"net/http"
	"net/url"
	"strconv"

	"go-sportstore/internal/pkg/apperror"
	"go-sportstore/internal/pkg/paging"
	"go-sportstore/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("product.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.handler")
	}
	return &Handler{service: s, logger: l}
}

// GET /products?category=&page=
func (h *Handler) GetList(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query", err.Error())
		return
	}

	req := ListRequest{Page: q.Page}
	if q.Category != "" {
		req.Category = &q.Category
	}

	res, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, "http list products failed", err)
		return
	}

	res.PageLinks = paging.Links(res.PagingInfo, func(page int) string {
		return listURL(c.Request.URL.Path, req.Category, page)
	})

	response.Success(c, http.StatusOK, res, res.PagingInfo.Meta())
}

// GET /products/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidProductID)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, "http get product failed", err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) writeServiceError(c *gin.Context, msg string, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func listURL(path string, category *string, page int) string {
	q := url.Values{}
	if category != nil {
		q.Set("category", *category)
	}
	q.Set("page", strconv.Itoa(page))
	return path + "?" + q.Encode()
}

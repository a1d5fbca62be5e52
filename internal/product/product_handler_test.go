package product_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-sportstore/internal/pkg/paging"
	"go-sportstore/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== FAKE SERVICE ====================

type fakeProductService struct {
	ListFn    func(ctx context.Context, req product.ListRequest) (product.ProductListResponse, error)
	GetByIDFn func(ctx context.Context, id int64) (product.Product, error)
}

func (f *fakeProductService) List(ctx context.Context, req product.ListRequest) (product.ProductListResponse, error) {
	return f.ListFn(ctx, req)
}

func (f *fakeProductService) GetByID(ctx context.Context, id int64) (product.Product, error) {
	return f.GetByIDFn(ctx, id)
}

// ==================== HELPERS ====================

func setupTestRouter(svc product.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := product.NewHandler(svc, zap.NewNop())
	r.GET("/products", h.GetList)
	r.GET("/products/:id", h.GetByID)
	return r
}

type listEnvelope struct {
	Success    bool                        `json:"success"`
	Data       product.ProductListResponse `json:"data"`
	Pagination struct {
		TotalPages  int  `json:"totalPages"`
		HasNextPage bool `json:"hasNextPage"`
	} `json:"pagination"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

// ==================== TEST CASES ====================

func TestProductHandler_GetList(t *testing.T) {
	t.Run("success with category and page", func(t *testing.T) {
		svc := &fakeProductService{
			ListFn: func(_ context.Context, req product.ListRequest) (product.ProductListResponse, error) {
				require.NotNil(t, req.Category)
				assert.Equal(t, "Cat 2", *req.Category)
				assert.Equal(t, 2, req.Page)
				return product.ProductListResponse{
					Products:        fiveProducts()[3:],
					PagingInfo:      paging.Info{CurrentPage: 2, ItemsPerPage: 3, TotalItems: 5},
					CurrentCategory: req.Category,
				}, nil
			},
		}

		w := httptest.NewRecorder()
		setupTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?category=Cat+2&page=2", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body listEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, []string{"P4", "P5"}, productNames(body.Data.Products))
		assert.Equal(t, 2, body.Pagination.TotalPages)
		assert.False(t, body.Pagination.HasNextPage)

		require.Len(t, body.Data.PageLinks, 2)
		assert.Equal(t, "/products?category=Cat+2&page=1", body.Data.PageLinks[0].URL)
		assert.False(t, body.Data.PageLinks[0].Selected)
		assert.True(t, body.Data.PageLinks[1].Selected)
	})

	t.Run("defaults to first page of all categories", func(t *testing.T) {
		svc := &fakeProductService{
			ListFn: func(_ context.Context, req product.ListRequest) (product.ProductListResponse, error) {
				assert.Nil(t, req.Category)
				assert.Equal(t, 1, req.Page)
				return product.ProductListResponse{
					Products:   fiveProducts()[:3],
					PagingInfo: paging.Info{CurrentPage: 1, ItemsPerPage: 3, TotalItems: 5},
				}, nil
			},
		}

		w := httptest.NewRecorder()
		setupTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?category=", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"url":"/products?page=2"`)
	})

	t.Run("invalid page query", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupTestRouter(&fakeProductService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?page=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_QUERY")
	})

	t.Run("service validation error maps to 400", func(t *testing.T) {
		svc := &fakeProductService{
			ListFn: func(context.Context, product.ListRequest) (product.ProductListResponse, error) {
				return product.ProductListResponse{}, paging.ErrInvalidPage
			},
		}

		w := httptest.NewRecorder()
		setupTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?page=0", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeProductService{
			GetByIDFn: func(_ context.Context, id int64) (product.Product, error) {
				assert.Equal(t, int64(4), id)
				return newProduct(4, "P4", "Cat2", 40), nil
			},
		}

		w := httptest.NewRecorder()
		setupTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/4", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"price":"40"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeProductService{
			GetByIDFn: func(context.Context, int64) (product.Product, error) {
				return product.Product{}, product.ErrProductNotFound
			},
		}

		w := httptest.NewRecorder()
		setupTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupTestRouter(&fakeProductService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

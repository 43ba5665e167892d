package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-panel-client/models"
	"admin-panel-client/store"
)

type ProductHandler struct {
	products *store.ProductsStore
}

func NewProductHandler(products *store.ProductsStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /panel/products.
func (h *ProductHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	if err := h.products.FetchProducts(c.Request.Context(), page, limit); err != nil {
		respondError(c, err, "FETCH_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products":   h.products.Products(),
		"pagination": h.products.Pagination(),
	})
}

// Get handles GET /panel/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.products.FetchProductByID(c.Request.Context(), id); err != nil {
		respondError(c, err, "FETCH_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": h.products.CurrentProduct()})
}

// Create handles POST /panel/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var payload models.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.products.CreateProduct(c.Request.Context(), payload); err != nil {
		respondError(c, err, "CREATE_FAILED")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"products": h.products.Products()})
}

// Update handles PUT /panel/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload models.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.products.UpdateProduct(c.Request.Context(), id, payload); err != nil {
		respondError(c, err, "UPDATE_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.products.Products()})
}

// Delete handles DELETE /panel/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "DELETE_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.products.Products()})
}

// Search handles GET /panel/products/search.
func (h *ProductHandler) Search(c *gin.Context) {
	params := models.ProductSearchParams{
		Query:    c.Query("q"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
	}

	if err := h.products.SearchProducts(c.Request.Context(), params); err != nil {
		respondError(c, err, "SEARCH_FAILED")
		return
	}
	results, pagination := h.products.SearchResults()
	c.JSON(http.StatusOK, gin.H{
		"products":   results,
		"pagination": pagination,
	})
}

// LowStock handles GET /panel/products/low-stock.
func (h *ProductHandler) LowStock(c *gin.Context) {
	threshold := queryInt(c, "threshold", 10)

	if err := h.products.FetchLowStock(c.Request.Context(), threshold); err != nil {
		respondError(c, err, "FETCH_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.products.LowStock()})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-panel-client/models"
	"admin-panel-client/store"
)

type CartHandler struct {
	cart *store.CartStore
}

func NewCartHandler(cart *store.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

func (h *CartHandler) snapshot() gin.H {
	return gin.H{
		"cart":       h.cart.Cart(),
		"lastAction": h.cart.LastAction(),
		"error":      h.cart.Err(),
	}
}

// GetCart handles GET /panel/cart: refreshes from the backend and returns the
// store snapshot. A failed refresh keeps the stale-but-available cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	if err := h.cart.FetchCart(c.Request.Context()); err != nil {
		c.JSON(statusForErr(err), h.snapshot())
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// AddItem handles POST /panel/cart/items. Writes that change cart shape are
// reconciled by refetch, not by merging the returned line item.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	if err := h.cart.AddToCart(ctx, req.ProductID, req.Quantity); err != nil {
		respondError(c, err, "ADD_FAILED")
		return
	}
	if err := h.cart.FetchCart(ctx); err != nil {
		c.JSON(statusForErr(err), h.snapshot())
		return
	}
	c.JSON(http.StatusCreated, h.snapshot())
}

// UpdateItem handles PUT /panel/cart/items/:itemId. The store applies the
// edit optimistically; when the backend rejects it this handler issues the
// corrective refetch the engine leaves to its caller.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	if err := h.cart.UpdateCartItem(ctx, itemID, req.Quantity); err != nil {
		h.cart.FetchCart(ctx)
		c.JSON(statusForErr(err), h.snapshot())
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// RemoveItem handles DELETE /panel/cart/items/:itemId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.cart.RemoveCartItem(ctx, itemID); err != nil {
		h.cart.FetchCart(ctx)
		c.JSON(statusForErr(err), h.snapshot())
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// Clear handles DELETE /panel/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.ClearCart(c.Request.Context()); err != nil {
		respondError(c, err, "CLEAR_FAILED")
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// ListAll handles GET /panel/carts (super-admin listing).
func (h *CartHandler) ListAll(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	if err := h.cart.FetchAllCarts(c.Request.Context(), page, limit); err != nil {
		respondError(c, err, "FETCH_FAILED")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"carts":      h.cart.AllCarts(),
		"pagination": h.cart.AllCartsPagination(),
	})
}

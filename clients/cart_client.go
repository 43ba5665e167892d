package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"admin-panel-client/gateway"
	"admin-panel-client/models"
)

type CartClient struct {
	gw *gateway.Gateway
}

func NewCartClient(gw *gateway.Gateway) *CartClient {
	return &CartClient{gw: gw}
}

func (c *CartClient) GetCart(ctx context.Context) (*models.Cart, error) {
	var resp models.CartResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/cart", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Cart, nil
}

func (c *CartClient) AddToCart(ctx context.Context, productID int64, quantity int) (*models.AddToCartResponse, error) {
	req := models.AddToCartRequest{ProductID: productID, Quantity: quantity}
	var resp models.AddToCartResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/cart/add", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *CartClient) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (string, error) {
	req := models.UpdateCartItemRequest{Quantity: quantity}
	var resp models.MessageResponse
	path := fmt.Sprintf("/cart/item/%d", itemID)
	if err := c.gw.Do(ctx, http.MethodPut, path, nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *CartClient) RemoveCartItem(ctx context.Context, itemID int64) (string, error) {
	var resp models.MessageResponse
	path := fmt.Sprintf("/cart/item/%d", itemID)
	if err := c.gw.Do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *CartClient) ClearCart(ctx context.Context) (string, error) {
	var resp models.MessageResponse
	if err := c.gw.Do(ctx, http.MethodDelete, "/cart/clear", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *CartClient) GetAllCarts(ctx context.Context, page, limit int) (*models.AllCartsResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var resp models.AllCartsResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/cart/admin/all", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

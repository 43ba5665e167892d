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

type ProductClient struct {
	gw *gateway.Gateway
}

func NewProductClient(gw *gateway.Gateway) *ProductClient {
	return &ProductClient{gw: gw}
}

func (c *ProductClient) GetAllProducts(ctx context.Context, page, limit int) (*models.ProductsResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var resp models.ProductsResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/products", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ProductClient) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var resp models.ProductResponse
	if err := c.gw.Do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *ProductClient) CreateProduct(ctx context.Context, payload models.ProductPayload) (*models.Product, error) {
	var resp models.ProductResponse
	if err := c.gw.Do(ctx, http.MethodPost, "/products", nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *ProductClient) UpdateProduct(ctx context.Context, id int64, payload models.ProductPayload) (*models.Product, error) {
	var resp models.ProductResponse
	if err := c.gw.Do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *ProductClient) DeleteProduct(ctx context.Context, id int64) (string, error) {
	var resp models.MessageResponse
	if err := c.gw.Do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *ProductClient) SearchProducts(ctx context.Context, params models.ProductSearchParams) (*models.ProductsResponse, error) {
	query := url.Values{}
	query.Set("q", params.Query)
	if params.MinPrice != "" {
		query.Set("minPrice", params.MinPrice)
	}
	if params.MaxPrice != "" {
		query.Set("maxPrice", params.MaxPrice)
	}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("limit", strconv.Itoa(params.Limit))

	var resp models.ProductsResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/products/search", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ProductClient) GetLowStockProducts(ctx context.Context, threshold int) ([]models.Product, error) {
	query := url.Values{}
	query.Set("threshold", strconv.Itoa(threshold))

	var resp models.ProductsResponse
	if err := c.gw.Do(ctx, http.MethodGet, "/products/low-stock", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

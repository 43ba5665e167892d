package store

import (
	"context"
	"sync"

	"admin-panel-client/models"
)

type productAPI interface {
	GetAllProducts(ctx context.Context, page, limit int) (*models.ProductsResponse, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, payload models.ProductPayload) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, payload models.ProductPayload) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (string, error)
	SearchProducts(ctx context.Context, params models.ProductSearchParams) (*models.ProductsResponse, error)
	GetLowStockProducts(ctx context.Context, threshold int) ([]models.Product, error)
}

// ProductsStore owns the catalog's client-side copy. Unlike the cart, every
// mutation waits for the authoritative response before touching state.
type ProductsStore struct {
	api productAPI

	mu               sync.RWMutex
	products         []models.Product
	currentProduct   *models.Product
	lowStock         []models.Product
	pagination       *models.Pagination
	searchResults    []models.Product
	searchPagination *models.Pagination
	loading          bool
	searchLoading    bool
	err              string
	searchErr        string
}

func NewProductsStore(api productAPI) *ProductsStore {
	return &ProductsStore{api: api}
}

func (s *ProductsStore) FetchProducts(ctx context.Context, page, limit int) error {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	resp, err := s.api.GetAllProducts(ctx, page, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to fetch products")
		return err
	}
	s.products = resp.Products
	s.pagination = resp.Pagination
	s.err = ""
	return nil
}

func (s *ProductsStore) FetchProductByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	product, err := s.api.GetProductByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to fetch product")
		return err
	}
	s.currentProduct = product
	s.err = ""
	return nil
}

// CreateProduct prepends the created product so it shows first in the list.
func (s *ProductsStore) CreateProduct(ctx context.Context, payload models.ProductPayload) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	product, err := s.api.CreateProduct(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to create product")
		return err
	}
	s.products = append([]models.Product{*product}, s.products...)
	s.err = ""
	return nil
}

func (s *ProductsStore) UpdateProduct(ctx context.Context, id int64, payload models.ProductPayload) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	product, err := s.api.UpdateProduct(ctx, id, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to update product")
		return err
	}
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = *product
			break
		}
	}
	if s.currentProduct != nil && s.currentProduct.ID == product.ID {
		s.currentProduct = product
	}
	s.err = ""
	return nil
}

func (s *ProductsStore) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	_, err := s.api.DeleteProduct(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to delete product")
		return err
	}
	kept := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	if s.currentProduct != nil && s.currentProduct.ID == id {
		s.currentProduct = nil
	}
	s.err = ""
	return nil
}

func (s *ProductsStore) SearchProducts(ctx context.Context, params models.ProductSearchParams) error {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	s.mu.Lock()
	s.searchLoading = true
	s.searchErr = ""
	s.mu.Unlock()

	resp, err := s.api.SearchProducts(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchLoading = false
	if err != nil {
		s.searchErr = errMessage(err, "Search failed")
		return err
	}
	s.searchResults = resp.Products
	s.searchPagination = resp.Pagination
	s.searchErr = ""
	return nil
}

func (s *ProductsStore) FetchLowStock(ctx context.Context, threshold int) error {
	if threshold < 1 {
		threshold = 10
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	products, err := s.api.GetLowStockProducts(ctx, threshold)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to fetch low stock products")
		return err
	}
	s.lowStock = products
	s.err = ""
	return nil
}

func (s *ProductsStore) ClearCurrent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentProduct = nil
}

func (s *ProductsStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.searchErr = ""
}

func (s *ProductsStore) ClearSearchResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchResults = nil
	s.searchPagination = nil
	s.searchErr = ""
}

func (s *ProductsStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

func (s *ProductsStore) CurrentProduct() *models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentProduct == nil {
		return nil
	}
	p := *s.currentProduct
	return &p
}

func (s *ProductsStore) LowStock() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, len(s.lowStock))
	copy(products, s.lowStock)
	return products
}

func (s *ProductsStore) Pagination() *models.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pagination == nil {
		return nil
	}
	p := *s.pagination
	return &p
}

func (s *ProductsStore) SearchResults() ([]models.Product, *models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]models.Product, len(s.searchResults))
	copy(results, s.searchResults)
	if s.searchPagination == nil {
		return results, nil
	}
	p := *s.searchPagination
	return results, &p
}

func (s *ProductsStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ProductsStore) SearchLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchLoading
}

func (s *ProductsStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ProductsStore) SearchErr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchErr
}

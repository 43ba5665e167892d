package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"admin-panel-client/models"
)

// cartAPI is the slice of the cart REST surface the store depends on.
// *clients.CartClient satisfies it.
type cartAPI interface {
	GetCart(ctx context.Context) (*models.Cart, error)
	AddToCart(ctx context.Context, productID int64, quantity int) (*models.AddToCartResponse, error)
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) (string, error)
	RemoveCartItem(ctx context.Context, itemID int64) (string, error)
	ClearCart(ctx context.Context) (string, error)
	GetAllCarts(ctx context.Context, page, limit int) (*models.AllCartsResponse, error)
}

// CartStore owns the client-side cart. Quantity and removal edits are applied
// optimistically before the network call resolves; a failed call leaves the
// local copy divergent until the caller triggers FetchCart. State transitions
// are serialized behind the mutex, but network calls run outside it, so
// overlapping edits remain possible and the last local edit wins.
type CartStore struct {
	api    cartAPI
	events ActivityPublisher
	logger *zap.Logger

	mu                 sync.RWMutex
	cart               *models.Cart
	allCarts           []models.Cart
	allCartsPagination *models.Pagination
	loading            bool
	adminLoading       bool
	err                string
	adminErr           string
	lastAction         Action
}

// NewCartStore builds a cart store. events may be nil when activity
// publishing is disabled.
func NewCartStore(api cartAPI, events ActivityPublisher, logger *zap.Logger) *CartStore {
	return &CartStore{
		api:    api,
		events: events,
		logger: logger,
	}
}

// FetchCart replaces the local cart with the server's authoritative copy and
// recomputes totals. On failure the previously loaded cart is kept
// (stale-but-available) and only the error string changes.
func (s *CartStore) FetchCart(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	cart, err := s.api.GetCart(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to fetch cart")
		return err
	}
	fresh := CalculateCartTotals(*cart)
	s.cart = &fresh
	s.err = ""
	return nil
}

// AddToCart sends the add request. The returned line item is not merged into
// local state; callers re-fetch for full consistency, since the server may
// coalesce quantities into a pre-existing line.
func (s *CartStore) AddToCart(ctx context.Context, productID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.lastAction = ActionAdding
	s.mu.Unlock()

	resp, err := s.api.AddToCart(ctx, productID, quantity)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to add to cart")
		s.lastAction = ActionError
		s.mu.Unlock()
		return err
	}
	s.lastAction = ActionAdded
	s.err = ""
	s.mu.Unlock()

	s.publish(ActionAdded, resp.CartItem.ID, productID, quantity)
	return nil
}

// UpdateCartItem optimistically sets the item's quantity and subtotal before
// the network call resolves. On success the quantity from the request (not
// any server-returned value) is re-applied; on failure the optimistic value
// stays in place until the caller re-fetches. A quantity below one is
// represented as removal.
func (s *CartStore) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	if quantity < 1 {
		return s.RemoveCartItem(ctx, itemID)
	}

	s.mu.Lock()
	if s.cart != nil {
		updated := ApplyQuantity(*s.cart, itemID, quantity)
		s.cart = &updated
	}
	s.loading = true
	s.err = ""
	s.lastAction = ActionUpdating
	s.mu.Unlock()

	_, err := s.api.UpdateCartItem(ctx, itemID, quantity)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to update cart item")
		s.lastAction = ActionError
		s.mu.Unlock()
		return err
	}
	if s.cart != nil {
		updated := ApplyQuantity(*s.cart, itemID, quantity)
		s.cart = &updated
	}
	s.lastAction = ActionUpdated
	s.err = ""
	s.mu.Unlock()

	s.publish(ActionUpdated, itemID, 0, quantity)
	return nil
}

// RemoveCartItem optimistically drops the item, reconciled the same way as
// UpdateCartItem: refetch on failure.
func (s *CartStore) RemoveCartItem(ctx context.Context, itemID int64) error {
	s.mu.Lock()
	if s.cart != nil {
		updated := RemoveItem(*s.cart, itemID)
		s.cart = &updated
	}
	s.loading = true
	s.err = ""
	s.lastAction = ActionRemoving
	s.mu.Unlock()

	_, err := s.api.RemoveCartItem(ctx, itemID)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to remove cart item")
		s.lastAction = ActionError
		s.mu.Unlock()
		return err
	}
	if s.cart != nil {
		updated := RemoveItem(*s.cart, itemID)
		s.cart = &updated
	}
	s.lastAction = ActionRemoved
	s.err = ""
	s.mu.Unlock()

	s.publish(ActionRemoved, itemID, 0, 0)
	return nil
}

// ClearCart is not optimistic: items are emptied only after the server
// confirms.
func (s *CartStore) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.lastAction = ActionClearing
	s.mu.Unlock()

	_, err := s.api.ClearCart(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to clear cart")
		s.lastAction = ActionError
		s.mu.Unlock()
		return err
	}
	cleared := models.Cart{
		Items:       []models.CartItem{},
		TotalItems:  0,
		TotalAmount: "0.00",
	}
	if s.cart != nil {
		cleared.ID = s.cart.ID
		cleared.UserID = s.cart.UserID
	}
	s.cart = &cleared
	s.lastAction = ActionCleared
	s.err = ""
	s.mu.Unlock()

	s.publish(ActionCleared, 0, 0, 0)
	return nil
}

// FetchAllCarts loads the admin listing of every cart. Admin state keeps its
// own loading and error flags so dashboard failures never disturb the user's
// own cart view.
func (s *CartStore) FetchAllCarts(ctx context.Context, page, limit int) error {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	s.mu.Lock()
	s.adminLoading = true
	s.adminErr = ""
	s.mu.Unlock()

	resp, err := s.api.GetAllCarts(ctx, page, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminLoading = false
	if err != nil {
		s.adminErr = errMessage(err, "Failed to fetch all carts")
		return err
	}
	s.allCarts = resp.Carts
	s.allCartsPagination = resp.Pagination
	s.adminErr = ""
	return nil
}

// OptimisticUpdateQuantity is the local-only mutation primitive used by the
// optimistic update path. No network call is made.
func (s *CartStore) OptimisticUpdateQuantity(itemID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return
	}
	updated := ApplyQuantity(*s.cart, itemID, quantity)
	s.cart = &updated
}

// OptimisticRemoveItem is the local-only removal primitive used by the
// optimistic removal path.
func (s *CartStore) OptimisticRemoveItem(itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return
	}
	updated := RemoveItem(*s.cart, itemID)
	s.cart = &updated
}

// ClearError clears both the user-facing and admin error strings. Errors are
// otherwise retained until superseded by a new operation.
func (s *CartStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
	s.adminErr = ""
}

// ClearLastAction returns the action annotation to idle.
func (s *CartStore) ClearLastAction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAction = ActionIdle
}

// ClearCartState tears the cart down on sign-out.
func (s *CartStore) ClearCartState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.err = ""
	s.lastAction = ActionIdle
}

// Cart returns a snapshot copy of the current cart, or nil when none has
// been loaded.
func (s *CartStore) Cart() *models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCart(s.cart)
}

// Items returns a copy of the current item list; an unloaded cart yields an
// empty slice.
func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cart == nil {
		return []models.CartItem{}
	}
	items := make([]models.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.TotalItems
}

func (s *CartStore) TotalAmount() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cart == nil {
		return "0.00"
	}
	return s.cart.TotalAmount
}

func (s *CartStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CartStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *CartStore) LastAction() Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAction
}

func (s *CartStore) AllCarts() []models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	carts := make([]models.Cart, len(s.allCarts))
	copy(carts, s.allCarts)
	return carts
}

func (s *CartStore) AllCartsPagination() *models.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.allCartsPagination == nil {
		return nil
	}
	p := *s.allCartsPagination
	return &p
}

func (s *CartStore) AdminLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminLoading
}

func (s *CartStore) AdminErr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminErr
}

func (s *CartStore) publish(action Action, itemID, productID int64, quantity int) {
	if s.events == nil {
		return
	}

	s.mu.RLock()
	totalItems := 0
	totalAmount := "0.00"
	if s.cart != nil {
		totalItems = s.cart.TotalItems
		totalAmount = s.cart.TotalAmount
	}
	s.mu.RUnlock()

	activity := models.CartActivity{
		EventID:     uuid.NewString(),
		Action:      string(action),
		ItemID:      itemID,
		ProductID:   productID,
		Quantity:    quantity,
		TotalItems:  totalItems,
		TotalAmount: totalAmount,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.events.PublishCartActivity(activity); err != nil {
		s.logger.Warn("failed to publish cart activity",
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

func copyCart(cart *models.Cart) *models.Cart {
	if cart == nil {
		return nil
	}
	out := *cart
	if cart.Items != nil {
		out.Items = make([]models.CartItem, len(cart.Items))
		copy(out.Items, cart.Items)
	}
	return &out
}

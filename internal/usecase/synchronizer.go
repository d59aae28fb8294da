package usecase

import (
	"context"
	"sync"

	"storefront/internal/clients"
	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// Synchronizer mirrors one user's cart and wishlist and reconciles the
// mirror against the backend on every operation.
//
// Two rules keep the mirror from drifting under concurrent use:
//   - every fetch and mutation captures a generation token bound to the
//     user id at dispatch; a response whose generation no longer matches
//     (the user changed mid-flight) is discarded instead of applied.
//   - mutations touching the same product id are serialized through a
//     keyed mutex, so a double-click cannot interleave toggle requests.
type Synchronizer struct {
	client clients.ShopperClient
	notify domain.Notifier
	log    *logrus.Logger

	mu         sync.Mutex
	userID     string
	generation uint64
	wishlist   []int
	cart       []domain.CartItem
	loading    bool

	keys *keyedMutex
}

func NewSynchronizer(client clients.ShopperClient, notifier domain.Notifier, logger *logrus.Logger) *Synchronizer {
	return &Synchronizer{
		client: client,
		notify: notifier,
		log:    logger,
		keys:   newKeyedMutex(),
	}
}

// SetUser switches the mirror to a new user identifier. An unchanged id
// is a no-op. Any change discards both collections; a non-empty id then
// refetches them, an empty id leaves them cleared.
func (s *Synchronizer) SetUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	if s.userID == userID {
		s.mu.Unlock()
		return nil
	}
	s.userID = userID
	s.generation++
	gen := s.generation
	s.wishlist = nil
	s.cart = nil
	s.mu.Unlock()

	if userID == "" {
		s.log.Debug("Synchronizer: user cleared, mirrors emptied")
		return nil
	}

	s.log.Infof("Synchronizer: user changed to %s, refetching wishlist and cart", userID)
	if err := s.fetchWishlist(ctx, userID, gen); err != nil {
		return err
	}
	return s.fetchCart(ctx, userID, gen)
}

func (s *Synchronizer) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *Synchronizer) snapshot() (string, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID, s.generation
}

// FetchWishlist refreshes the wishlist mirror for the current user. With
// no user set it clears the mirror and makes no backend call.
func (s *Synchronizer) FetchWishlist(ctx context.Context) error {
	userID, gen := s.snapshot()
	if userID == "" {
		s.mu.Lock()
		s.wishlist = nil
		s.mu.Unlock()
		return nil
	}
	return s.fetchWishlist(ctx, userID, gen)
}

func (s *Synchronizer) fetchWishlist(ctx context.Context, userID string, gen uint64) error {
	products, err := s.client.GetWishlist(ctx, userID)
	if err != nil {
		s.log.Errorf("Synchronizer: wishlist fetch error for user %s: %v", userID, err)
		s.notify.Error("Failed to fetch wishlist")
		return err
	}
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.Debugf("Synchronizer: discarding stale wishlist response for user %s", userID)
		return nil
	}
	s.wishlist = ids
	return nil
}

// FetchCart refreshes the cart mirror for the current user. With no user
// set it clears the mirror and makes no backend call.
func (s *Synchronizer) FetchCart(ctx context.Context) error {
	userID, gen := s.snapshot()
	if userID == "" {
		s.mu.Lock()
		s.cart = nil
		s.mu.Unlock()
		return nil
	}
	return s.fetchCart(ctx, userID, gen)
}

func (s *Synchronizer) fetchCart(ctx context.Context, userID string, gen uint64) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	items, err := s.client.GetCart(ctx, userID)
	if err != nil {
		s.log.Errorf("Synchronizer: cart fetch error for user %s: %v", userID, err)
		s.notify.Error("Failed to fetch cart")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.Debugf("Synchronizer: discarding stale cart response for user %s", userID)
		return nil
	}
	s.cart = items
	return nil
}

// ToggleWishlist flips the product's wishlist membership: DELETE when the
// mirror says it is present, POST otherwise. On failure the mirror is
// left unchanged.
func (s *Synchronizer) ToggleWishlist(ctx context.Context, productID int) error {
	userID, gen := s.snapshot()
	if userID == "" {
		s.notify.Warning("Login required")
		return domain.ErrLoginRequired
	}

	unlock := s.keys.lock(productID)
	defer unlock()

	wished := s.Contains(productID)
	var err error
	if wished {
		err = s.client.RemoveWishlistItem(ctx, userID, productID)
	} else {
		err = s.client.AddWishlistItem(ctx, userID, productID)
	}
	if err != nil {
		s.log.Errorf("Synchronizer: wishlist toggle error for product %d: %v", productID, err)
		s.notify.Error("Wishlist update failed")
		return err
	}

	s.mu.Lock()
	if gen == s.generation {
		if wished {
			s.wishlist = removeID(s.wishlist, productID)
		} else if !containsID(s.wishlist, productID) {
			s.wishlist = append(s.wishlist, productID)
		}
	}
	s.mu.Unlock()

	if wished {
		s.notify.Success("Removed from wishlist")
	} else {
		s.notify.Success("Added to wishlist")
	}
	return nil
}

// RemoveWishlist deletes the product from the wishlist and filters it out
// of the mirror on success.
func (s *Synchronizer) RemoveWishlist(ctx context.Context, productID int) error {
	userID, gen := s.snapshot()
	if userID == "" {
		s.notify.Warning("Login required")
		return domain.ErrLoginRequired
	}

	unlock := s.keys.lock(productID)
	defer unlock()

	if err := s.client.RemoveWishlistItem(ctx, userID, productID); err != nil {
		s.log.Errorf("Synchronizer: wishlist remove error for product %d: %v", productID, err)
		s.notify.Error("Failed to remove wishlist item")
		return err
	}

	s.mu.Lock()
	if gen == s.generation {
		s.wishlist = removeID(s.wishlist, productID)
	}
	s.mu.Unlock()

	s.notify.Success("Wishlist item removed")
	return nil
}

// AddToCart POSTs the item, then replaces the entire cart mirror with the
// collection the backend returned. This is the one operation that
// resynchronizes fully.
func (s *Synchronizer) AddToCart(ctx context.Context, productID, quantity int) error {
	userID, gen := s.snapshot()
	if userID == "" {
		s.notify.Warning("Login required")
		return domain.ErrLoginRequired
	}
	if quantity < 1 {
		quantity = 1
	}

	unlock := s.keys.lock(productID)
	defer unlock()

	items, err := s.client.AddCartItem(ctx, userID, productID, quantity)
	if err != nil {
		s.log.Errorf("Synchronizer: cart add error for product %d: %v", productID, err)
		s.notify.Error("Cart add failed")
		return err
	}

	s.mu.Lock()
	if gen == s.generation {
		s.cart = items
	}
	s.mu.Unlock()

	s.notify.Success("Added to cart")
	return nil
}

// UpdateCartQuantity PUTs the new quantity and patches just the matching
// item in the mirror. Quantities below 1 delegate to RemoveFromCart.
func (s *Synchronizer) UpdateCartQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return s.RemoveFromCart(ctx, productID)
	}

	userID, gen := s.snapshot()
	if userID == "" {
		s.notify.Warning("Login required")
		return domain.ErrLoginRequired
	}

	unlock := s.keys.lock(productID)
	defer unlock()

	if err := s.client.UpdateCartItem(ctx, userID, productID, quantity); err != nil {
		s.log.Errorf("Synchronizer: cart update error for product %d: %v", productID, err)
		s.notify.Error("Cart update failed")
		return err
	}

	s.mu.Lock()
	if gen == s.generation {
		for i := range s.cart {
			if s.cart[i].Product.ID == productID {
				s.cart[i].Quantity = quantity
			}
		}
	}
	s.mu.Unlock()

	s.notify.Success("Cart updated")
	return nil
}

// RemoveFromCart DELETEs the item and filters it out of the mirror on
// success.
func (s *Synchronizer) RemoveFromCart(ctx context.Context, productID int) error {
	userID, gen := s.snapshot()
	if userID == "" {
		s.notify.Warning("Login required")
		return domain.ErrLoginRequired
	}

	unlock := s.keys.lock(productID)
	defer unlock()

	if err := s.client.RemoveCartItem(ctx, userID, productID); err != nil {
		s.log.Errorf("Synchronizer: cart remove error for product %d: %v", productID, err)
		s.notify.Error("Failed to remove from cart")
		return err
	}

	s.mu.Lock()
	if gen == s.generation {
		kept := s.cart[:0]
		for _, item := range s.cart {
			if item.Product.ID != productID {
				kept = append(kept, item)
			}
		}
		s.cart = kept
	}
	s.mu.Unlock()

	s.notify.Success("Removed from cart")
	return nil
}

// Wishlist returns the mirrored product id set.
func (s *Synchronizer) Wishlist() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.wishlist...)
}

func (s *Synchronizer) Contains(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsID(s.wishlist, productID)
}

func (s *Synchronizer) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...)
}

// InStockCart filters the mirror down to in-stock items, the only ones
// customer-facing views and the checkout total consider.
func (s *Synchronizer) InStockCart() []domain.CartItem {
	items := s.Cart()
	kept := items[:0]
	for _, item := range items {
		if item.Product.InStock() {
			kept = append(kept, item)
		}
	}
	return kept
}

// CartTotal sums price times quantity over in-stock items.
func (s *Synchronizer) CartTotal() float64 {
	var total float64
	for _, item := range s.InStockCart() {
		total += item.Subtotal()
	}
	return total
}

func (s *Synchronizer) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []int, id int) []int {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	carterrors "go-cart-api/internal/cart/errors"
	"go-cart-api/internal/cloudsync"
	"go-cart-api/internal/store/cloudstore"
	"go-cart-api/internal/store/localstore"
)

// Manager owns the cart of one device session and runs the reconciliation
// protocol between the device-local store and the account-level cloud store.
//
// All mutations are serialized behind the session lock and applied to the
// in-memory cart first; persistence follows without the caller waiting on
// the network. Guests write the local store synchronously, signed-in users
// get a fire-and-forget cloud write through the sync queue. Until Initialize
// has run, every mutation fails with ErrNotInitialized.
type Manager struct {
	mu          sync.Mutex
	deviceID    string
	identity    string
	cart        Cart
	initialized bool

	local localstore.Store
	cloud cloudstore.Store
	queue *cloudsync.Queue
	now   func() time.Time
}

func NewManager(deviceID string, local localstore.Store, cloud cloudstore.Store, queue *cloudsync.Queue) *Manager {
	return &Manager{
		deviceID: deviceID,
		local:    local,
		cloud:    cloud,
		queue:    queue,
		now:      time.Now,
	}
}

func localCartKey(deviceID string) string {
	return "cart:device:" + deviceID
}

// Initialize loads the session cart. With a resolved identity and an existing
// cloud cart, the local cart merges into the cloud copy, the merged result is
// written back, and local storage is cleared. Otherwise the local cart is
// adopted unchanged. Idempotent; safe to retry after a failure.
func (m *Manager) Initialize(ctx context.Context, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	m.identity = identity

	local := m.readLocal()

	if identity == "" {
		// No identity is not an error: guests simply have no cloud cart.
		m.cart = local
		m.initialized = true
		return nil
	}

	cloud, err := m.cloud.GetCart(ctx, identity)
	if err != nil {
		// Storage trouble degrades to "no cloud cart"; the session still
		// starts, and the next write repopulates the cloud copy.
		log.Printf("[SYNC] cloud read failed for %s: %v", identity, err)
		cloud = nil
	}

	if cloud == nil {
		m.cart = local
		m.initialized = true
		return nil
	}

	merged := MergeCarts(local, *cloud)
	merged.UpdatedAt = m.now()
	if err := m.cloud.PutCart(ctx, identity, merged); err != nil {
		log.Printf("[SYNC] cloud write failed for %s: %v", identity, err)
	}
	m.local.Remove(localCartKey(m.deviceID))

	m.cart = merged
	m.initialized = true
	return nil
}

// SyncOnLogin binds the session to a freshly authenticated identity. The
// current in-memory cart (which may hold guest-added items) merges into any
// pre-existing cloud cart; without one the current cart is pushed up as-is.
// Local storage is cleared either way: post-login the cloud copy is the
// source of truth.
func (m *Manager) SyncOnLogin(ctx context.Context, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return carterrors.ErrNotInitialized
	}
	if identity == "" {
		return carterrors.ErrIdentityRequired
	}
	m.identity = identity

	cloud, err := m.cloud.GetCart(ctx, identity)
	if err != nil {
		log.Printf("[SYNC] cloud read failed for %s: %v", identity, err)
		cloud = nil
	}

	next := m.cart
	if cloud != nil {
		next = MergeCarts(m.cart, *cloud)
	}
	next.UpdatedAt = m.now()

	if err := m.cloud.PutCart(ctx, identity, next); err != nil {
		log.Printf("[SYNC] cloud write failed for %s: %v", identity, err)
	}
	m.local.Remove(localCartKey(m.deviceID))

	m.cart = next
	return nil
}

// Logout clears every device-local, session-scoped trace and returns the
// session to an empty guest cart. The cloud cart is deliberately untouched:
// it must survive for the account's next login.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.local.Remove(localCartKey(m.deviceID))
	m.identity = ""
	m.cart = Cart{}
	m.initialized = true
}

func (m *Manager) AddItem(item LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return carterrors.ErrNotInitialized
	}
	m.cart.AddItem(item)
	m.persistLocked()
	return nil
}

func (m *Manager) UpdateQuantity(productID string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return carterrors.ErrNotInitialized
	}
	if !m.cart.UpdateQuantity(productID, qty) {
		return carterrors.ErrItemNotFound
	}
	m.persistLocked()
	return nil
}

func (m *Manager) RemoveItem(productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return carterrors.ErrNotInitialized
	}
	if !m.cart.RemoveItem(productID) {
		return carterrors.ErrItemNotFound
	}
	m.persistLocked()
	return nil
}

func (m *Manager) ApplyCoupon(coupon AppliedCoupon) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return carterrors.ErrNotInitialized
	}
	m.cart.ApplyCoupon(coupon)
	m.persistLocked()
	return nil
}

func (m *Manager) RemoveCoupon() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return carterrors.ErrNotInitialized
	}
	m.cart.RemoveCoupon()
	m.persistLocked()
	return nil
}

// Clear empties the cart after a successful order. The cloud record is
// overwritten with an empty cart, not deleted.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return carterrors.ErrNotInitialized
	}
	m.cart.Clear()
	m.persistLocked()
	return nil
}

// Snapshot returns a copy of the current cart and the bound identity.
func (m *Manager) Snapshot() (Cart, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Clone(), m.identity
}

// persistLocked stamps and persists the current cart. Callers hold the lock.
func (m *Manager) persistLocked() {
	m.cart.UpdatedAt = m.now()

	if m.identity == "" {
		m.writeLocal()
		return
	}
	m.queue.Enqueue(m.identity, m.cart.Clone())
}

func (m *Manager) readLocal() Cart {
	raw := m.local.Get(localCartKey(m.deviceID))
	if raw == "" {
		return Cart{}
	}
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		// Unreadable local data degrades to an empty cart.
		log.Printf("[SYNC] discarding unreadable local cart for device %s: %v", m.deviceID, err)
		return Cart{}
	}
	return c
}

func (m *Manager) writeLocal() {
	raw, err := json.Marshal(m.cart)
	if err != nil {
		log.Printf("[SYNC] local write failed for device %s: %v", m.deviceID, err)
		return
	}
	m.local.Set(localCartKey(m.deviceID), string(raw))
}

// Package coordinator orchestrates user intents across the gateway and
// the state store. Every operation follows the same shape: mark the
// slice loading, call the backend, commit the payload or the error, and
// drop the loading flag no matter which branch ran. Errors are also
// returned so the UI can show a one-off notice; there are no automatic
// retries.
//
// Known limitation: in-flight responses are committed whenever they
// resolve. Two racing calls against the same slice both land, and the
// last one to complete wins scalar fields such as the cart totals.
package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"shopfront/internal/apperr"
	"shopfront/internal/domain"
	"shopfront/internal/gateway"
	"shopfront/internal/localstore"
	applog "shopfront/internal/log"
	"shopfront/internal/state"
)

type Coordinator struct {
	GW    *gateway.Client
	Store *state.Store
	Local *localstore.Store
}

func New(gw *gateway.Client, st *state.Store, local *localstore.Store) *Coordinator {
	return &Coordinator{GW: gw, Store: st, Local: local}
}

func (co *Coordinator) begin(sl state.Slice) {
	co.Store.Dispatch(
		state.SetLoading{Slice: sl, On: true},
		state.SetError{Slice: sl, Msg: ""},
	)
}

// fail commits the human-readable message to the slice and re-raises.
// A 401 means the stored token is dead; it is discarded here so later
// requests do not keep attaching it.
func (co *Coordinator) fail(sl state.Slice, op string, err error) error {
	applog.OpError(op, err, nil)
	if apperr.Is(err, apperr.CodeUnauthenticated) {
		co.discardSession()
	}
	co.Store.Dispatch(
		state.SetError{Slice: sl, Msg: apperr.Message(err)},
		state.SetLoading{Slice: sl, On: false},
	)
	return err
}

func (co *Coordinator) done(sl state.Slice) {
	co.Store.Dispatch(state.SetLoading{Slice: sl, On: false})
}

// ---------- Session ----------

func (co *Coordinator) Login(ctx context.Context, email, password string) error {
	co.begin(state.SliceSession)
	resp, err := co.GW.Login(ctx, gateway.Credentials{Email: email, Password: password})
	if err != nil {
		return co.fail(state.SliceSession, "session.login", err)
	}
	co.persistSession(resp)
	co.Store.Dispatch(state.SetSession{User: resp.User})
	co.done(state.SliceSession)

	// Dependent loads. A partial failure does not roll back the login;
	// each slice keeps its own error.
	_ = co.LoadCart(ctx)
	_ = co.LoadOrders(ctx, 1, 20)
	_ = co.LoadMyStore(ctx)
	return nil
}

func (co *Coordinator) Register(ctx context.Context, reg gateway.Registration) error {
	co.begin(state.SliceSession)
	resp, err := co.GW.Register(ctx, reg)
	if err != nil {
		return co.fail(state.SliceSession, "session.register", err)
	}
	co.persistSession(resp)
	co.Store.Dispatch(state.SetSession{User: resp.User})
	co.done(state.SliceSession)
	return nil
}

func (co *Coordinator) persistSession(resp gateway.AuthResponse) {
	_ = co.Local.Set(localstore.KeyAuthToken, resp.Token)
	_ = co.Local.Set(localstore.KeyRefreshToken, resp.RefreshToken)
	if b, err := json.Marshal(resp.User); err == nil {
		_ = co.Local.Set(localstore.KeyUserData, string(b))
	}
	_ = co.Local.Set(localstore.KeyUserType, resp.User.Role)
}

// Logout revokes server-side best effort, then clears local keys and
// user-scoped slices regardless of the call's outcome.
func (co *Coordinator) Logout(ctx context.Context) {
	if err := co.GW.Logout(ctx); err != nil {
		applog.OpError("session.logout", err, nil)
	}
	co.discardSession()
	co.Store.Dispatch(state.Logout{})
}

func (co *Coordinator) discardSession() {
	_ = co.Local.Delete(localstore.KeyAuthToken)
	_ = co.Local.Delete(localstore.KeyRefreshToken)
	_ = co.Local.Delete(localstore.KeyUserData)
	_ = co.Local.Delete(localstore.KeyUserType)
	_ = co.Local.Delete(localstore.KeyHasSecondhand)
}

// RestoreSession checks a persisted token against the backend at startup.
// A stale token is discarded silently; any other failure surfaces on the
// session slice.
func (co *Coordinator) RestoreSession(ctx context.Context) error {
	if co.Local.AuthToken() == "" {
		return nil
	}
	co.begin(state.SliceSession)
	u, err := co.GW.Me(ctx)
	if err != nil {
		if apperr.Is(err, apperr.CodeUnauthenticated) {
			co.discardSession()
			co.done(state.SliceSession)
			return nil
		}
		return co.fail(state.SliceSession, "session.restore", err)
	}
	co.Store.Dispatch(state.SetSession{User: u})
	co.done(state.SliceSession)

	_ = co.LoadCart(ctx)
	_ = co.LoadOrders(ctx, 1, 20)
	_ = co.LoadMyStore(ctx)
	return nil
}

// ---------- Catalog ----------

func (co *Coordinator) LoadProducts(ctx context.Context, q gateway.ProductQuery) error {
	co.begin(state.SliceCatalog)
	page, err := co.GW.Products(ctx, q)
	if err != nil {
		return co.fail(state.SliceCatalog, "catalog.products", err)
	}
	co.Store.Dispatch(state.SetProducts{Products: page.Products})
	co.done(state.SliceCatalog)
	return nil
}

func (co *Coordinator) SearchProducts(ctx context.Context, q gateway.ProductQuery) error {
	co.begin(state.SliceCatalog)
	page, err := co.GW.SearchProducts(ctx, q)
	if err != nil {
		return co.fail(state.SliceCatalog, "catalog.search", err)
	}
	co.Store.Dispatch(state.SetProducts{Products: page.Products})
	co.done(state.SliceCatalog)
	return nil
}

func (co *Coordinator) LoadFeatured(ctx context.Context) error {
	co.begin(state.SliceCatalog)
	ps, err := co.GW.FeaturedProducts(ctx)
	if err != nil {
		return co.fail(state.SliceCatalog, "catalog.featured", err)
	}
	co.Store.Dispatch(state.SetFeatured{Products: ps})
	co.done(state.SliceCatalog)
	return nil
}

func (co *Coordinator) LoadCategories(ctx context.Context) error {
	co.begin(state.SliceCatalog)
	cats, err := co.GW.Categories(ctx)
	if err != nil {
		return co.fail(state.SliceCatalog, "catalog.categories", err)
	}
	co.Store.Dispatch(state.SetCategories{Categories: cats})
	co.done(state.SliceCatalog)
	return nil
}

// ---------- Cart ----------
// Cart mutations are pessimistic: only the server's copy of the cart is
// committed, and every mutation re-requests the computed totals so the
// displayed numbers cannot drift from what would be billed.

func (co *Coordinator) AddToCart(ctx context.Context, productID string, qty int, size, color string) error {
	co.begin(state.SliceCart)
	payload, err := co.GW.CartAdd(ctx, gateway.CartAddRequest{
		ProductID: productID, Quantity: qty, Size: size, Color: color,
	})
	if err != nil {
		return co.fail(state.SliceCart, "cart.add", err)
	}
	co.Store.Dispatch(state.SetCartItems{Lines: payload.Items})
	return co.refreshTotals(ctx, "cart.add")
}

func (co *Coordinator) UpdateCartItem(ctx context.Context, productID string, qty int, size, color string) error {
	co.begin(state.SliceCart)
	payload, err := co.GW.CartUpdateItem(ctx, productID, gateway.CartItemUpdate{
		Quantity: qty, Size: size, Color: color,
	})
	if err != nil {
		return co.fail(state.SliceCart, "cart.update", err)
	}
	co.Store.Dispatch(state.SetCartItems{Lines: payload.Items})
	return co.refreshTotals(ctx, "cart.update")
}

func (co *Coordinator) RemoveCartItem(ctx context.Context, productID, size, color string) error {
	co.begin(state.SliceCart)
	payload, err := co.GW.CartRemoveItem(ctx, productID, size, color)
	if err != nil {
		return co.fail(state.SliceCart, "cart.remove", err)
	}
	co.Store.Dispatch(state.SetCartItems{Lines: payload.Items})
	return co.refreshTotals(ctx, "cart.remove")
}

func (co *Coordinator) ClearCart(ctx context.Context) error {
	co.begin(state.SliceCart)
	if err := co.GW.CartClear(ctx); err != nil {
		return co.fail(state.SliceCart, "cart.clear", err)
	}
	co.Store.Dispatch(state.ClearCart{})
	co.done(state.SliceCart)
	return nil
}

func (co *Coordinator) LoadCart(ctx context.Context) error {
	co.begin(state.SliceCart)
	return co.refreshTotals(ctx, "cart.load")
}

// refreshTotals pulls the authoritative cart + totals and closes out the
// in-flight cart operation.
func (co *Coordinator) refreshTotals(ctx context.Context, op string) error {
	calc, err := co.GW.CartCalculate(ctx, "")
	if err != nil {
		return co.fail(state.SliceCart, op, err)
	}
	co.Store.Dispatch(
		state.SetCartItems{Lines: calc.Items},
		state.SetCartTotals{Totals: calc.CartTotals},
	)
	co.done(state.SliceCart)
	return nil
}

// ---------- Orders ----------

// CreateOrder clears the cart only after the backend confirms the order;
// never optimistically.
func (co *Coordinator) CreateOrder(ctx context.Context, req gateway.OrderRequest) (domain.Order, error) {
	co.begin(state.SliceOrders)
	o, err := co.GW.CreateOrder(ctx, req)
	if err != nil {
		return domain.Order{}, co.fail(state.SliceOrders, "orders.create", err)
	}
	co.Store.Dispatch(
		state.AddOrder{Order: o},
		state.ClearCart{},
	)
	co.done(state.SliceOrders)
	applog.Op("orders.created", map[string]any{"order_id": o.ID, "total": o.Totals.Total})
	return o, nil
}

func (co *Coordinator) LoadOrders(ctx context.Context, page, limit int) error {
	co.begin(state.SliceOrders)
	resp, err := co.GW.MyOrders(ctx, page, limit)
	if err != nil {
		return co.fail(state.SliceOrders, "orders.load", err)
	}
	co.Store.Dispatch(state.SetOrders{Orders: resp.Orders})
	co.done(state.SliceOrders)
	return nil
}

// ---------- Stores ----------

func (co *Coordinator) LoadStores(ctx context.Context) error {
	co.begin(state.SliceShops)
	stores, err := co.GW.Stores(ctx)
	if err != nil {
		return co.fail(state.SliceShops, "stores.load", err)
	}
	co.Store.Dispatch(state.SetStores{Stores: stores})
	co.done(state.SliceShops)
	return nil
}

// LoadMyStore records store ownership for seller accounts. Not owning a
// store is a normal outcome, not an error.
func (co *Coordinator) LoadMyStore(ctx context.Context) error {
	co.begin(state.SliceShops)
	s, err := co.GW.MyStore(ctx)
	if err != nil {
		if apperr.Is(err, apperr.CodeRemote) && statusOf(err) == 404 {
			co.Store.Dispatch(state.SetMyStore{Store: nil})
			_ = co.Local.Set(localstore.KeyHasSecondhand, "false")
			co.done(state.SliceShops)
			return nil
		}
		return co.fail(state.SliceShops, "stores.mine", err)
	}
	co.Store.Dispatch(state.SetMyStore{Store: &s})
	_ = co.Local.Set(localstore.KeyHasSecondhand, strconv.FormatBool(s.Secondhand))
	co.done(state.SliceShops)
	return nil
}

func (co *Coordinator) FollowStore(ctx context.Context, storeID string) error {
	co.begin(state.SliceShops)
	updated, err := co.GW.FollowStore(ctx, storeID)
	if err != nil {
		return co.fail(state.SliceShops, "stores.follow", err)
	}
	// Patch the single store in place.
	snap := co.Store.Snapshot()
	stores := make([]domain.Store, len(snap.Shops.Stores))
	copy(stores, snap.Shops.Stores)
	for i := range stores {
		if stores[i].ID == updated.ID {
			stores[i] = updated
		}
	}
	co.Store.Dispatch(state.SetStores{Stores: stores})
	co.done(state.SliceShops)
	return nil
}

func statusOf(err error) int {
	var ae *apperr.AppError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

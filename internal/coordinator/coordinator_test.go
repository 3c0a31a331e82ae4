package coordinator

import (
	"context"
	"net"
	"testing"

	"shopfront/internal/apperr"
	"shopfront/internal/domain"
	"shopfront/internal/gateway"
	"shopfront/internal/localstore"
	"shopfront/internal/state"
	"shopfront/internal/stub"
)

// startBackend serves the in-memory backend on a loopback port so the
// gateway's real HTTP client has a live peer to talk to.
func startBackend(t *testing.T) string {
	t.Helper()
	app := stub.NewBackend().App()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func fixture(t *testing.T) *Coordinator {
	t.Helper()
	local, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = local.Close() })
	gw := gateway.NewClient(startBackend(t), local)
	return New(gw, state.NewStore(), local)
}

func login(t *testing.T, co *Coordinator, email string) {
	t.Helper()
	if err := co.Login(context.Background(), email, "Passw0rd!"); err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
}

func TestLogin(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")

	s := co.Store.Snapshot()
	if !s.Session.Authenticated || s.Session.User == nil || s.Session.User.Email != "shopper@shopfront.test" {
		t.Fatalf("session not established: %+v", s.Session)
	}
	if s.Session.Loading || s.Session.Error != "" {
		t.Fatalf("session should be settled: %+v", s.Session)
	}
	if co.Local.AuthToken() == "" {
		t.Fatal("token not persisted")
	}
	if v, ok, _ := co.Local.Get(localstore.KeyUserType); !ok || v != "USER" {
		t.Fatalf("userType key: %q ok=%v", v, ok)
	}
	// Dependent loads settled too.
	if s.Cart.Loading || s.Orders.Loading {
		t.Fatalf("dependent slices still loading: %+v", s)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	co := fixture(t)
	err := co.Login(context.Background(), "shopper@shopfront.test", "wrong")
	if err == nil {
		t.Fatal("want error")
	}
	if !apperr.Is(err, apperr.CodeUnauthenticated) {
		t.Fatalf("want UNAUTHENTICATED, got %v", err)
	}
	s := co.Store.Snapshot()
	if s.Session.Error == "" || s.Session.Loading || s.Session.Authenticated {
		t.Fatalf("failure must land on the slice: %+v", s.Session)
	}
	if co.Local.AuthToken() != "" {
		t.Fatal("no token should persist on failed login")
	}
}

func TestAddToCartMergesAndRefreshesTotals(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")
	ctx := context.Background()

	if err := co.AddToCart(ctx, "p1", 1, "M", "black"); err != nil {
		t.Fatal(err)
	}
	if err := co.AddToCart(ctx, "p1", 2, "M", "black"); err != nil {
		t.Fatal(err)
	}

	s := co.Store.Snapshot()
	if len(s.Cart.Lines) != 1 || s.Cart.Lines[0].Qty != 3 {
		t.Fatalf("same variant must merge: %+v", s.Cart.Lines)
	}
	// 3 x 89 = 267, free shipping, 8% tax.
	if s.Cart.Totals.Subtotal != 267 || s.Cart.Totals.Shipping != 0 {
		t.Fatalf("totals: %+v", s.Cart.Totals)
	}
	if s.Cart.Totals.Total != 288.36 {
		t.Fatalf("total: %v", s.Cart.Totals.Total)
	}
	if s.Cart.Loading || s.Cart.Error != "" {
		t.Fatalf("cart should be settled: %+v", s.Cart)
	}

	if err := co.AddToCart(ctx, "p1", 1, "L", "black"); err != nil {
		t.Fatal(err)
	}
	if got := len(co.Store.Snapshot().Cart.Lines); got != 2 {
		t.Fatalf("distinct variant adds a line, got %d", got)
	}
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")
	ctx := context.Background()

	_ = co.AddToCart(ctx, "p3", 1, "one-size", "natural")
	if err := co.UpdateCartItem(ctx, "p3", 4, "one-size", "natural"); err != nil {
		t.Fatal(err)
	}
	s := co.Store.Snapshot()
	if s.Cart.Lines[0].Qty != 4 {
		t.Fatalf("update not committed: %+v", s.Cart.Lines)
	}

	if err := co.RemoveCartItem(ctx, "p3", "one-size", "natural"); err != nil {
		t.Fatal(err)
	}
	s = co.Store.Snapshot()
	if len(s.Cart.Lines) != 0 {
		t.Fatalf("remove not committed: %+v", s.Cart.Lines)
	}
	if s.Cart.Totals.Total != 0 {
		t.Fatalf("totals should follow the empty cart: %+v", s.Cart.Totals)
	}
}

func TestAddToCartFailureKeepsCart(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")
	ctx := context.Background()

	_ = co.AddToCart(ctx, "p1", 1, "M", "black")
	if err := co.AddToCart(ctx, "missing", 1, "M", "black"); err == nil {
		t.Fatal("want error for unknown product")
	}
	s := co.Store.Snapshot()
	if s.Cart.Error == "" || s.Cart.Loading {
		t.Fatalf("cart slice should record the failure: %+v", s.Cart)
	}
	if len(s.Cart.Lines) != 1 {
		t.Fatalf("prior cart contents must survive: %+v", s.Cart.Lines)
	}

	// A later success clears the slice error.
	if err := co.AddToCart(ctx, "p4", 1, "one-size", "navy"); err != nil {
		t.Fatal(err)
	}
	if got := co.Store.Snapshot().Cart.Error; got != "" {
		t.Fatalf("success must clear the error, got %q", got)
	}
}

func TestCreateOrder(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")
	ctx := context.Background()

	_ = co.AddToCart(ctx, "p1", 2, "M", "black")
	o, err := co.CreateOrder(ctx, gateway.OrderRequest{
		ShippingAddress: domain.Address{Name: "Sam Shopper", Street: "1 Main St", City: "Testville", Zip: "12345"},
		PaymentMethod:   "card",
	})
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != domain.OrderPending {
		t.Fatalf("new orders are pending, got %s", o.Status)
	}

	s := co.Store.Snapshot()
	if len(s.Cart.Lines) != 0 || s.Cart.Totals.Total != 0 {
		t.Fatalf("cart must clear after a confirmed order: %+v", s.Cart)
	}
	if len(s.Orders.Orders) != 1 || s.Orders.Orders[0].ID != o.ID {
		t.Fatalf("order not committed to state: %+v", s.Orders.Orders)
	}
}

func TestCreateOrderEmptyCartFails(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")

	_, err := co.CreateOrder(context.Background(), gateway.OrderRequest{PaymentMethod: "card"})
	if err == nil {
		t.Fatal("want error for empty cart")
	}
	s := co.Store.Snapshot()
	if s.Orders.Error == "" || s.Orders.Loading {
		t.Fatalf("orders slice should record the failure: %+v", s.Orders)
	}
	if len(s.Orders.Orders) != 0 {
		t.Fatalf("no order should be committed: %+v", s.Orders.Orders)
	}
}

func TestLogoutPreservesPublicData(t *testing.T) {
	co := fixture(t)
	ctx := context.Background()
	if err := co.LoadProducts(ctx, gateway.ProductQuery{}); err != nil {
		t.Fatal(err)
	}
	if err := co.LoadCategories(ctx); err != nil {
		t.Fatal(err)
	}
	login(t, co, "shopper@shopfront.test")
	_ = co.AddToCart(ctx, "p1", 1, "M", "black")

	co.Logout(ctx)

	s := co.Store.Snapshot()
	if s.Session.Authenticated || s.Session.User != nil {
		t.Fatalf("session must clear: %+v", s.Session)
	}
	if len(s.Cart.Lines) != 0 {
		t.Fatalf("cart must clear: %+v", s.Cart.Lines)
	}
	if len(s.Catalog.Products) == 0 || len(s.Catalog.Categories) == 0 {
		t.Fatal("public catalog must survive a logout")
	}
	if co.Local.AuthToken() != "" {
		t.Fatal("token must be discarded")
	}
	if _, ok, _ := co.Local.Get(localstore.KeyUserData); ok {
		t.Fatal("user data must be discarded")
	}
}

func TestRestoreSession(t *testing.T) {
	co := fixture(t)
	login(t, co, "seller@shopfront.test")
	tok := co.Local.AuthToken()

	// Fresh in-memory state, same local store, as after a restart.
	co2 := New(co.GW, state.NewStore(), co.Local)
	if err := co2.RestoreSession(context.Background()); err != nil {
		t.Fatal(err)
	}
	s := co2.Store.Snapshot()
	if !s.Session.Authenticated || s.Session.User.Email != "seller@shopfront.test" {
		t.Fatalf("session not restored: %+v", s.Session)
	}
	if co2.Local.AuthToken() != tok {
		t.Fatal("token should survive a restore")
	}
	if s.Shops.Mine == nil || !s.Shops.Mine.Secondhand {
		t.Fatalf("seller store not loaded: %+v", s.Shops.Mine)
	}
	if v, _, _ := co2.Local.Get(localstore.KeyHasSecondhand); v != "true" {
		t.Fatalf("hasSecondhandStore key: %q", v)
	}
}

func TestRestoreSessionStaleToken(t *testing.T) {
	co := fixture(t)
	_ = co.Local.Set(localstore.KeyAuthToken, "not-a-real-token")

	if err := co.RestoreSession(context.Background()); err != nil {
		t.Fatalf("stale token must be discarded silently: %v", err)
	}
	s := co.Store.Snapshot()
	if s.Session.Authenticated || s.Session.Error != "" {
		t.Fatalf("no session, no error: %+v", s.Session)
	}
	if co.Local.AuthToken() != "" {
		t.Fatal("stale token must be removed")
	}
}

func TestRestoreSessionNoToken(t *testing.T) {
	co := fixture(t)
	if err := co.RestoreSession(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v := co.Store.Version(); v != 0 {
		t.Fatalf("no token means no dispatches, version %d", v)
	}
}

func TestLoadMyStoreWithoutStore(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")

	s := co.Store.Snapshot()
	if s.Shops.Mine != nil {
		t.Fatalf("shopper owns no store: %+v", s.Shops.Mine)
	}
	if s.Shops.Error != "" {
		t.Fatalf("owning no store is not an error: %q", s.Shops.Error)
	}
	if v, _, _ := co.Local.Get(localstore.KeyHasSecondhand); v != "false" {
		t.Fatalf("hasSecondhandStore key: %q", v)
	}
}

func TestFollowStorePatchesListing(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")
	ctx := context.Background()

	if err := co.LoadStores(ctx); err != nil {
		t.Fatal(err)
	}
	before := co.Store.Snapshot().Shops.Stores[0]

	if err := co.FollowStore(ctx, before.ID); err != nil {
		t.Fatal(err)
	}
	after := co.Store.Snapshot().Shops.Stores[0]
	if after.Followers != before.Followers+1 {
		t.Fatalf("follower count not patched: %d -> %d", before.Followers, after.Followers)
	}
}

func TestSearchProducts(t *testing.T) {
	co := fixture(t)
	if err := co.SearchProducts(context.Background(), gateway.ProductQuery{Search: "sneaker"}); err != nil {
		t.Fatal(err)
	}
	s := co.Store.Snapshot()
	if len(s.Catalog.Products) != 1 || s.Catalog.Products[0].ID != "p2" {
		t.Fatalf("search results: %+v", s.Catalog.Products)
	}
}

func TestRevokedTokenDiscardedOn401(t *testing.T) {
	co := fixture(t)
	login(t, co, "shopper@shopfront.test")
	ctx := context.Background()

	// The server no longer knows this token; the next call must both
	// surface the 401 and drop the dead token.
	_ = co.Local.Set(localstore.KeyAuthToken, "revoked-token")

	err := co.AddToCart(ctx, "p1", 1, "M", "black")
	if !apperr.Is(err, apperr.CodeUnauthenticated) {
		t.Fatalf("want UNAUTHENTICATED, got %v", err)
	}
	if tok := co.Local.AuthToken(); tok != "" {
		t.Fatalf("dead token must be discarded, still have %q", tok)
	}
	if _, ok, _ := co.Local.Get(localstore.KeyUserData); ok {
		t.Fatal("session keys must be discarded with the token")
	}
}

func TestUnauthenticatedCartAccess(t *testing.T) {
	co := fixture(t)
	err := co.AddToCart(context.Background(), "p1", 1, "M", "black")
	if !apperr.Is(err, apperr.CodeUnauthenticated) {
		t.Fatalf("want UNAUTHENTICATED, got %v", err)
	}
}

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	coreauth "storefront-api/internal/core/auth"
	"storefront-api/internal/core/session"
	"storefront-api/internal/domain"
	featauth "storefront-api/internal/feature/auth"
	"storefront-api/internal/feature/cart"
	"storefront-api/internal/feature/catalog"
	"storefront-api/internal/transport/http/handler"
	"storefront-api/pkg/utils"
)

type fakeUsers struct {
	byEmail map[string]*domain.User
	nextID  uint
}

func (f *fakeUsers) Create(u *domain.User) error {
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = u
	return nil
}
func (f *fakeUsers) FindByID(id uint) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUsers) FindByEmail(email string) (*domain.User, error) { return f.byEmail[email], nil }

type fakeProducts struct {
	byID map[uint]domain.Product
}

func (f *fakeProducts) Create(p *domain.Product) error {
	p.ID = uint(len(f.byID) + 1)
	f.byID[p.ID] = *p
	return nil
}
func (f *fakeProducts) FindByID(id uint) (*domain.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
func (f *fakeProducts) Update(p *domain.Product) error { f.byID[p.ID] = *p; return nil }
func (f *fakeProducts) Delete(id uint) error           { delete(f.byID, id); return nil }
func (f *fakeProducts) Search(params domain.ListParams) ([]domain.Product, int64, error) {
	var all []domain.Product
	for _, p := range f.byID {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if params.Search != "" && !strings.Contains(p.Description, params.Search) {
			continue
		}
		all = append(all, p)
	}
	return all, int64(len(all)), nil
}

func newTestEngine(t *testing.T) (*gin.Engine, *fakeUsers, *fakeProducts) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUsers{byEmail: map[string]*domain.User{}}
	products := &fakeProducts{byID: map[uint]domain.Product{
		7: {ID: 7, Description: "Wireless mouse", Price: 10.00, Category: "electronics"},
		8: {ID: 8, Description: "Ceramic mug", Price: 7.75, Category: "kitchen"},
	}}

	log := zap.NewNop()
	jwter := &coreauth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
	authSvc := featauth.New(users, jwter)
	catalogSvc := catalog.New(products, nil, 0)
	cartSvc := cart.New(products, session.NewMemoryStore())

	r := NewAPIEngine(Deps{
		Log:           log,
		JWTer:         jwter,
		Auth:          handler.NewAuthHandler(authSvc, log),
		Catalog:       handler.NewCatalogHandler(catalogSvc, log),
		Cart:          handler.NewCartHandler(cartSvc, log),
		SessionCookie: "store_session",
		SessionTTL:    time.Hour,
	})
	return r, users, products
}

func do(t *testing.T, r *gin.Engine, method, path, body, sid string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if sid != "" {
		req.Header.Set("X-Session-ID", sid)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterLoginFlow(t *testing.T) {
	r, _, _ := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/register",
		`{"name":"A","email":"a@x.com","password":"password1","password_confirmation":"password1"}`, "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Registration successful", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
	_, leaked := user["password"]
	assert.False(t, leaked)

	w = do(t, r, http.MethodPost, "/login", `{"email":"a@x.com","password":"password1"}`, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "/store", body["redirect"])
	assert.NotEmpty(t, body["token"])
}

func TestRegisterValidation(t *testing.T) {
	r, _, _ := newTestEngine(t)

	// short password
	w := do(t, r, http.MethodPost, "/register",
		`{"name":"A","email":"a@x.com","password":"short","password_confirmation":"short"}`, "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "password")

	// mismatched confirmation
	w = do(t, r, http.MethodPost, "/register",
		`{"name":"A","email":"a@x.com","password":"password1","password_confirmation":"password2"}`, "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// duplicate email
	w = do(t, r, http.MethodPost, "/register",
		`{"name":"A","email":"a@x.com","password":"password1","password_confirmation":"password1"}`, "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/register",
		`{"name":"B","email":"a@x.com","password":"password1","password_confirmation":"password1"}`, "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body = decode(t, w)
	errs = body["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
}

func TestLoginAdminRedirectAndBadCredentials(t *testing.T) {
	r, users, _ := newTestEngine(t)
	users.byEmail["admin@x.com"] = &domain.User{
		ID: 1, Email: "admin@x.com", PasswordHash: utils.HashPassword("password1"), Role: domain.RoleAdmin,
	}

	w := do(t, r, http.MethodPost, "/login", `{"email":"admin@x.com","password":"password1"}`, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/admin/dashboard", decode(t, w)["redirect"])

	w = do(t, r, http.MethodPost, "/login", `{"email":"admin@x.com","password":"wrong"}`, "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["message"])

	w = do(t, r, http.MethodPost, "/login", `{"email":"ghost@x.com","password":"password1"}`, "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["message"])
}

func TestProductsListing(t *testing.T) {
	r, _, _ := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/products?category=electronics", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["total"])
	assert.Equal(t, float64(10), meta["per_page"])

	// invalid sort direction is a validation error
	w = do(t, r, http.MethodGet, "/products?sort_price=sideways", "", "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdminProductEndpointsRequireToken(t *testing.T) {
	r, users, products := newTestEngine(t)
	users.byEmail["admin@x.com"] = &domain.User{
		ID: 1, Email: "admin@x.com", PasswordHash: utils.HashPassword("password1"), Role: domain.RoleAdmin,
	}
	users.byEmail["cust@x.com"] = &domain.User{
		ID: 2, Email: "cust@x.com", PasswordHash: utils.HashPassword("password1"), Role: domain.RoleCustomer,
	}

	newProduct := `{"description":"Desk lamp","price":22.4,"category":"home"}`

	w := do(t, r, http.MethodPost, "/products", newProduct, "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	login := do(t, r, http.MethodPost, "/login", `{"email":"cust@x.com","password":"password1"}`, "", nil)
	custToken := decode(t, login)["token"].(string)
	w = do(t, r, http.MethodPost, "/products", newProduct, "", map[string]string{"Authorization": "Bearer " + custToken})
	require.Equal(t, http.StatusForbidden, w.Code)

	login = do(t, r, http.MethodPost, "/login", `{"email":"admin@x.com","password":"password1"}`, "", nil)
	adminToken := decode(t, login)["token"].(string)
	w = do(t, r, http.MethodPost, "/products", newProduct, "", map[string]string{"Authorization": "Bearer " + adminToken})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, products.byID, 3)
}

func TestCartLifecycle(t *testing.T) {
	r, _, _ := newTestEngine(t)
	sid := "cart-session"

	// add product 7 qty 2
	w := do(t, r, http.MethodPost, "/cart/add", `{"product_id":7,"quantity":2}`, sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	c := body["cart"].(map[string]any)
	line := c["7"].(map[string]any)
	assert.Equal(t, float64(2), line["quantity"])
	assert.Equal(t, 20.00, line["total"])
	assert.Equal(t, "Wireless mouse", line["name"])

	// view: grand total
	w = do(t, r, http.MethodGet, "/cart/view", "", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20.00, decode(t, w)["grand_total"])

	// update qty to 5
	w = do(t, r, http.MethodPut, "/cart/update", `{"product_id":7,"quantity":5}`, sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	line = decode(t, w)["cart"].(map[string]any)["7"].(map[string]any)
	assert.Equal(t, 50.00, line["total"])

	// update qty to 0 removes the line
	w = do(t, r, http.MethodPut, "/cart/update", `{"product_id":7,"quantity":0}`, sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["cart"])

	// unknown product is a 422
	w = do(t, r, http.MethodPost, "/cart/add", `{"product_id":999,"quantity":1}`, sid, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decode(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "product_id")

	// removing an item not in the cart still succeeds
	w = do(t, r, http.MethodDelete, "/cart/remove", `{"product_id":8}`, sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	r, _, _ := newTestEngine(t)
	sid := "checkout-session"

	checkout := `{"shipping_details":"12 High St","payment_method":"cash_on_delivery"}`

	// empty cart
	w := do(t, r, http.MethodPost, "/checkout", checkout, sid, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty", decode(t, w)["message"])

	// fill, then invalid payment method
	w = do(t, r, http.MethodPost, "/cart/add", `{"product_id":7,"quantity":2}`, sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/checkout", `{"shipping_details":"12 High St","payment_method":"card"}`, sid, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// successful checkout clears the cart
	w = do(t, r, http.MethodPost, "/checkout", checkout, sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	details := body["details"].(map[string]any)
	assert.Equal(t, "12 High St", details["shipping_details"])

	w = do(t, r, http.MethodGet, "/cart/view", "", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["cart"])
	assert.Equal(t, 0.0, decode(t, w)["grand_total"])
}

func TestSessionCookieIssued(t *testing.T) {
	r, _, _ := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/cart/view", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))

	cookies := w.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == "store_session" && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestEngine(t)
	w := do(t, r, http.MethodGet, "/health", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

package product

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Draketheb4dass/reaction-admin/api"
	"github.com/Draketheb4dass/reaction-admin/client"
	"github.com/Draketheb4dass/reaction-admin/config"
	"github.com/Draketheb4dass/reaction-admin/notify"
	"github.com/Draketheb4dass/reaction-admin/sandbox"
)

// newTestFacade wires the product routes over an echo instance backed by the
// sandbox commerce API with the demo catalog seeded.
func newTestFacade(t *testing.T) (*echo.Echo, *sandbox.Store) {
	t.Helper()
	store := sandbox.NewStore()
	sandbox.SeedDemoData(store)
	schema, err := sandbox.NewSchema(store)
	if err != nil {
		t.Fatalf("sandbox schema: %v", err)
	}
	backend := httptest.NewServer(sandbox.Handler(schema))
	t.Cleanup(backend.Close)

	deps := &api.Deps{
		Client: client.NewClient(config.CommerceAPIConfig{Endpoint: backend.URL, Timeout: 5 * time.Second}, backend.Client()),
	}
	e := echo.New()
	RegisterProductRoutes(e.Group("/api"), deps)
	return e, store
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) api.OperationResponse {
	t.Helper()
	var resp api.OperationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return resp
}

func TestGetProduct_ReturnsAggregateAndLocatedVariant(t *testing.T) {
	e, _ := newTestFacade(t)

	rec := doJSON(e, http.MethodGet, "/api/products/demo-product?shopId=demo-shop&variantId=demo-variant-sized&optionId=demo-option-s", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Product struct {
			ID string `json:"_id"`
		} `json:"product"`
		Variant *struct {
			ID string `json:"_id"`
		} `json:"variant"`
		Option *struct {
			ID string `json:"_id"`
		} `json:"option"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Product.ID != "demo-product" {
		t.Errorf("product = %+v", body.Product)
	}
	if body.Variant == nil || body.Variant.ID != "demo-variant-sized" {
		t.Errorf("variant = %+v", body.Variant)
	}
	if body.Option == nil || body.Option.ID != "demo-option-s" {
		t.Errorf("option = %+v", body.Option)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	e, _ := newTestFacade(t)
	rec := doJSON(e, http.MethodGet, "/api/products/ghost?shopId=demo-shop", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestArchiveProduct_ReturnsRedirectAndNotification(t *testing.T) {
	e, store := newTestFacade(t)

	rec := doJSON(e, http.MethodPost, "/api/products/demo-product/archive?shopId=demo-shop", `{"redirect":"/products"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if resp.Redirect != "/products" {
		t.Errorf("redirect = %q, want /products", resp.Redirect)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Severity != notify.SeveritySuccess {
		t.Errorf("notifications = %+v, want one success", resp.Notifications)
	}
	if p := store.Product("demo-shop", "demo-product"); p != nil {
		t.Errorf("product still present: %+v", p)
	}
}

func TestArchiveProduct_FailureReturns502WithErrorNotification(t *testing.T) {
	e, _ := newTestFacade(t)

	rec := doJSON(e, http.MethodPost, "/api/products/ghost/archive?shopId=demo-shop", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502 (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if resp.Status != "error" {
		t.Errorf("status = %q, want error", resp.Status)
	}
	if resp.Redirect != "" {
		t.Errorf("redirect = %q, want empty on failure", resp.Redirect)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Severity != notify.SeverityError {
		t.Errorf("notifications = %+v, want one error", resp.Notifications)
	}
}

func TestToggleVisibility(t *testing.T) {
	e, store := newTestFacade(t)

	rec := doJSON(e, http.MethodPost, "/api/products/demo-product/visibility?shopId=demo-shop", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if p := store.Product("demo-shop", "demo-product"); p == nil || p.IsVisible {
		t.Errorf("product = %+v, want hidden", p)
	}
}

func TestPatchProduct(t *testing.T) {
	e, store := newTestFacade(t)

	rec := doJSON(e, http.MethodPatch, "/api/products/demo-product?shopId=demo-shop", `{"title":"Patched Board"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	p := store.Product("demo-shop", "demo-product")
	if p.Title == nil || *p.Title != "Patched Board" {
		t.Errorf("title = %v, want Patched Board", p.Title)
	}
}

func TestRemoveTag(t *testing.T) {
	e, store := newTestFacade(t)

	rec := doJSON(e, http.MethodDelete, "/api/products/demo-product/tags/tag-sale?shopId=demo-shop", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	p := store.Product("demo-shop", "demo-product")
	ids := p.TagIDs()
	if len(ids) != 1 || ids[0] != "tag-new" {
		t.Errorf("tags = %v, want [tag-new]", ids)
	}
}

func TestCreateVariant(t *testing.T) {
	e, store := newTestFacade(t)

	rec := doJSON(e, http.MethodPost, "/api/products/demo-product/variants?shopId=demo-shop", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	p := store.Product("demo-shop", "demo-product")
	if len(p.Variants) != 3 {
		t.Errorf("variants = %d, want 3", len(p.Variants))
	}
}

func TestPatchVariant(t *testing.T) {
	e, store := newTestFacade(t)

	rec := doJSON(e, http.MethodPatch, "/api/products/demo-product/variants/demo-variant?shopId=demo-shop", `{"price":42.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	p := store.Product("demo-shop", "demo-product")
	if p.Variants[0].Price == nil || *p.Variants[0].Price != 42.5 {
		t.Errorf("price = %v, want 42.5", p.Variants[0].Price)
	}
}

func TestToggleVariantVisibility(t *testing.T) {
	e, store := newTestFacade(t)

	rec := doJSON(e, http.MethodPost, "/api/products/demo-product/variants/demo-variant/visibility?shopId=demo-shop", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	p := store.Product("demo-shop", "demo-product")
	if p.Variants[0].IsVisible {
		t.Error("variant still visible after toggle")
	}
}

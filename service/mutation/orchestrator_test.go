package mutation

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Draketheb4dass/reaction-admin/client"
	"github.com/Draketheb4dass/reaction-admin/config"
	"github.com/Draketheb4dass/reaction-admin/model"
	"github.com/Draketheb4dass/reaction-admin/notify"
	"github.com/Draketheb4dass/reaction-admin/sandbox"
	"github.com/Draketheb4dass/reaction-admin/service/catalog"
)

type navRecorder struct {
	paths []string
}

func (n *navRecorder) NavigateTo(path string) {
	n.paths = append(n.paths, path)
}

type harness struct {
	orch   *Orchestrator
	store  *sandbox.Store
	loader *catalog.Loader
	rec    *notify.Recorder
	nav    *navRecorder
}

// newHarness wires an orchestrator against the in-memory sandbox API with the
// demo catalog seeded (demo-product under demo-shop).
func newHarness(t *testing.T, sel catalog.Selection) *harness {
	t.Helper()
	store := sandbox.NewStore()
	sandbox.SeedDemoData(store)
	schema, err := sandbox.NewSchema(store)
	if err != nil {
		t.Fatalf("sandbox schema: %v", err)
	}
	srv := httptest.NewServer(sandbox.Handler(schema))
	t.Cleanup(srv.Close)

	c := client.NewClient(config.CommerceAPIConfig{Endpoint: srv.URL, Timeout: 5 * time.Second}, srv.Client())
	loader := catalog.NewLoader(c)
	rec := notify.NewRecorder()
	nav := &navRecorder{}
	return &harness{
		orch:   New(c, loader, rec, sel, WithNavigator(nav)),
		store:  store,
		loader: loader,
		rec:    rec,
		nav:    nav,
	}
}

func demoSelection() catalog.Selection {
	return catalog.Selection{ProductID: "demo-product", ShopID: "demo-shop"}
}

func assertOneNotification(t *testing.T, rec *notify.Recorder, severity notify.Severity) notify.Notification {
	t.Helper()
	all := rec.Notifications()
	if len(all) != 1 {
		t.Fatalf("notifications = %+v, want exactly one", all)
	}
	if all[0].Severity != severity {
		t.Fatalf("severity = %q, want %q", all[0].Severity, severity)
	}
	return all[0]
}

func TestToggleProductVisibility_SubmitsNegation(t *testing.T) {
	h := newHarness(t, demoSelection())
	ctx := context.Background()

	// Seeded product is visible, so the toggle must submit false.
	h.loader.Load(ctx, "demo-product", "demo-shop")
	if err := h.orch.ToggleProductVisibility(ctx); err != nil {
		t.Fatalf("ToggleProductVisibility: %v", err)
	}
	p := h.store.Product("demo-shop", "demo-product")
	if p == nil || p.IsVisible {
		t.Errorf("stored product = %+v, want isVisible false", p)
	}
	assertOneNotification(t, h.rec, notify.SeveritySuccess)
}

func TestToggleProductVisibility_NoProductLoaded(t *testing.T) {
	h := newHarness(t, demoSelection())

	err := h.orch.ToggleProductVisibility(context.Background())
	if err == nil {
		t.Fatal("expected error without a loaded aggregate")
	}
	assertOneNotification(t, h.rec, notify.SeverityError)
	// Remote state must be untouched.
	if p := h.store.Product("demo-shop", "demo-product"); p == nil || !p.IsVisible {
		t.Errorf("stored product = %+v, want unchanged", p)
	}
}

func TestRemoveTag_SubmitsRemainderInOrder(t *testing.T) {
	h := newHarness(t, catalog.Selection{ProductID: "p-tags", ShopID: "demo-shop"})
	h.store.SeedProduct(model.Product{
		ID:     "p-tags",
		ShopID: "demo-shop",
		Tags: []model.Tag{
			{ID: "t1", Name: "one"},
			{ID: "t2", Name: "two"},
			{ID: "t3", Name: "three"},
		},
	})
	ctx := context.Background()
	h.loader.Load(ctx, "p-tags", "demo-shop")

	if err := h.orch.RemoveTag(ctx, "t2"); err != nil {
		t.Fatalf("RemoveTag: %v", err)
	}
	p := h.store.Product("demo-shop", "p-tags")
	got := p.TagIDs()
	if len(got) != 2 || got[0] != "t1" || got[1] != "t3" {
		t.Errorf("remaining tags = %v, want [t1 t3] in order", got)
	}
	assertOneNotification(t, h.rec, notify.SeveritySuccess)
}

func TestArchiveProduct_NavigatesOnSuccess(t *testing.T) {
	h := newHarness(t, demoSelection())
	ctx := context.Background()
	product := h.loader.Load(ctx, "demo-product", "demo-shop")

	if err := h.orch.ArchiveProduct(ctx, product, "/products"); err != nil {
		t.Fatalf("ArchiveProduct: %v", err)
	}
	if p := h.store.Product("demo-shop", "demo-product"); p != nil {
		t.Errorf("product still present after archive: %+v", p)
	}
	if len(h.nav.paths) != 1 || h.nav.paths[0] != "/products" {
		t.Errorf("navigation = %v, want [/products]", h.nav.paths)
	}
	assertOneNotification(t, h.rec, notify.SeveritySuccess)
}

func TestArchiveProduct_NoRedirectNoNavigation(t *testing.T) {
	h := newHarness(t, demoSelection())
	ctx := context.Background()
	product := h.loader.Load(ctx, "demo-product", "demo-shop")

	if err := h.orch.ArchiveProduct(ctx, product, ""); err != nil {
		t.Fatalf("ArchiveProduct: %v", err)
	}
	if len(h.nav.paths) != 0 {
		t.Errorf("navigation = %v, want none", h.nav.paths)
	}
}

func TestArchiveProduct_FailureEmitsOneErrorAndNoNavigation(t *testing.T) {
	h := newHarness(t, demoSelection())

	ghost := &model.Product{ID: "ghost", ShopID: "demo-shop"}
	err := h.orch.ArchiveProduct(context.Background(), ghost, "/products")
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
	n := assertOneNotification(t, h.rec, notify.SeverityError)
	if !strings.Contains(n.Message, "Unable to archive product") {
		t.Errorf("message = %q, want the archive error prefix", n.Message)
	}
	if len(h.nav.paths) != 0 {
		t.Errorf("navigation after failure = %v, want none", h.nav.paths)
	}
}

func TestCloneProduct(t *testing.T) {
	h := newHarness(t, demoSelection())

	if err := h.orch.CloneProduct(context.Background(), ""); err != nil {
		t.Fatalf("CloneProduct: %v", err)
	}
	// The original stays; the copy gets a fresh id we cannot predict here.
	if p := h.store.Product("demo-shop", "demo-product"); p == nil {
		t.Error("original product missing after clone")
	}
	assertOneNotification(t, h.rec, notify.SeveritySuccess)
}

func TestCreateVariant_DefaultsToSelection(t *testing.T) {
	h := newHarness(t, demoSelection())

	if err := h.orch.CreateVariant(context.Background(), "", ""); err != nil {
		t.Fatalf("CreateVariant: %v", err)
	}
	p := h.store.Product("demo-shop", "demo-product")
	if len(p.Variants) != 3 {
		t.Errorf("variants = %d, want 3", len(p.Variants))
	}
	// Creation must not navigate: the new variant's id is unknown here.
	if len(h.nav.paths) != 0 {
		t.Errorf("navigation = %v, want none", h.nav.paths)
	}
	assertOneNotification(t, h.rec, notify.SeveritySuccess)
}

func TestUpdateProduct_MergesFields(t *testing.T) {
	h := newHarness(t, demoSelection())

	title := "Renamed Board"
	if err := h.orch.UpdateProduct(context.Background(), ProductFields{Title: &title}, "", ""); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	p := h.store.Product("demo-shop", "demo-product")
	if p.Title == nil || *p.Title != "Renamed Board" {
		t.Errorf("title = %v, want Renamed Board", p.Title)
	}
	// Untouched fields survive.
	if !p.IsVisible || len(p.Tags) != 2 {
		t.Errorf("product = %+v, want visibility and tags unchanged", p)
	}
}

func TestUpdateVariant_MergesFields(t *testing.T) {
	h := newHarness(t, demoSelection())

	sku := "DEMO-001-R2"
	if err := h.orch.UpdateVariant(context.Background(), VariantFields{SKU: &sku}, "demo-variant", ""); err != nil {
		t.Fatalf("UpdateVariant: %v", err)
	}
	p := h.store.Product("demo-shop", "demo-product")
	if p.Variants[0].SKU == nil || *p.Variants[0].SKU != "DEMO-001-R2" {
		t.Errorf("sku = %v, want DEMO-001-R2", p.Variants[0].SKU)
	}
}

func TestToggleVariantVisibility_SubmitsNegation(t *testing.T) {
	h := newHarness(t, demoSelection())
	ctx := context.Background()
	product := h.loader.Load(ctx, "demo-product", "demo-shop")
	variant := catalog.FindVariant(product, "demo-variant")

	if err := h.orch.ToggleVariantVisibility(ctx, variant, ""); err != nil {
		t.Fatalf("ToggleVariantVisibility: %v", err)
	}
	p := h.store.Product("demo-shop", "demo-product")
	if p.Variants[0].IsVisible {
		t.Error("variant still visible after toggle")
	}
	assertOneNotification(t, h.rec, notify.SeveritySuccess)
}

func boolPtr(b bool) *bool { return &b }

func int32Ptr(i int32) *int32 { return &i }

func TestUpdateInventory_ReplacesRecord(t *testing.T) {
	h := newHarness(t, demoSelection())
	ctx := context.Background()
	h.loader.Load(ctx, "demo-product", "demo-shop")

	in := model.InventoryInput{
		InventoryInStock: int32Ptr(5),
		CanBackorder:     boolPtr(false),
		IsEnabled:        boolPtr(true),
	}
	if err := h.orch.UpdateInventory(ctx, in, "", "demo-variant"); err != nil {
		t.Fatalf("UpdateInventory: %v", err)
	}
	info := h.store.Inventory("demo-product", "demo-variant")
	if info == nil || info.InventoryInStock == nil || *info.InventoryInStock != 5 {
		t.Errorf("inventory = %+v, want stock 5", info)
	}
	if info.CanBackorder {
		t.Error("canBackorder = true, want false")
	}
	assertOneNotification(t, h.rec, notify.SeveritySuccess)
}

func TestUpdateInventory_RefusesNonLeafVariant(t *testing.T) {
	h := newHarness(t, demoSelection())
	ctx := context.Background()
	h.loader.Load(ctx, "demo-product", "demo-shop")

	in := model.InventoryInput{
		CanBackorder: boolPtr(false),
		IsEnabled:    boolPtr(true),
	}
	err := h.orch.UpdateInventory(ctx, in, "", "demo-variant-sized")
	if err == nil || !strings.Contains(err.Error(), "child variants") {
		t.Fatalf("err = %v, want child-variant refusal", err)
	}
	if info := h.store.Inventory("demo-product", "demo-variant-sized"); info != nil {
		t.Errorf("inventory record created for non-leaf variant: %+v", info)
	}
	assertOneNotification(t, h.rec, notify.SeverityError)
}

func TestUpdateInventory_InvalidInput(t *testing.T) {
	h := newHarness(t, demoSelection())
	ctx := context.Background()
	h.loader.Load(ctx, "demo-product", "demo-shop")

	// Both flags are required; the seeded record must stay intact.
	err := h.orch.UpdateInventory(ctx, model.InventoryInput{}, "", "demo-variant")
	if err == nil {
		t.Fatal("expected validation error")
	}
	info := h.store.Inventory("demo-product", "demo-variant")
	if info == nil || info.InventoryInStock == nil || *info.InventoryInStock != 120 {
		t.Errorf("inventory = %+v, want untouched seed", info)
	}
}

func TestRecalculateReservedInventory(t *testing.T) {
	h := newHarness(t, demoSelection())

	if err := h.orch.RecalculateReservedInventory(context.Background(), "", "demo-variant"); err != nil {
		t.Fatalf("RecalculateReservedInventory: %v", err)
	}
	info := h.store.Inventory("demo-product", "demo-variant")
	if info == nil || info.InventoryReserved == nil || *info.InventoryReserved != 0 {
		t.Errorf("reserved = %+v, want 0", info)
	}
	assertOneNotification(t, h.rec, notify.SeveritySuccess)
}

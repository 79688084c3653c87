package sandbox

import "github.com/Draketheb4dass/reaction-admin/model"

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func int32Ptr(i int32) *int32 { return &i }

// SeedDemoData loads a small demo catalog for local development.
func SeedDemoData(store *Store) {
	store.SeedProduct(model.Product{
		ID:        "demo-product",
		ShopID:    "demo-shop",
		Title:     strPtr("Demo Board"),
		IsVisible: true,
		Tags: []model.Tag{
			{ID: "tag-sale", Name: "sale"},
			{ID: "tag-new", Name: "new"},
		},
		SocialMetadata: []model.SocialMetadata{
			{Service: "twitter", Message: "Check out the Demo Board"},
		},
		Variants: []model.Variant{
			{
				ID:        "demo-variant",
				Title:     strPtr("Default"),
				SKU:       strPtr("DEMO-001"),
				Price:     floatPtr(49.99),
				IsVisible: true,
			},
			{
				ID:        "demo-variant-sized",
				Title:     strPtr("Sized"),
				IsVisible: true,
				Options: []model.Option{
					{ID: "demo-option-s", Title: strPtr("Small"), SKU: strPtr("DEMO-002-S"), Price: floatPtr(54.99), IsVisible: true},
					{ID: "demo-option-l", Title: strPtr("Large"), SKU: strPtr("DEMO-002-L"), Price: floatPtr(59.99), IsVisible: true},
				},
			},
		},
	})
	store.SeedInventory("demo-product", "demo-variant", model.InventoryInfo{
		InventoryInStock:             int32Ptr(120),
		InventoryReserved:            int32Ptr(3),
		LowInventoryWarningThreshold: int32Ptr(10),
		CanBackorder:                 true,
		IsEnabled:                    true,
	})
}

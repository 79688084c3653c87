package mutation

import (
	"context"
	"errors"

	"github.com/Draketheb4dass/reaction-admin/core/opaque"
	"github.com/Draketheb4dass/reaction-admin/model"
)

const archiveProductsMutation = `
mutation archiveProducts($productIds: [ID!]!, $shopId: ID!) {
	archiveProducts(productIds: $productIds, shopId: $shopId) {
		products { _id }
	}
}`

const cloneProductsMutation = `
mutation cloneProducts($productIds: [ID!]!, $shopId: ID!) {
	cloneProducts(productIds: $productIds, shopId: $shopId) {
		products { _id }
	}
}`

const updateProductMutation = `
mutation updateProduct($productId: ID!, $shopId: ID!, $product: ProductInput!) {
	updateProduct(productId: $productId, shopId: $shopId, product: $product) {
		product { _id isVisible }
	}
}`

// ProductFields is a partial product field set for the generic patch
// operation. Nil fields are omitted from the submitted input.
type ProductFields struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	IsVisible   *bool    `json:"isVisible,omitempty"`
	TagIDs      []string `json:"tagIds,omitempty"`
}

func (f ProductFields) toInput() map[string]any {
	input := map[string]any{}
	if f.Title != nil {
		input["title"] = *f.Title
	}
	if f.Description != nil {
		input["description"] = *f.Description
	}
	if f.IsVisible != nil {
		input["isVisible"] = *f.IsVisible
	}
	if f.TagIDs != nil {
		input["tagIds"] = f.TagIDs
	}
	return input
}

// ArchiveProduct archives the given product (current aggregate when nil) and
// navigates to redirect on success. The plain id is opaque-encoded before the
// archive call; the encode must succeed first.
func (o *Orchestrator) ArchiveProduct(ctx context.Context, product *model.Product, redirect string) error {
	if product == nil {
		product = o.loader.Product()
	}
	var productID, shopID string
	if product != nil {
		productID = product.ID
		shopID = firstNonEmpty(product.ShopID, o.sel.ShopID)
	}
	return o.run(ctx, opArchiveProduct, productID, "", map[string]any{"redirect": redirect},
		func(ctx context.Context) error {
			if product == nil {
				return errors.New("no product to archive")
			}
			token, err := opaque.Encode("product", product.ID)
			if err != nil {
				return err
			}
			return o.client.Do(ctx, archiveProductsMutation, map[string]any{
				"productIds": []string{token},
				"shopId":     shopID,
			}, nil)
		},
		func() {
			if redirect != "" {
				o.nav.NavigateTo(redirect)
			}
		})
}

// CloneProduct duplicates a product. Same opaque-encode pre-step as archive.
func (o *Orchestrator) CloneProduct(ctx context.Context, productID string) error {
	productID = firstNonEmpty(productID, o.sel.ProductID)
	shopID := o.sel.ShopID
	return o.run(ctx, opCloneProduct, productID, "", nil,
		func(ctx context.Context) error {
			if productID == "" {
				return errors.New("no product to clone")
			}
			token, err := opaque.Encode("product", productID)
			if err != nil {
				return err
			}
			return o.client.Do(ctx, cloneProductsMutation, map[string]any{
				"productIds": []string{token},
				"shopId":     shopID,
			}, nil)
		}, nil)
}

// UpdateProduct merges the given fields into the product. Ids default to the
// current selection.
func (o *Orchestrator) UpdateProduct(ctx context.Context, fields ProductFields, productID, shopID string) error {
	return o.updateProductAs(ctx, opUpdateProduct, fields, productID, shopID)
}

func (o *Orchestrator) updateProductAs(ctx context.Context, op operation, fields ProductFields, productID, shopID string) error {
	productID = firstNonEmpty(productID, o.sel.ProductID)
	shopID = firstNonEmpty(shopID, o.sel.ShopID)
	input := fields.toInput()
	return o.run(ctx, op, productID, "", input,
		func(ctx context.Context) error {
			if productID == "" {
				return errors.New("no product selected")
			}
			return o.client.Do(ctx, updateProductMutation, map[string]any{
				"productId": productID,
				"shopId":    shopID,
				"product":   input,
			}, nil)
		}, nil)
}

// ToggleProductVisibility flips isVisible on the currently loaded product.
// The negation of the loaded value is submitted — the caller must ensure the
// aggregate is fresh.
func (o *Orchestrator) ToggleProductVisibility(ctx context.Context) error {
	product := o.loader.Product()
	if product == nil {
		return o.run(ctx, opToggleProductVisibility, o.sel.ProductID, "", nil,
			func(context.Context) error { return errors.New("no product loaded") }, nil)
	}
	next := !product.IsVisible
	return o.updateProductAs(ctx, opToggleProductVisibility, ProductFields{IsVisible: &next}, product.ID, product.ShopID)
}

// RemoveTag filters one tag id out of the loaded product's tag list and
// submits the remainder, preserving its order.
func (o *Orchestrator) RemoveTag(ctx context.Context, tagID string) error {
	product := o.loader.Product()
	if product == nil {
		return o.run(ctx, opRemoveTag, o.sel.ProductID, "", nil,
			func(context.Context) error { return errors.New("no product loaded") }, nil)
	}
	remaining := make([]string, 0, len(product.Tags))
	for _, t := range product.Tags {
		if t.ID != tagID {
			remaining = append(remaining, t.ID)
		}
	}
	return o.updateProductAs(ctx, opRemoveTag, ProductFields{TagIDs: remaining}, product.ID, product.ShopID)
}

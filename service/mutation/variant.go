package mutation

import (
	"context"
	"errors"

	"github.com/Draketheb4dass/reaction-admin/model"
)

const createProductVariantMutation = `
mutation createProductVariant($productId: ID!, $shopId: ID!) {
	createProductVariant(productId: $productId, shopId: $shopId) {
		variant { _id }
	}
}`

const updateProductVariantMutation = `
mutation updateProductVariant($variantId: ID!, $shopId: ID!, $variant: VariantInput!) {
	updateProductVariant(variantId: $variantId, shopId: $shopId, variant: $variant) {
		variant { _id }
	}
}`

// VariantFields is a partial variant field set. Nil fields are omitted.
type VariantFields struct {
	Title     *string  `json:"title,omitempty"`
	SKU       *string  `json:"sku,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	IsVisible *bool    `json:"isVisible,omitempty"`
}

func (f VariantFields) toInput() map[string]any {
	input := map[string]any{}
	if f.Title != nil {
		input["title"] = *f.Title
	}
	if f.SKU != nil {
		input["sku"] = *f.SKU
	}
	if f.Price != nil {
		input["price"] = *f.Price
	}
	if f.IsVisible != nil {
		input["isVisible"] = *f.IsVisible
	}
	return input
}

// CreateVariant creates a new variant under the parent product. Parent and
// shop default to the current selection. The created variant's id is not
// available to this client at success time, so no navigation happens here.
func (o *Orchestrator) CreateVariant(ctx context.Context, parentID, shopID string) error {
	parentID = firstNonEmpty(parentID, o.sel.ProductID)
	shopID = firstNonEmpty(shopID, o.sel.ShopID)
	return o.run(ctx, opCreateVariant, parentID, "", nil,
		func(ctx context.Context) error {
			if parentID == "" {
				return errors.New("no parent product selected")
			}
			return o.client.Do(ctx, createProductVariantMutation, map[string]any{
				"productId": parentID,
				"shopId":    shopID,
			}, nil)
		}, nil)
}

// UpdateVariant merges the given fields into a variant. The variant id
// defaults to the current selection.
func (o *Orchestrator) UpdateVariant(ctx context.Context, fields VariantFields, variantID, shopID string) error {
	return o.updateVariantAs(ctx, opUpdateVariant, fields, variantID, shopID)
}

func (o *Orchestrator) updateVariantAs(ctx context.Context, op operation, fields VariantFields, variantID, shopID string) error {
	variantID = firstNonEmpty(variantID, o.sel.VariantID)
	shopID = firstNonEmpty(shopID, o.sel.ShopID)
	input := fields.toInput()
	return o.run(ctx, op, o.sel.ProductID, variantID, input,
		func(ctx context.Context) error {
			if variantID == "" {
				return errors.New("no variant selected")
			}
			return o.client.Do(ctx, updateProductVariantMutation, map[string]any{
				"variantId": variantID,
				"shopId":    shopID,
				"variant":   input,
			}, nil)
		}, nil)
}

// ToggleVariantVisibility flips isVisible on the given variant, submitting the
// negation of its currently loaded value.
func (o *Orchestrator) ToggleVariantVisibility(ctx context.Context, variant *model.Variant, shopID string) error {
	if variant == nil {
		return o.run(ctx, opToggleVariantVisibility, o.sel.ProductID, o.sel.VariantID, nil,
			func(context.Context) error { return errors.New("no variant given") }, nil)
	}
	next := !variant.IsVisible
	return o.updateVariantAs(ctx, opToggleVariantVisibility, VariantFields{IsVisible: &next}, variant.ID, shopID)
}

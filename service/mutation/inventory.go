package mutation

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Draketheb4dass/reaction-admin/model"
	"github.com/Draketheb4dass/reaction-admin/service/catalog"
)

const updateSimpleInventoryMutation = `
mutation updateSimpleInventory($productId: ID!, $productVariantId: ID!, $shopId: ID!, $input: InventoryInput!) {
	updateSimpleInventory(productId: $productId, productVariantId: $productVariantId, shopId: $shopId, input: $input) {
		inventoryInStock
		canBackorder
		isEnabled
	}
}`

const recalculateReservedMutation = `
mutation recalculateReservedSimpleInventory($productId: ID!, $productVariantId: ID!, $shopId: ID!) {
	recalculateReservedSimpleInventory(productId: $productId, productVariantId: $productVariantId, shopId: $shopId) {
		inventoryReserved
	}
}`

var validate = validator.New()

// ValidateInventoryInput checks the inventory field set against its schema:
// both flags required, numeric fields optional and non-negative.
func ValidateInventoryInput(in model.InventoryInput) error {
	return validate.Struct(in)
}

// UpdateInventory replaces the inventory record for a (product, variant)
// pair. The input is validated client-side before submission, and non-leaf
// variants (those with child options) are refused.
func (o *Orchestrator) UpdateInventory(ctx context.Context, in model.InventoryInput, productID, variantID string) error {
	productID = firstNonEmpty(productID, o.sel.ProductID)
	variantID = firstNonEmpty(variantID, o.sel.VariantID)
	return o.run(ctx, opUpdateInventory, productID, variantID, in,
		func(ctx context.Context) error {
			if productID == "" || variantID == "" {
				return errors.New("product and variant are required")
			}
			if err := ValidateInventoryInput(in); err != nil {
				return err
			}
			if variant := catalog.FindVariant(o.loader.Product(), variantID); variant.HasChildVariants() {
				return errors.New("variant has child variants and cannot hold inventory directly")
			}
			return o.client.Do(ctx, updateSimpleInventoryMutation, map[string]any{
				"productId":        productID,
				"productVariantId": variantID,
				"shopId":           o.sel.ShopID,
				"input":            inventoryToInput(in),
			}, nil)
		}, nil)
}

// RecalculateReservedInventory asks the server to recompute the reserved
// count for a (product, variant) pair. No payload beyond identifiers.
func (o *Orchestrator) RecalculateReservedInventory(ctx context.Context, productID, variantID string) error {
	productID = firstNonEmpty(productID, o.sel.ProductID)
	variantID = firstNonEmpty(variantID, o.sel.VariantID)
	return o.run(ctx, opRecalculateInventory, productID, variantID, nil,
		func(ctx context.Context) error {
			if productID == "" || variantID == "" {
				return errors.New("product and variant are required")
			}
			return o.client.Do(ctx, recalculateReservedMutation, map[string]any{
				"productId":        productID,
				"productVariantId": variantID,
				"shopId":           o.sel.ShopID,
			}, nil)
		}, nil)
}

func inventoryToInput(in model.InventoryInput) map[string]any {
	input := map[string]any{}
	if in.CanBackorder != nil {
		input["canBackorder"] = *in.CanBackorder
	}
	if in.IsEnabled != nil {
		input["isEnabled"] = *in.IsEnabled
	}
	if in.InventoryInStock != nil {
		input["inventoryInStock"] = *in.InventoryInStock
	}
	if in.LowInventoryWarningThreshold != nil {
		input["lowInventoryWarningThreshold"] = *in.LowInventoryWarningThreshold
	}
	return input
}

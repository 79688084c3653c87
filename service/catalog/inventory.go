package catalog

import (
	"context"

	"github.com/Draketheb4dass/reaction-admin/client"
	"github.com/Draketheb4dass/reaction-admin/model"
)

const inventoryQuery = `
query simpleInventory($productId: ID!, $productVariantId: ID!, $shopId: ID!) {
	simpleInventory(productId: $productId, productVariantId: $productVariantId, shopId: $shopId) {
		inventoryInStock
		inventoryReserved
		lowInventoryWarningThreshold
		canBackorder
		isEnabled
	}
}`

type inventoryQueryData struct {
	SimpleInventory *model.InventoryInfo `mapstructure:"simpleInventory"`
}

// LoadInventory fetches the inventory record for a (product, variant) pair,
// independently of the product aggregate. Nil when no record exists.
func LoadInventory(ctx context.Context, c *client.Client, productID, variantID, shopID string) (*model.InventoryInfo, error) {
	var data inventoryQueryData
	err := c.Do(ctx, inventoryQuery, map[string]any{
		"productId":        productID,
		"productVariantId": variantID,
		"shopId":           shopID,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.SimpleInventory, nil
}

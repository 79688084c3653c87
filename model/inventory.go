package model

// InventoryInfo is the inventory record for a (productId, productVariantId)
// pair, fetched independently of the product aggregate. Identifier-less value
// object.
type InventoryInfo struct {
	InventoryInStock             *int32 `json:"inventoryInStock,omitempty" mapstructure:"inventoryInStock"`
	InventoryReserved            *int32 `json:"inventoryReserved,omitempty" mapstructure:"inventoryReserved"`
	LowInventoryWarningThreshold *int32 `json:"lowInventoryWarningThreshold,omitempty" mapstructure:"lowInventoryWarningThreshold"`
	CanBackorder                 bool   `json:"canBackorder" mapstructure:"canBackorder"`
	IsEnabled                    bool   `json:"isEnabled" mapstructure:"isEnabled"`
}

// InventoryInput is the client-submitted inventory field set. Numeric fields
// are optional; both flags are required.
type InventoryInput struct {
	InventoryInStock             *int32 `json:"inventoryInStock,omitempty" validate:"omitempty,gte=0"`
	LowInventoryWarningThreshold *int32 `json:"lowInventoryWarningThreshold,omitempty" validate:"omitempty,gte=0"`
	CanBackorder                 *bool  `json:"canBackorder" validate:"required"`
	IsEnabled                    *bool  `json:"isEnabled" validate:"required"`
}

package mutation

// operation pairs a remote mutation name with its fixed notification messages.
type operation struct {
	name       string
	successMsg string
	errorMsg   string
}

var (
	opArchiveProduct          = operation{"archiveProducts", "Product archived", "Unable to archive product"}
	opCloneProduct            = operation{"cloneProducts", "Product cloned", "Unable to clone product"}
	opCreateVariant           = operation{"createProductVariant", "Variant created", "Unable to create variant"}
	opUpdateProduct           = operation{"updateProduct", "Product updated", "Unable to update product"}
	opToggleProductVisibility = operation{"updateProduct", "Product visibility updated", "Unable to update product visibility"}
	opRemoveTag               = operation{"updateProduct", "Tag removed", "Unable to remove tag"}
	opUpdateVariant           = operation{"updateProductVariant", "Variant updated", "Unable to update variant"}
	opToggleVariantVisibility = operation{"updateProductVariant", "Variant visibility updated", "Unable to update variant visibility"}
	opUpdateInventory         = operation{"updateSimpleInventory", "Inventory updated", "Unable to update inventory"}
	opRecalculateInventory    = operation{"recalculateReservedSimpleInventory", "Reserved inventory recalculated", "Unable to recalculate reserved inventory"}
)

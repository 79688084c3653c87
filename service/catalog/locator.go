package catalog

import (
	"github.com/Draketheb4dass/reaction-admin/model"
)

// FindVariant returns the first variant of product whose id equals variantID,
// or nil when product or variantID is absent. First match wins; duplicate ids
// are not defended against.
func FindVariant(product *model.Product, variantID string) *model.Variant {
	if product == nil || variantID == "" {
		return nil
	}
	for i := range product.Variants {
		if product.Variants[i].ID == variantID {
			return &product.Variants[i]
		}
	}
	return nil
}

// FindOption returns the first option of variant whose id equals optionID.
// The inner scan runs only when both variant and optionID are present.
func FindOption(variant *model.Variant, optionID string) *model.Option {
	if variant == nil || optionID == "" {
		return nil
	}
	for i := range variant.Options {
		if variant.Options[i].ID == optionID {
			return &variant.Options[i]
		}
	}
	return nil
}

// Locate resolves both levels of the selection against a loaded aggregate.
func Locate(product *model.Product, variantID, optionID string) (*model.Variant, *model.Option) {
	variant := FindVariant(product, variantID)
	option := FindOption(variant, optionID)
	return variant, option
}

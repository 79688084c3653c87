package catalog

// RouteParams are the identifiers extracted from the current route (HTTP path
// params or CLI flags). Absent values are empty strings.
type RouteParams struct {
	ProductID string
	VariantID string
	OptionID  string
	ShopID    string
}

// Args are explicit caller-supplied identifiers, used only where the
// corresponding route parameter is absent.
type Args struct {
	ProductID string
	VariantID string
	OptionID  string
	ShopID    string
}

// Selection is the active (product, variant, option, shop) resolved for one
// pass. Derived, never stored.
type Selection struct {
	ProductID string
	VariantID string
	OptionID  string
	ShopID    string
}

// Resolve derives the active selection. Route parameters win over explicit
// arguments; the shop id additionally falls back to the configured current
// shop. Pure, no failure modes — absent values propagate as empty.
func Resolve(params RouteParams, explicit Args, currentShopID string) Selection {
	return Selection{
		ProductID: firstNonEmpty(params.ProductID, explicit.ProductID),
		VariantID: firstNonEmpty(params.VariantID, explicit.VariantID),
		OptionID:  firstNonEmpty(params.OptionID, explicit.OptionID),
		ShopID:    firstNonEmpty(params.ShopID, explicit.ShopID, currentShopID),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

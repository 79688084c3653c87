package model

// Catalog aggregate as returned by the remote commerce API. The client holds a
// read-only, possibly-stale copy; every field change goes through a mutation
// and becomes visible locally only after a refetch.

type Product struct {
	ID             string           `json:"_id" mapstructure:"_id"`
	Title          *string          `json:"title,omitempty" mapstructure:"title"`
	Description    *string          `json:"description,omitempty" mapstructure:"description"`
	IsVisible      bool             `json:"isVisible" mapstructure:"isVisible"`
	ShopID         string           `json:"shopId,omitempty" mapstructure:"shopId"`
	Tags           []Tag            `json:"tags,omitempty" mapstructure:"tags"`
	SocialMetadata []SocialMetadata `json:"socialMetadata,omitempty" mapstructure:"socialMetadata"`
	Variants       []Variant        `json:"variants,omitempty" mapstructure:"variants"`
}

type Variant struct {
	ID        string   `json:"_id" mapstructure:"_id"`
	Title     *string  `json:"title,omitempty" mapstructure:"title"`
	SKU       *string  `json:"sku,omitempty" mapstructure:"sku"`
	Price     *float64 `json:"price,omitempty" mapstructure:"price"`
	IsVisible bool     `json:"isVisible" mapstructure:"isVisible"`
	Options   []Option `json:"options,omitempty" mapstructure:"options"`
}

// Option has the same field shape as Variant, nested one level deeper.
type Option struct {
	ID        string   `json:"_id" mapstructure:"_id"`
	Title     *string  `json:"title,omitempty" mapstructure:"title"`
	SKU       *string  `json:"sku,omitempty" mapstructure:"sku"`
	Price     *float64 `json:"price,omitempty" mapstructure:"price"`
	IsVisible bool     `json:"isVisible" mapstructure:"isVisible"`
}

type Tag struct {
	ID   string `json:"_id" mapstructure:"_id"`
	Name string `json:"name" mapstructure:"name"`
}

type SocialMetadata struct {
	Service string `json:"service" mapstructure:"service"`
	Message string `json:"message" mapstructure:"message"`
}

// HasChildVariants reports whether the variant is a non-leaf. Non-leaf
// variants are excluded from direct inventory editing.
func (v *Variant) HasChildVariants() bool {
	return v != nil && len(v.Options) > 0
}

// TagIDs returns the product's tag ids in their stored order.
func (p *Product) TagIDs() []string {
	if p == nil {
		return nil
	}
	ids := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

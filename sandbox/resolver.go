package sandbox

import (
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/Draketheb4dass/reaction-admin/core/opaque"
	"github.com/Draketheb4dass/reaction-admin/model"
)

// RootResolver serves the sandbox schema over a Store.
type RootResolver struct {
	store *Store
}

func NewRootResolver(store *Store) *RootResolver {
	return &RootResolver{store: store}
}

// --- result types (field resolvers) ---

type productResolver struct {
	ID             graphql.ID `graphql:"_id"`
	Title          *string
	Description    *string
	IsVisible      bool
	ShopID         graphql.ID
	Tags           []*tagResolver
	SocialMetadata []*socialMetadataResolver
	Variants       []*variantResolver
}

type variantResolver struct {
	ID        graphql.ID `graphql:"_id"`
	Title     *string
	SKU       *string
	Price     *float64
	IsVisible bool
	Options   []*optionResolver
}

type optionResolver struct {
	ID        graphql.ID `graphql:"_id"`
	Title     *string
	SKU       *string
	Price     *float64
	IsVisible bool
}

type tagResolver struct {
	ID   graphql.ID `graphql:"_id"`
	Name string
}

type socialMetadataResolver struct {
	Service string
	Message string
}

type inventoryResolver struct {
	InventoryInStock             *int32
	InventoryReserved            *int32
	LowInventoryWarningThreshold *int32
	CanBackorder                 bool
	IsEnabled                    bool
}

type productsPayload struct {
	Products []*productResolver
}

type productPayload struct {
	Product *productResolver
}

type variantPayload struct {
	Variant *variantResolver
}

func newProductResolver(p *model.Product) *productResolver {
	if p == nil {
		return nil
	}
	out := &productResolver{
		ID:          graphql.ID(p.ID),
		Title:       p.Title,
		Description: p.Description,
		IsVisible:   p.IsVisible,
		ShopID:      graphql.ID(p.ShopID),
		Tags:        []*tagResolver{},
		SocialMetadata: []*socialMetadataResolver{},
		Variants:    []*variantResolver{},
	}
	for _, t := range p.Tags {
		out.Tags = append(out.Tags, &tagResolver{ID: graphql.ID(t.ID), Name: t.Name})
	}
	for _, sm := range p.SocialMetadata {
		out.SocialMetadata = append(out.SocialMetadata, &socialMetadataResolver{Service: sm.Service, Message: sm.Message})
	}
	for i := range p.Variants {
		out.Variants = append(out.Variants, newVariantResolver(&p.Variants[i]))
	}
	return out
}

func newVariantResolver(v *model.Variant) *variantResolver {
	out := &variantResolver{
		ID:        graphql.ID(v.ID),
		Title:     v.Title,
		SKU:       v.SKU,
		Price:     v.Price,
		IsVisible: v.IsVisible,
		Options:   []*optionResolver{},
	}
	for _, o := range v.Options {
		out.Options = append(out.Options, &optionResolver{
			ID: graphql.ID(o.ID), Title: o.Title, SKU: o.SKU, Price: o.Price, IsVisible: o.IsVisible,
		})
	}
	return out
}

func newInventoryResolver(info *model.InventoryInfo) *inventoryResolver {
	if info == nil {
		return nil
	}
	return &inventoryResolver{
		InventoryInStock:             info.InventoryInStock,
		InventoryReserved:            info.InventoryReserved,
		LowInventoryWarningThreshold: info.LowInventoryWarningThreshold,
		CanBackorder:                 info.CanBackorder,
		IsEnabled:                    info.IsEnabled,
	}
}

// --- queries ---

func (r *RootResolver) Ping() string {
	return "pong"
}

func (r *RootResolver) Product(args struct {
	ProductID graphql.ID
	ShopID    graphql.ID
}) *productResolver {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return newProductResolver(r.store.product(string(args.ShopID), string(args.ProductID)))
}

func (r *RootResolver) SimpleInventory(args struct {
	ProductID        graphql.ID
	ProductVariantID graphql.ID
	ShopID           graphql.ID
}) *inventoryResolver {
	return newInventoryResolver(r.store.Inventory(string(args.ProductID), string(args.ProductVariantID)))
}

// --- mutations ---

// decodeProductToken accepts only opaque product tokens, mirroring the remote
// API contract for archive and clone.
func decodeProductToken(token string) (string, error) {
	ns, id, err := opaque.Decode(token)
	if err != nil {
		return "", err
	}
	if ns != "product" {
		return "", fmt.Errorf("expected product token, got namespace %q", ns)
	}
	return id, nil
}

func (r *RootResolver) ArchiveProducts(args struct {
	ProductIds []graphql.ID
	ShopID     graphql.ID
}) (*productsPayload, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	payload := &productsPayload{Products: []*productResolver{}}
	for _, token := range args.ProductIds {
		id, err := decodeProductToken(string(token))
		if err != nil {
			return nil, err
		}
		p, err := r.store.archiveProduct(string(args.ShopID), id)
		if err != nil {
			return nil, err
		}
		payload.Products = append(payload.Products, newProductResolver(p))
	}
	return payload, nil
}

func (r *RootResolver) CloneProducts(args struct {
	ProductIds []graphql.ID
	ShopID     graphql.ID
}) (*productsPayload, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	payload := &productsPayload{Products: []*productResolver{}}
	for _, token := range args.ProductIds {
		id, err := decodeProductToken(string(token))
		if err != nil {
			return nil, err
		}
		p, err := r.store.cloneProduct(string(args.ShopID), id)
		if err != nil {
			return nil, err
		}
		payload.Products = append(payload.Products, newProductResolver(p))
	}
	return payload, nil
}

func (r *RootResolver) CreateProductVariant(args struct {
	ProductID graphql.ID
	ShopID    graphql.ID
}) (*variantPayload, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	v, err := r.store.createVariant(string(args.ShopID), string(args.ProductID))
	if err != nil {
		return nil, err
	}
	return &variantPayload{Variant: newVariantResolver(v)}, nil
}

type productInput struct {
	Title       *string
	Description *string
	IsVisible   *bool
	TagIds      *[]graphql.ID
}

func (r *RootResolver) UpdateProduct(args struct {
	ProductID graphql.ID
	ShopID    graphql.ID
	Product   productInput
}) (*productPayload, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := r.store.product(string(args.ShopID), string(args.ProductID))
	if p == nil {
		return nil, fmt.Errorf("product %s not found", args.ProductID)
	}
	in := args.Product
	if in.Title != nil {
		p.Title = in.Title
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.IsVisible != nil {
		p.IsVisible = *in.IsVisible
	}
	if in.TagIds != nil {
		kept := make([]model.Tag, 0, len(*in.TagIds))
		for _, id := range *in.TagIds {
			for _, t := range p.Tags {
				if t.ID == string(id) {
					kept = append(kept, t)
					break
				}
			}
		}
		p.Tags = kept
	}
	return &productPayload{Product: newProductResolver(p)}, nil
}

type variantInput struct {
	Title     *string
	SKU       *string
	Price     *float64
	IsVisible *bool
}

func (r *RootResolver) UpdateProductVariant(args struct {
	VariantID graphql.ID
	ShopID    graphql.ID
	Variant   variantInput
}) (*variantPayload, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, v, err := r.store.findVariant(string(args.ShopID), string(args.VariantID))
	if err != nil {
		return nil, err
	}
	in := args.Variant
	if in.Title != nil {
		v.Title = in.Title
	}
	if in.SKU != nil {
		v.SKU = in.SKU
	}
	if in.Price != nil {
		v.Price = in.Price
	}
	if in.IsVisible != nil {
		v.IsVisible = *in.IsVisible
	}
	return &variantPayload{Variant: newVariantResolver(v)}, nil
}

type inventoryInput struct {
	InventoryInStock             *int32
	LowInventoryWarningThreshold *int32
	CanBackorder                 bool
	IsEnabled                    bool
}

func (r *RootResolver) UpdateSimpleInventory(args struct {
	ProductID        graphql.ID
	ProductVariantID graphql.ID
	ShopID           graphql.ID
	Input            inventoryInput
}) (*inventoryResolver, error) {
	info := model.InventoryInfo{
		InventoryInStock:             args.Input.InventoryInStock,
		LowInventoryWarningThreshold: args.Input.LowInventoryWarningThreshold,
		CanBackorder:                 args.Input.CanBackorder,
		IsEnabled:                    args.Input.IsEnabled,
	}
	r.store.SeedInventory(string(args.ProductID), string(args.ProductVariantID), info)
	return newInventoryResolver(&info), nil
}

func (r *RootResolver) RecalculateReservedSimpleInventory(args struct {
	ProductID        graphql.ID
	ProductVariantID graphql.ID
	ShopID           graphql.ID
}) (*inventoryResolver, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	info, ok := r.store.inventory[inventoryKey(string(args.ProductID), string(args.ProductVariantID))]
	if !ok {
		return nil, fmt.Errorf("no inventory record for %s/%s", args.ProductID, args.ProductVariantID)
	}
	// The sandbox has no order state, so the recomputed reservation is zero.
	zero := int32(0)
	info.InventoryReserved = &zero
	return newInventoryResolver(info), nil
}

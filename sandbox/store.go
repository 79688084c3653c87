package sandbox

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Draketheb4dass/reaction-admin/model"
)

// Store is the in-memory backing state of the sandbox commerce API. It exists
// for local development and tests; nothing here survives a restart.
type Store struct {
	mu        sync.Mutex
	products  map[string]*model.Product       // shopID/productID
	inventory map[string]*model.InventoryInfo // productID/variantID
}

func NewStore() *Store {
	return &Store{
		products:  make(map[string]*model.Product),
		inventory: make(map[string]*model.InventoryInfo),
	}
}

func productKey(shopID, productID string) string {
	return shopID + "/" + productID
}

func inventoryKey(productID, variantID string) string {
	return productID + "/" + variantID
}

// SeedProduct inserts or replaces a product aggregate.
func (s *Store) SeedProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.products[productKey(p.ShopID, p.ID)] = &cp
}

// SeedInventory inserts or replaces an inventory record.
func (s *Store) SeedInventory(productID, variantID string, info model.InventoryInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := info
	s.inventory[inventoryKey(productID, variantID)] = &cp
}

func (s *Store) product(shopID, productID string) *model.Product {
	return s.products[productKey(shopID, productID)]
}

// Product returns a copy of the stored aggregate, for assertions in tests.
func (s *Store) Product(shopID, productID string) *model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.product(shopID, productID)
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// Inventory returns a copy of the stored inventory record.
func (s *Store) Inventory(productID, variantID string) *model.InventoryInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := s.inventory[inventoryKey(productID, variantID)]
	if info == nil {
		return nil
	}
	cp := *info
	return &cp
}

func (s *Store) archiveProduct(shopID, productID string) (*model.Product, error) {
	key := productKey(shopID, productID)
	p, ok := s.products[key]
	if !ok {
		return nil, fmt.Errorf("product %s not found", productID)
	}
	delete(s.products, key)
	return p, nil
}

func (s *Store) cloneProduct(shopID, productID string) (*model.Product, error) {
	p, ok := s.products[productKey(shopID, productID)]
	if !ok {
		return nil, fmt.Errorf("product %s not found", productID)
	}
	cp := *p
	cp.ID = uuid.NewString()
	if p.Title != nil {
		title := *p.Title + " (copy)"
		cp.Title = &title
	}
	s.products[productKey(shopID, cp.ID)] = &cp
	return &cp, nil
}

func (s *Store) createVariant(shopID, productID string) (*model.Variant, error) {
	p, ok := s.products[productKey(shopID, productID)]
	if !ok {
		return nil, fmt.Errorf("product %s not found", productID)
	}
	v := model.Variant{ID: uuid.NewString()}
	p.Variants = append(p.Variants, v)
	return &p.Variants[len(p.Variants)-1], nil
}

func (s *Store) findVariant(shopID, variantID string) (*model.Product, *model.Variant, error) {
	for key, p := range s.products {
		if p.ShopID != shopID && productKey(shopID, p.ID) != key {
			continue
		}
		for i := range p.Variants {
			if p.Variants[i].ID == variantID {
				return p, &p.Variants[i], nil
			}
		}
	}
	return nil, nil, fmt.Errorf("variant %s not found", variantID)
}

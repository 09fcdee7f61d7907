package domain

import (
	"math"
	"sort"
	"strings"
)

// LowStockThreshold is the stock level at or below which a product is
// flagged as low stock on the dashboard.
const LowStockThreshold = 5

// Image is a hosted product image reference.
type Image struct {
	// URL is the public image URL.
	URL string `json:"url"`
	// PublicID is the hosting provider identifier, used for deletion.
	PublicID string `json:"public_id"`
}

// CategoryRef is the category embedded in a product document.
type CategoryRef struct {
	// ID is the category identifier.
	ID string `json:"_id"`
	// Name is the category display name.
	Name string `json:"name"`
}

// Product is a catalog item as reported by the storefront backend.
type Product struct {
	// ID is the unique product identifier.
	ID string `json:"_id"`
	// Title is the product display name.
	Title string `json:"title"`
	// Brand is the manufacturer name.
	Brand string `json:"brand,omitempty"`
	// Price is the list price.
	Price float64 `json:"price"`
	// DiscountPrice is the discounted price, when a discount applies.
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	// Stock is the units available.
	Stock int `json:"stock"`
	// Category is the category the product belongs to.
	Category CategoryRef `json:"category"`
	// Description is a free-text description.
	Description string `json:"description,omitempty"`
	// Images are the hosted product images.
	Images []Image `json:"images"`
	// CreatedAt is when the product was created, RFC 3339.
	CreatedAt string `json:"createdAt,omitempty"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Title         string   `json:"title"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	Stock         int      `json:"stock"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Images        []Image  `json:"images"`
}

// HasDiscount reports whether the product carries an effective discount,
// meaning a positive discount price strictly below the list price. A
// discount price of zero means the discount was cleared, not a free item.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice > 0 && *p.DiscountPrice < p.Price
}

// FinalPrice is the price a customer actually pays.
func (p Product) FinalPrice() float64 {
	if p.HasDiscount() {
		return *p.DiscountPrice
	}
	return p.Price
}

// DiscountPercent is the discount as a whole percentage, rounded to the
// nearest integer. Zero when no effective discount applies.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round((p.Price - *p.DiscountPrice) / p.Price * 100))
}

// InStock reports whether the product has any units available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// LowStock reports whether the product is at or below the low stock
// threshold while still sellable.
func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

// Availability filter values.
const (
	AvailabilityIn  = "in"
	AvailabilityOut = "out"
)

// Sort options for product listings.
const (
	SortPriceAsc     = "price-asc"
	SortPriceDesc    = "price-desc"
	SortDiscountDesc = "discount-desc"
)

// Filter narrows and orders a product listing. Zero values leave the
// corresponding dimension untouched.
type Filter struct {
	// Search matches, case-insensitively, against title, brand and
	// category name.
	Search string
	// CategoryID keeps only products in the given category.
	CategoryID string
	// Availability is AvailabilityIn, AvailabilityOut or empty.
	Availability string
	// Sort is one of the Sort constants or empty for backend order.
	Sort string
}

// Apply filters and sorts the given products, returning a new slice.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))

	needle := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) &&
			!strings.Contains(strings.ToLower(p.Category.Name), needle) {
			continue
		}
		if f.CategoryID != "" && p.Category.ID != f.CategoryID {
			continue
		}
		switch f.Availability {
		case AvailabilityIn:
			if !p.InStock() {
				continue
			}
		case AvailabilityOut:
			if p.InStock() {
				continue
			}
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FinalPrice() < out[j].FinalPrice()
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FinalPrice() > out[j].FinalPrice()
		})
	case SortDiscountDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DiscountPercent() > out[j].DiscountPercent()
		})
	}
	return out
}

// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Locale codes understood by LocalizedName.
const (
	LocaleEnglish = "en"
	LocaleArabic  = "ar"
)

// LocalizedName holds the two display names a catalog product carries.
type LocalizedName struct {
	EN string `json:"en"` // English display name.
	AR string `json:"ar"` // Arabic display name.
}

// In returns the name for the given locale, falling back to English.
func (n LocalizedName) In(locale string) string {
	if locale == LocaleArabic && n.AR != "" {
		return n.AR
	}

	return n.EN
}

// ProductVariant is a purchasable option of a product, e.g. a power rating.
type ProductVariant struct {
	Watts    string  `json:"watts"`     // Variant attribute used as part of the wishlist key.
	Price    float64 `json:"price"`     // Current price of this variant.
	OldPrice float64 `json:"old_price"` // Crossed-out price, zero when the variant is not discounted.
}

// Product is a catalog item as stored in the product catalog.
type Product struct {
	ID       string           `json:"id"`
	Name     LocalizedName    `json:"name"`
	Images   []string         `json:"images"`
	Price    float64          `json:"price"`     // Base price, used when the product has no variants.
	OldPrice float64          `json:"old_price"` // Base crossed-out price.
	Variants []ProductVariant `json:"variants,omitempty"`
	Tags     []string         `json:"tags"`
}

// ProductDisplay is the projection a product card renders.
type ProductDisplay struct {
	ImageURL string          `json:"image_url"`
	Price    float64         `json:"price"`
	OldPrice float64         `json:"old_price"`
	Variant  *ProductVariant `json:"variant,omitempty"` // First variant, nil for products without variants.
}

// Display derives the card projection: the first image, and the first variant's
// prices when variants exist, otherwise the product's own prices.
func (p *Product) Display() ProductDisplay {
	display := ProductDisplay{
		Price:    p.Price,
		OldPrice: p.OldPrice,
	}
	if len(p.Images) > 0 {
		display.ImageURL = p.Images[0]
	}
	if len(p.Variants) > 0 {
		first := p.Variants[0]
		display.Price = first.Price
		display.OldPrice = first.OldPrice
		display.Variant = &first
	}

	return display
}

// HasTag reports whether the product is labelled with tag.
func (p *Product) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// FindVariant returns the variant with the given attribute, or nil.
func (p *Product) FindVariant(watts string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].Watts == watts {
			return &p.Variants[i]
		}
	}

	return nil
}

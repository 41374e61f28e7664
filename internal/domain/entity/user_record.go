package entity

// Collection names a per-device collection in the user-product store.
type Collection string

const (
	CollectionCart     Collection = "cart"
	CollectionWishlist Collection = "wishlist"
)

// Operation is a mutation the reconciler applies to a device's record.
type Operation string

const (
	// OperationAddToCart adds one unit of a product to the cart.
	OperationAddToCart Operation = "cart"
	// OperationToggleWishlist adds a product variant to the wishlist, or removes it when present.
	OperationToggleWishlist Operation = "wishlist"
)

// ParseOperation maps a wire name to an Operation.
func ParseOperation(s string) (Operation, bool) {
	switch Operation(s) {
	case OperationAddToCart, OperationToggleWishlist:
		return Operation(s), true
	default:
		return "", false
	}
}

// Collection returns the collection the operation mutates.
func (o Operation) Collection() Collection {
	if o == OperationToggleWishlist {
		return CollectionWishlist
	}

	return CollectionCart
}

// Fallbacks written into a wishlist entry when the product lacks the field.
const (
	UnknownProductName = "Unknown Product"
	UnknownVariant     = "N/A"
)

// CartEntry is a product line in a device's cart. A product appears at most once.
type CartEntry struct {
	ProductID string  `json:"id" mapstructure:"id"`
	Quantity  int     `json:"quantity" mapstructure:"quantity"`
	Price     float64 `json:"price" mapstructure:"price"` // Snapshot taken on the first add, never refreshed.
}

// WishlistEntry is a wishlisted product variant. Entries are unique by (ProductID, Variant).
type WishlistEntry struct {
	ProductID string  `json:"id" mapstructure:"id"`
	Name      string  `json:"name" mapstructure:"name"`
	Variant   string  `json:"watt" mapstructure:"watt"`
	Price     float64 `json:"price" mapstructure:"price"`
	OldPrice  float64 `json:"oldprice" mapstructure:"oldprice"`
}

// Matches reports whether the entry has the given wishlist key.
func (e WishlistEntry) Matches(productID, variant string) bool {
	return e.ProductID == productID && e.Variant == variant
}

// NewWishlistEntry snapshots a product and its selected variant into a fully
// populated entry, substituting the fallbacks for any missing field.
func NewWishlistEntry(product *Product, variant *ProductVariant) WishlistEntry {
	entry := WishlistEntry{
		ProductID: product.ID,
		Name:      product.Name.EN,
		Variant:   UnknownVariant,
		Price:     product.Price,
		OldPrice:  product.OldPrice,
	}
	if entry.Name == "" {
		entry.Name = UnknownProductName
	}
	if variant != nil {
		if variant.Watts != "" {
			entry.Variant = variant.Watts
		}
		entry.Price = variant.Price
		entry.OldPrice = variant.OldPrice
	}

	return entry
}

// VariantKey returns the wishlist key attribute for a selected variant.
func VariantKey(variant *ProductVariant) string {
	if variant == nil || variant.Watts == "" {
		return UnknownVariant
	}

	return variant.Watts
}

// UserRecord is everything the user-product store keeps for one device.
// A nil collection is equivalent to an empty one.
type UserRecord struct {
	Cart     []CartEntry     `json:"cart"`
	Wishlist []WishlistEntry `json:"wishlist"`
}

// CartCount returns the total number of units in the cart.
func (r *UserRecord) CartCount() int {
	count := 0
	for _, entry := range r.Cart {
		count += entry.Quantity
	}

	return count
}

// InWishlist reports whether the wishlist holds the given key.
func (r *UserRecord) InWishlist(productID, variant string) bool {
	for _, entry := range r.Wishlist {
		if entry.Matches(productID, variant) {
			return true
		}
	}

	return false
}

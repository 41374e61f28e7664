// Package codec converts user records between their stored shape in the realtime
// store and the domain types.
//
// The realtime store returns a collection either as a list or, after sparse or
// partial writes, as an object keyed by array index ({"0": {...}, "2": {...}}).
// Everything read goes through NormalizeSequence before it is decoded, and
// everything written is a dense list. Stored elements that do not decode as
// entries are carried through writes unchanged, after the decoded entries.
package codec

import (
	"sort"
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
)

// NormalizeSequence returns the elements of a stored collection as a dense list in
// index order. Null holes are dropped. Values that are neither a list nor an
// object yield nil.
func NormalizeSequence(raw any) []any {
	switch v := raw.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, elem := range v {
			if elem != nil {
				out = append(out, elem)
			}
		}

		return out
	case map[string]any:
		return valuesInKeyOrder(v)
	default:
		return nil
	}
}

// valuesInKeyOrder orders numeric keys numerically ahead of other keys, which
// are ordered lexically.
func valuesInKeyOrder(m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		if m[k] != nil {
			out = append(out, m[k])
		}
	}

	return out
}

// DecodeRecord converts a stored user node into a record. A missing or
// malformed node yields an empty record.
func DecodeRecord(raw any) *entity.UserRecord {
	node, _ := raw.(map[string]any)

	return &entity.UserRecord{
		Cart:     DecodeCart(node[string(entity.CollectionCart)]),
		Wishlist: DecodeWishlist(node[string(entity.CollectionWishlist)]),
	}
}

// DecodeCart decodes a stored cart, skipping elements that are not cart entries.
func DecodeCart(raw any) []entity.CartEntry {
	entries, _ := decodeCart(raw)

	return entries
}

// DecodeWishlist decodes a stored wishlist, skipping elements that are not wishlist entries.
func DecodeWishlist(raw any) []entity.WishlistEntry {
	entries, _ := decodeWishlist(raw)

	return entries
}

func decodeCart(raw any) ([]entity.CartEntry, []any) {
	elems := NormalizeSequence(raw)
	out := make([]entity.CartEntry, 0, len(elems))
	var unreadable []any
	for _, elem := range elems {
		var entry entity.CartEntry
		if err := decode(elem, &entry); err != nil || entry.ProductID == "" {
			unreadable = append(unreadable, elem)

			continue
		}
		if entry.Quantity < 1 {
			entry.Quantity = 1
		}
		out = append(out, entry)
	}

	return out, unreadable
}

func decodeWishlist(raw any) ([]entity.WishlistEntry, []any) {
	elems := NormalizeSequence(raw)
	out := make([]entity.WishlistEntry, 0, len(elems))
	var unreadable []any
	for _, elem := range elems {
		var entry entity.WishlistEntry
		if err := decode(elem, &entry); err != nil || entry.ProductID == "" {
			unreadable = append(unreadable, elem)

			continue
		}
		if entry.Name == "" {
			entry.Name = entity.UnknownProductName
		}
		if entry.Variant == "" {
			entry.Variant = entity.UnknownVariant
		}
		out = append(out, entry)
	}

	return out, unreadable
}

// Unreadable returns, per collection, the elements of a stored node that do not
// decode as entries. Collections without such elements are absent.
func Unreadable(raw any) map[entity.Collection][]any {
	node, _ := raw.(map[string]any)
	out := make(map[entity.Collection][]any, 2)
	if _, bad := decodeCart(node[string(entity.CollectionCart)]); len(bad) > 0 {
		out[entity.CollectionCart] = bad
	}
	if _, bad := decodeWishlist(node[string(entity.CollectionWishlist)]); len(bad) > 0 {
		out[entity.CollectionWishlist] = bad
	}

	return out
}

func decode(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

// EncodeCollection renders one collection of the record as the dense list written
// to the store.
func EncodeCollection(record *entity.UserRecord, collection entity.Collection) []any {
	if collection == entity.CollectionWishlist {
		out := make([]any, 0, len(record.Wishlist))
		for _, entry := range record.Wishlist {
			out = append(out, map[string]any{
				"id":       entry.ProductID,
				"name":     entry.Name,
				"watt":     entry.Variant,
				"price":    entry.Price,
				"oldprice": entry.OldPrice,
			})
		}

		return out
	}

	out := make([]any, 0, len(record.Cart))
	for _, entry := range record.Cart {
		out = append(out, map[string]any{
			"id":       entry.ProductID,
			"quantity": entry.Quantity,
			"price":    entry.Price,
		})
	}

	return out
}

// MergeCollection renders one collection of the record followed by the elements of
// the same collection in node that could not be decoded, so that writing the result
// back never deletes stored data the record could not represent.
func MergeCollection(node map[string]any, record *entity.UserRecord, collection entity.Collection) []any {
	out := EncodeCollection(record, collection)

	return append(out, Unreadable(node)[collection]...)
}

// EncodeRecord renders a whole record as a stored user node.
func EncodeRecord(record *entity.UserRecord) map[string]any {
	return map[string]any{
		string(entity.CollectionCart):     EncodeCollection(record, entity.CollectionCart),
		string(entity.CollectionWishlist): EncodeCollection(record, entity.CollectionWishlist),
	}
}

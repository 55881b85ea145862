package models

// CartLine pairs a product with the quantity in the cart. The product is
// embedded in full so a persisted snapshot can be rehydrated without a
// catalog round trip, matching what gets serialized to the snapshot store.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

package cart

import "ramenbar/internal/menu"

// LineItem is one configured, priced entry in the cart. TotalPrice is a
// denormalized cache of unit price times quantity, frozen when the line is
// added or updated; it is recomputed on every quantity or selection change
// and never patched independently.
type LineItem struct {
	ID         string               `json:"id"`
	MenuItemID string               `json:"menu_item_id"`
	Quantity   int                  `json:"quantity"`
	Selections []menu.ItemSelection `json:"selections"`
	Notes      string               `json:"notes,omitempty"`
	TotalPrice float64              `json:"total_price"`
}

// Receipt is what remains of an order after checkout: the total only.
// Line-item detail is gone with the cleared cart.
type Receipt struct {
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// Update carries the fields of a line-item update; nil fields keep their
// current value.
type Update struct {
	Quantity   *int
	Selections *[]menu.ItemSelection
	Notes      *string
}

package menu

// UnitPrice computes the price of one unit of the item with the given
// selections: base price plus every selected option's price delta times its
// quantity. Selections referencing unknown groups or options contribute
// nothing. No rounding happens here; callers round only for display.
func UnitPrice(item Item, selections []ItemSelection) float64 {
	total := item.BasePrice

	for _, group := range item.OptionGroups {
		sel, ok := findSelection(selections, group.ID)
		if !ok {
			continue
		}
		for _, os := range sel.Options {
			opt, ok := group.Option(os.OptionID)
			if !ok {
				continue
			}
			qty := os.Quantity
			if qty < 1 {
				qty = 1
			}
			total += opt.PriceDelta * float64(qty)
		}
	}

	return total
}

// LinePrice is the total for a cart line: unit price times line quantity.
func LinePrice(item Item, selections []ItemSelection, quantity int) float64 {
	return UnitPrice(item, selections) * float64(quantity)
}

func findSelection(selections []ItemSelection, groupID string) (ItemSelection, bool) {
	for _, sel := range selections {
		if sel.GroupID == groupID {
			return sel, true
		}
	}
	return ItemSelection{}, false
}

package menu

// ApplySelection returns the selections after requesting the given quantity
// of one option in one group. It never mutates its input and never fails:
// requests that would exceed a cap are clamped at the point of mutation, so
// re-applying the same request is stable.
//
// Single groups hold exactly one option at quantity 1; selecting an option
// replaces whatever was selected before. Multiple groups clamp the requested
// quantity into [0, min(optionCap, room)] where room is how much of the
// group's MaxSelect budget the other options leave. A clamped quantity of
// zero removes the option's entry entirely.
func ApplySelection(group OptionGroup, selections []ItemSelection, optionID string, quantity int) []ItemSelection {
	opt, ok := group.Option(optionID)
	if !ok {
		return selections
	}

	if group.Mode == Single {
		return setGroup(selections, group.ID, []OptionSelection{{OptionID: opt.ID, Quantity: 1}})
	}

	current := selectedQuantity(selections, group.ID, opt.ID)
	room := group.MaxSelect - (groupQuantity(selections, group.ID) - current)

	qty := quantity
	if cap := group.optionCap(opt); qty > cap {
		qty = cap
	}
	if qty > room {
		qty = room
	}
	if qty < 0 {
		qty = 0
	}

	var next []OptionSelection
	replaced := false
	if sel, ok := findSelection(selections, group.ID); ok {
		for _, os := range sel.Options {
			if os.OptionID == opt.ID {
				if qty > 0 {
					next = append(next, OptionSelection{OptionID: opt.ID, Quantity: qty})
				}
				replaced = true
				continue
			}
			next = append(next, os)
		}
	}
	if !replaced && qty > 0 {
		next = append(next, OptionSelection{OptionID: opt.ID, Quantity: qty})
	}

	return setGroup(selections, group.ID, next)
}

// Toggle selects the option if absent and deselects it if present. This is
// the whole-option behavior of multiple groups without quantities; with
// quantities enabled it steps between 0 and 1.
func Toggle(group OptionGroup, selections []ItemSelection, optionID string) []ItemSelection {
	if selectedQuantity(selections, group.ID, optionID) > 0 {
		return ApplySelection(group, selections, optionID, 0)
	}
	return ApplySelection(group, selections, optionID, 1)
}

// selectedQuantity is the quantity currently recorded for one option.
func selectedQuantity(selections []ItemSelection, groupID, optionID string) int {
	sel, ok := findSelection(selections, groupID)
	if !ok {
		return 0
	}
	for _, os := range sel.Options {
		if os.OptionID == optionID {
			return os.Quantity
		}
	}
	return 0
}

// groupQuantity is the total selected quantity across one group.
func groupQuantity(selections []ItemSelection, groupID string) int {
	sel, ok := findSelection(selections, groupID)
	if !ok {
		return 0
	}
	total := 0
	for _, os := range sel.Options {
		total += os.Quantity
	}
	return total
}

// setGroup returns a copy of selections with the group's entry replaced.
// Groups left without options are dropped so only groups with at least one
// selection are recorded.
func setGroup(selections []ItemSelection, groupID string, options []OptionSelection) []ItemSelection {
	next := make([]ItemSelection, 0, len(selections)+1)
	placed := false
	for _, sel := range selections {
		if sel.GroupID == groupID {
			if len(options) > 0 {
				next = append(next, ItemSelection{GroupID: groupID, Options: options})
			}
			placed = true
			continue
		}
		next = append(next, sel)
	}
	if !placed && len(options) > 0 {
		next = append(next, ItemSelection{GroupID: groupID, Options: options})
	}
	return next
}

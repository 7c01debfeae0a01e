package menu

import "fmt"

// Violation reports one option group whose selection does not satisfy the
// group's constraints. Violations block adding to cart but are never fatal;
// the customer keeps editing.
type Violation struct {
	GroupID string `json:"group_id"`
	Reason  string `json:"reason"`
}

// Validate checks the selections against the item's required groups and
// returns one violation per unsatisfied group.
//
// Only required groups are checked: a non-required group never produces a
// violation, even when its MinSelect is greater than zero.
func Validate(item Item, selections []ItemSelection) []Violation {
	var violations []Violation

	for _, group := range item.OptionGroups {
		if !group.Required {
			continue
		}

		selected := 0
		if sel, ok := findSelection(selections, group.ID); ok {
			for _, os := range sel.Options {
				qty := os.Quantity
				if qty < 1 {
					qty = 1
				}
				selected += qty
			}
		}

		if selected < group.MinSelect {
			reason := "Please make a selection"
			if group.MinSelect > 1 {
				reason = fmt.Sprintf("Please select at least %d options", group.MinSelect)
			}
			violations = append(violations, Violation{GroupID: group.ID, Reason: reason})
		}
	}

	return violations
}

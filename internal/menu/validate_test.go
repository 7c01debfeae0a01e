package menu

import "testing"

func TestRequiredGroupWithNoSelection(t *testing.T) {
	item, _ := StaticData.Item("tonkotsu") // size is required, minSelect 1

	violations := Validate(item, nil)
	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %d: %+v", len(violations), violations)
	}
	if violations[0].GroupID != "size" {
		t.Fatalf("violation on wrong group: %s", violations[0].GroupID)
	}
	if violations[0].Reason != "Please make a selection" {
		t.Fatalf("unexpected message: %q", violations[0].Reason)
	}
}

func TestRequiredGroupMinSelectAboveOne(t *testing.T) {
	item, _ := StaticData.Item("mochi") // flavors required, minSelect 3

	t.Run("zero selections", func(t *testing.T) {
		violations := Validate(item, nil)
		if len(violations) != 1 {
			t.Fatalf("expected one violation, got %+v", violations)
		}
		if violations[0].Reason != "Please select at least 3 options" {
			t.Fatalf("unexpected message: %q", violations[0].Reason)
		}
	})

	t.Run("one selection", func(t *testing.T) {
		sels := []ItemSelection{
			{GroupID: "mochi-flavor", Options: []OptionSelection{{OptionID: "mango", Quantity: 1}}},
		}
		violations := Validate(item, sels)
		if len(violations) != 1 {
			t.Fatalf("expected one violation, got %+v", violations)
		}
	})

	t.Run("satisfied", func(t *testing.T) {
		sels := []ItemSelection{
			{GroupID: "mochi-flavor", Options: []OptionSelection{
				{OptionID: "mango", Quantity: 1},
				{OptionID: "vanilla", Quantity: 1},
				{OptionID: "strawberry", Quantity: 1},
			}},
		}
		if violations := Validate(item, sels); len(violations) != 0 {
			t.Fatalf("expected no violations, got %+v", violations)
		}
	})
}

// Non-required groups are never flagged, whatever their minSelect says.
func TestNonRequiredGroupIsNeverFlagged(t *testing.T) {
	item := Item{
		ID:        "bento",
		BasePrice: 12,
		OptionGroups: []OptionGroup{{
			ID:        "sides",
			Mode:      Multiple,
			Required:  false,
			MinSelect: 2,
			MaxSelect: 4,
			Options: []Option{
				{ID: "rice", Label: "Rice"},
				{ID: "salad", Label: "Salad"},
			},
		}},
	}

	if violations := Validate(item, nil); len(violations) != 0 {
		t.Fatalf("non-required group was flagged: %+v", violations)
	}
}

func TestQuantitiesCountTowardMinSelect(t *testing.T) {
	item := Item{
		ID:        "party-bowl",
		BasePrice: 20,
		OptionGroups: []OptionGroup{{
			ID:            "fillings",
			Mode:          Multiple,
			Required:      true,
			MinSelect:     2,
			MaxSelect:     5,
			AllowQuantity: true,
			Options:       []Option{{ID: "egg", Label: "Egg", MaxQuantity: 3}},
		}},
	}

	sels := []ItemSelection{
		{GroupID: "fillings", Options: []OptionSelection{{OptionID: "egg", Quantity: 2}}},
	}
	if violations := Validate(item, sels); len(violations) != 0 {
		t.Fatalf("quantity 2 of one option should satisfy minSelect 2, got %+v", violations)
	}
}

func TestValidateIsPure(t *testing.T) {
	item, _ := StaticData.Item("tonkotsu")
	sels := []ItemSelection{
		{GroupID: "size", Options: []OptionSelection{{OptionID: "small", Quantity: 1}}},
	}

	first := Validate(item, sels)
	second := Validate(item, sels)
	if len(first) != len(second) {
		t.Fatalf("repeated validation disagreed: %+v vs %+v", first, second)
	}
	if len(sels[0].Options) != 1 {
		t.Fatalf("validation mutated selections")
	}
}

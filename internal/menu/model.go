package menu

// DietaryBadge marks a menu item as suitable for a dietary preference.
type DietaryBadge string

const (
	Vegetarian DietaryBadge = "V"
	Vegan      DietaryBadge = "VG"
	GlutenFree DietaryBadge = "GF"
	Spicy      DietaryBadge = "S"
)

// SelectionMode controls how many options of a group may be selected at once.
type SelectionMode string

const (
	Single   SelectionMode = "single"
	Multiple SelectionMode = "multiple"
)

// Default per-option quantity caps when MaxQuantity is not set.
const (
	defaultMaxQuantitySingle   = 1
	defaultMaxQuantityMultiple = 5
)

// Option is one selectable choice inside an option group.
type Option struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	PriceDelta float64 `json:"price_delta"`
	// MaxQuantity caps repeated selection of this option.
	// 0 means unset: 1 for single groups, 5 for multiple groups.
	MaxQuantity int `json:"max_quantity,omitempty"`
}

// OptionGroup is a named set of related choices attached to a menu item
// (size, toppings, spice level).
type OptionGroup struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Mode          SelectionMode `json:"type"`
	Required      bool          `json:"required"`
	MinSelect     int           `json:"min_select"`
	MaxSelect     int           `json:"max_select"`
	AllowQuantity bool          `json:"allow_quantity,omitempty"`
	Options       []Option      `json:"options"`
}

// Option returns the group's option with the given id.
func (g OptionGroup) Option(id string) (Option, bool) {
	for _, opt := range g.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// optionCap is the effective per-option quantity cap.
func (g OptionGroup) optionCap(opt Option) int {
	if opt.MaxQuantity > 0 {
		return opt.MaxQuantity
	}
	if g.Mode == Multiple && g.AllowQuantity {
		return defaultMaxQuantityMultiple
	}
	return defaultMaxQuantitySingle
}

// Item is one orderable entry on the menu. Immutable after catalog load.
type Item struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	BasePrice     float64        `json:"base_price"`
	CategoryID    string         `json:"category_id"`
	DietaryBadges []DietaryBadge `json:"dietary_badges,omitempty"`
	OptionGroups  []OptionGroup  `json:"option_groups"`
}

// Group returns the item's option group with the given id.
func (i Item) Group(id string) (OptionGroup, bool) {
	for _, g := range i.OptionGroups {
		if g.ID == id {
			return g, true
		}
	}
	return OptionGroup{}, false
}

// Category groups items for display and navigation.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Data is the full read-only catalog.
type Data struct {
	Categories []Category `json:"categories"`
	Items      []Item     `json:"items"`
}

// Item returns the catalog item with the given id.
func (d Data) Item(id string) (Item, bool) {
	for _, it := range d.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// OptionSelection records one chosen option and how many times it was taken.
// Quantity is always 1 unless the owning group allows quantities.
type OptionSelection struct {
	OptionID string `json:"option_id"`
	Quantity int    `json:"quantity"`
}

// ItemSelection holds all chosen options for one option group.
type ItemSelection struct {
	GroupID string            `json:"group_id"`
	Options []OptionSelection `json:"options"`
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ramenbar/internal/menu"
)

// DefaultMenuPath is the WordPress REST route the menu plugin registers.
const DefaultMenuPath = "/wp-json/ramen-menu/v1/menu"

// WordPress REST API response shapes. Field names follow the remote
// convention (snake_case) and are normalized into the menu types below.
type wpCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type wpOption struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	PriceDelta  float64 `json:"price_delta"`
	MaxQuantity int     `json:"max_quantity"`
}

type wpOptionGroup struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Required      bool       `json:"required"`
	MinSelect     int        `json:"min_select"`
	MaxSelect     int        `json:"max_select"`
	AllowQuantity bool       `json:"allow_quantity"`
	Options       []wpOption `json:"options"`
}

type wpItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Image         string          `json:"image"`
	BasePrice     float64         `json:"base_price"`
	CategoryID    string          `json:"category_id"`
	DietaryBadges []string        `json:"dietary_badges"`
	OptionGroups  []wpOptionGroup `json:"option_groups"`
}

type wpMenuResponse struct {
	Categories []wpCategory `json:"categories"`
	Items      []wpItem     `json:"items"`
}

// Client fetches the menu from a WordPress site.
type Client struct {
	baseURL  string
	menuPath string
	http     *http.Client
}

func NewClient(baseURL, menuPath string) *Client {
	if menuPath == "" {
		menuPath = DefaultMenuPath
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		menuPath: menuPath,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchMenu retrieves and normalizes the remote catalog.
func (c *Client) FetchMenu(ctx context.Context) (menu.Data, error) {
	url := c.baseURL + c.menuPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return menu.Data{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return menu.Data{}, fmt.Errorf("wordpress fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return menu.Data{}, fmt.Errorf("wordpress api error: %s", resp.Status)
	}

	var payload wpMenuResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return menu.Data{}, fmt.Errorf("wordpress decode: %w", err)
	}

	return transformMenu(payload), nil
}

func transformMenu(wp wpMenuResponse) menu.Data {
	data := menu.Data{
		Categories: make([]menu.Category, 0, len(wp.Categories)),
		Items:      make([]menu.Item, 0, len(wp.Items)),
	}
	for _, c := range wp.Categories {
		data.Categories = append(data.Categories, menu.Category{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	for _, it := range wp.Items {
		data.Items = append(data.Items, transformItem(it))
	}
	return data
}

func transformItem(wp wpItem) menu.Item {
	item := menu.Item{
		ID:          wp.ID,
		Name:        wp.Name,
		Description: wp.Description,
		Image:       wp.Image,
		BasePrice:   wp.BasePrice,
		CategoryID:  wp.CategoryID,
	}
	for _, b := range wp.DietaryBadges {
		item.DietaryBadges = append(item.DietaryBadges, menu.DietaryBadge(b))
	}
	for _, g := range wp.OptionGroups {
		item.OptionGroups = append(item.OptionGroups, transformGroup(g))
	}
	return item
}

func transformGroup(wp wpOptionGroup) menu.OptionGroup {
	group := menu.OptionGroup{
		ID:            wp.ID,
		Name:          wp.Name,
		Mode:          menu.SelectionMode(wp.Type),
		Required:      wp.Required,
		MinSelect:     wp.MinSelect,
		MaxSelect:     wp.MaxSelect,
		AllowQuantity: wp.AllowQuantity,
	}
	for _, o := range wp.Options {
		group.Options = append(group.Options, menu.Option{
			ID:          o.ID,
			Label:       o.Label,
			PriceDelta:  o.PriceDelta,
			MaxQuantity: o.MaxQuantity,
		})
	}
	return group
}

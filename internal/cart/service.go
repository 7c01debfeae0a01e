package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"ramenbar/internal/menu"

	"github.com/google/uuid"
)

var (
	// ErrNotFound reports an update on an unknown line-item id. Callers
	// decide whether to ignore or surface it.
	ErrNotFound = errors.New("cart: line item not found")
	// ErrUnknownMenuItem reports an add referencing no catalog item.
	ErrUnknownMenuItem = errors.New("cart: unknown menu item")
	// ErrInvalidQuantity reports a line quantity below 1.
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
	// ErrEmptyCart reports a checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart: cart is empty")
)

// Catalog is the read-only menu lookup the cart prices against. Line items
// hold only menu-item ids, so catalog refreshes are picked up lazily here.
type Catalog interface {
	Item(id string) (menu.Item, bool)
}

// Service owns the cart's line items. Every mutation validates, reprices,
// and writes the snapshot through the injected store.
type Service struct {
	catalog Catalog
	store   Store

	mu    sync.Mutex
	items []LineItem
}

// NewService restores the cart from the store's snapshot. A missing or
// unreadable snapshot yields an empty cart, never an error: losing a saved
// cart must not block startup.
func NewService(ctx context.Context, catalog Catalog, store Store) *Service {
	s := &Service{catalog: catalog, store: store}

	snapshot, err := store.Load(ctx)
	if err != nil {
		log.Printf("⚠️ cart: failed to load snapshot, starting empty: %v", err)
		return s
	}
	if len(snapshot) == 0 {
		return s
	}
	if err := json.Unmarshal(snapshot, &s.items); err != nil {
		log.Printf("⚠️ cart: unreadable snapshot, starting empty: %v", err)
		s.items = nil
	}
	return s
}

// Add validates the selections against the menu item and appends a priced
// line. Violations reject the add; the caller surfaces them and lets the
// customer keep editing.
func (s *Service) Add(ctx context.Context, menuItemID string, quantity int, selections []menu.ItemSelection, notes string) (LineItem, []menu.Violation, error) {
	if quantity < 1 {
		return LineItem{}, nil, ErrInvalidQuantity
	}

	item, ok := s.catalog.Item(menuItemID)
	if !ok {
		return LineItem{}, nil, ErrUnknownMenuItem
	}

	if violations := menu.Validate(item, selections); len(violations) > 0 {
		return LineItem{}, violations, nil
	}

	line := LineItem{
		ID:         uuid.New().String(),
		MenuItemID: menuItemID,
		Quantity:   quantity,
		Selections: selections,
		Notes:      strings.TrimSpace(notes),
		TotalPrice: menu.LinePrice(item, selections, quantity),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, line)
	s.persist(ctx)

	return line, nil, nil
}

// Update merges the supplied fields into an existing line and recomputes its
// total. With new selections the price is re-derived from the current
// catalog; a quantity-only change keeps the line's existing unit price
// (totalPrice ÷ old quantity) so the customer-visible price stays stable
// even if the catalog changed since the add.
func (s *Service) Update(ctx context.Context, id string, upd Update) (LineItem, []menu.Violation, error) {
	if upd.Quantity != nil && *upd.Quantity < 1 {
		return LineItem{}, nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, li := range s.items {
		if li.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return LineItem{}, nil, ErrNotFound
	}

	line := s.items[idx]

	quantity := line.Quantity
	if upd.Quantity != nil {
		quantity = *upd.Quantity
	}

	switch {
	case upd.Selections != nil:
		item, ok := s.catalog.Item(line.MenuItemID)
		if !ok {
			return LineItem{}, nil, ErrUnknownMenuItem
		}
		if violations := menu.Validate(item, *upd.Selections); len(violations) > 0 {
			return LineItem{}, violations, nil
		}
		line.Selections = *upd.Selections
		line.TotalPrice = menu.LinePrice(item, *upd.Selections, quantity)
	case upd.Quantity != nil:
		unit := line.TotalPrice / float64(line.Quantity)
		line.TotalPrice = unit * float64(quantity)
	}
	line.Quantity = quantity

	if upd.Notes != nil {
		line.Notes = strings.TrimSpace(*upd.Notes)
	}

	s.items[idx] = line
	s.persist(ctx)

	return line, nil, nil
}

// Remove deletes a line item. Removing an unknown id is a no-op, so removal
// is idempotent.
func (s *Service) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, li := range s.items {
		if li.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Checkout turns the cart into a receipt and clears it.
func (s *Service) Checkout(ctx context.Context) (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	receipt := Receipt{Total: s.subtotal(), ItemCount: s.itemCount()}
	s.items = nil
	s.persist(ctx)

	return receipt, nil
}

// Items returns a copy of the current line items.
func (s *Service) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LineItem(nil), s.items...)
}

// ItemCount is the sum of quantities across all lines, computed on demand
// so it can never drift from the line-item sequence.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCount()
}

// Subtotal is the sum of line totals, computed on demand.
func (s *Service) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotal()
}

// Summary renders a line's selected option labels ("Large • Extra
// Soft-Boiled Egg ×2") by resolving ids through the current catalog.
func (s *Service) Summary(line LineItem) string {
	item, ok := s.catalog.Item(line.MenuItemID)
	if !ok {
		return ""
	}

	var parts []string
	for _, sel := range line.Selections {
		group, ok := item.Group(sel.GroupID)
		if !ok {
			continue
		}
		for _, os := range sel.Options {
			opt, ok := group.Option(os.OptionID)
			if !ok {
				continue
			}
			label := opt.Label
			if os.Quantity > 1 {
				label = fmt.Sprintf("%s ×%d", label, os.Quantity)
			}
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, " • ")
}

func (s *Service) itemCount() int {
	count := 0
	for _, li := range s.items {
		count += li.Quantity
	}
	return count
}

func (s *Service) subtotal() float64 {
	total := 0.0
	for _, li := range s.items {
		total += li.TotalPrice
	}
	return total
}

// persist writes the snapshot. Failures are logged and swallowed: losing a
// save degrades durability, not the in-memory cart. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) {
	snapshot, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("⚠️ cart: failed to serialize snapshot: %v", err)
		return
	}
	if err := s.store.Save(ctx, snapshot); err != nil {
		log.Printf("⚠️ cart: failed to save snapshot: %v", err)
	}
}

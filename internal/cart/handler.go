package cart

import (
	"errors"
	"net/http"

	"ramenbar/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the cart and checkout endpoints.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	cart := r.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:id", h.UpdateItem)
		cart.DELETE("/items/:id", h.RemoveItem)
	}
	r.POST("/checkout", h.Checkout)
}

type addItemRequest struct {
	MenuItemID string               `json:"menu_item_id"`
	Quantity   int                  `json:"quantity"`
	Selections []menu.ItemSelection `json:"selections"`
	Notes      string               `json:"notes"`
}

type updateItemRequest struct {
	Quantity   *int                  `json:"quantity"`
	Selections *[]menu.ItemSelection `json:"selections"`
	Notes      *string               `json:"notes"`
}

// --------------------------------------------------
// View cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartView())
}

// --------------------------------------------------
// Add line item
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, violations, err := h.service.Add(
		c.Request.Context(),
		req.MenuItemID,
		req.Quantity,
		req.Selections,
		req.Notes,
	)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrUnknownMenuItem) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"violations": violations})
		return
	}

	c.JSON(http.StatusCreated, h.lineView(line))
}

// --------------------------------------------------
// Update line item
// --------------------------------------------------
func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	line, violations, err := h.service.Update(c.Request.Context(), c.Param("id"), Update{
		Quantity:   req.Quantity,
		Selections: req.Selections,
		Notes:      req.Notes,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"violations": violations})
		return
	}

	c.JSON(http.StatusOK, h.lineView(line))
}

// --------------------------------------------------
// Remove line item (idempotent)
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	h.service.Remove(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// Checkout: receipt, then the cart is cleared
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	receipt, err := h.service.Checkout(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":         receipt.Total,
		"total_display": menu.FormatPrice(receipt.Total),
		"item_count":    receipt.ItemCount,
	})
}

func (h *Handler) cartView() gin.H {
	items := h.service.Items()
	lines := make([]gin.H, 0, len(items))
	for _, li := range items {
		lines = append(lines, h.lineView(li))
	}
	return gin.H{
		"items":            lines,
		"item_count":       h.service.ItemCount(),
		"subtotal":         h.service.Subtotal(),
		"subtotal_display": menu.FormatPrice(h.service.Subtotal()),
	}
}

func (h *Handler) lineView(li LineItem) gin.H {
	view := gin.H{
		"id":            li.ID,
		"menu_item_id":  li.MenuItemID,
		"quantity":      li.Quantity,
		"selections":    li.Selections,
		"total_price":   li.TotalPrice,
		"price_display": menu.FormatPrice(li.TotalPrice),
		"summary":       h.service.Summary(li),
	}
	if li.Notes != "" {
		view["notes"] = li.Notes
	}
	return view
}

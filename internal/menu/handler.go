package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/money"
)

const badgeOutOfStock = "Out of Stock"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Card is the menu item card: the catalog entry plus what the add button needs.
type Card struct {
	Item
	PriceLabel string `json:"price_label"`
	CanAdd     bool   `json:"can_add"`
	Badge      string `json:"badge,omitempty"`
}

func NewCard(item Item) Card {
	card := Card{
		Item:       item,
		PriceLabel: money.Format(item.Price),
		CanAdd:     item.Available,
	}
	if !item.Available {
		card.Badge = badgeOutOfStock
	}
	return card
}

// --------------------------------------------------
// GET /menu?category=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	tab := c.DefaultQuery("category", TabAll)

	items, err := h.service.ListByTab(tab)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, NewCard(item))
	}

	c.JSON(http.StatusOK, gin.H{
		"category": tab,
		"items":    cards,
	})
}

// --------------------------------------------------
// GET /menu/categories
// --------------------------------------------------
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":    TabAll,
		"categories": h.service.Tabs(),
	})
}

// --------------------------------------------------
// GET /menu/items/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu item"})
		return
	}

	c.JSON(http.StatusOK, NewCard(item))
}

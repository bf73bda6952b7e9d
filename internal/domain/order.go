package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order as the dashboard stores it. PickupDate and
// PickupTime are kept exactly as entered; use the pickup package to turn
// them into a comparable instant.
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone,omitempty"`
	Items        []LineItem      `json:"items"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	PickupDate   string          `json:"pickupDate"`
	PickupTime   string          `json:"pickupTime"`
	Status       OrderStatus     `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ItemCount returns the total number of units across all line items.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		if it.Quantity > 0 {
			n += it.Quantity
		}
	}
	return n
}

// LineItem is one product line on an order.
type LineItem struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Category Category `json:"category,omitempty"`
}

// Category says how a line item is priced. The zero value means the
// category has not been set and must be derived from the item name.
type Category int

const (
	CategoryFromName Category = iota
	CategoryMini
	CategoryFull
	CategorySalsaSmall
	CategorySalsaLarge
	CategoryUnclassified
)

// String returns a human-readable category.
func (c Category) String() string {
	switch c {
	case CategoryFromName:
		return "from_name"
	case CategoryMini:
		return "mini"
	case CategoryFull:
		return "full"
	case CategorySalsaSmall:
		return "salsa_small"
	case CategorySalsaLarge:
		return "salsa_large"
	case CategoryUnclassified:
		return "unclassified"
	default:
		return "unknown"
	}
}

// SizeClass returns the tiered size class for the category. The second
// result is false for salsas and unclassified items.
func (c Category) SizeClass() (SizeClass, bool) {
	switch c {
	case CategoryMini:
		return SizeMini, true
	case CategoryFull:
		return SizeFull, true
	default:
		return 0, false
	}
}

// MarshalText encodes the category by name so stored orders stay readable.
func (c Category) MarshalText() ([]byte, error) {
	if c == CategoryFromName {
		return []byte(""), nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name. Unknown names decode to
// CategoryFromName so the item falls back to name classification.
func (c *Category) UnmarshalText(b []byte) error {
	*c = CategoryFromString(string(b))
	return nil
}

var categoryNames = map[string]Category{
	"mini":         CategoryMini,
	"full":         CategoryFull,
	"salsa_small":  CategorySalsaSmall,
	"salsa_large":  CategorySalsaLarge,
	"unclassified": CategoryUnclassified,
}

// CategoryFromString converts a snake_case category name to a Category.
// Returns CategoryFromName for empty or unrecognized names.
func CategoryFromString(name string) Category {
	if c, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return CategoryFromName
}

// SizeClass selects which tier set prices an item.
type SizeClass int

const (
	SizeMini SizeClass = iota
	SizeFull
)

// String returns a human-readable size class.
func (s SizeClass) String() string {
	switch s {
	case SizeMini:
		return "mini"
	case SizeFull:
		return "full"
	default:
		return "unknown"
	}
}

// OrderStatus tracks the lifecycle of an order.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusApproved
	StatusCompleted
	StatusCancelled
)

// String returns a human-readable order status.
func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Open reports whether the order still needs attention.
func (s OrderStatus) Open() bool {
	return s == StatusPending || s == StatusApproved
}

// MarshalText encodes the status by name.
func (s OrderStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name. Unknown names decode to pending.
func (s *OrderStatus) UnmarshalText(b []byte) error {
	st, ok := StatusFromString(string(b))
	if !ok {
		st = StatusPending
	}
	*s = st
	return nil
}

// StatusFromString parses a status name.
func StatusFromString(name string) (OrderStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pending", "":
		return StatusPending, true
	case "approved":
		return StatusApproved, true
	case "completed", "done":
		return StatusCompleted, true
	case "cancelled", "canceled":
		return StatusCancelled, true
	default:
		return StatusPending, false
	}
}

package sales

import (
	"time"

	"pos_inventory/internal/products"
	"pos_inventory/internal/users"
)

// LineItem pairs a persisted sale line with the product it was sold
// against, as input for response shaping.
type LineItem struct {
	Line    SaleLine
	Product products.Product
}

// UserSummary is the slice of user data exposed in a sale response.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LineView combines product identity with the line's quantity, price
// snapshot and subtotal.
type LineView struct {
	ProductID   uint    `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// SaleView is the flat, de-duplicated response shape for a created sale.
type SaleView struct {
	SaleID    uint        `json:"idSale"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
	User      UserSummary `json:"user"`
	Lines     []LineView  `json:"lines"`
}

// Format reshapes a fully-loaded sale into a SaleView. It is pure: no
// side effects, no failure modes.
func Format(sale *Sale, items []LineItem, user *users.User) SaleView {
	lines := make([]LineView, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineView{
			ProductID:   item.Product.ID,
			Name:        item.Product.Name,
			Description: item.Product.Description,
			Quantity:    item.Line.Quantity,
			UnitPrice:   item.Line.UnitPrice,
			Subtotal:    item.Line.Subtotal,
		})
	}
	return SaleView{
		SaleID:    sale.ID,
		Total:     sale.Total,
		Timestamp: sale.CreatedAt,
		User: UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Lines: lines,
	}
}

package sales

import "time"

// Sale represents a purchase event linking a user to one or more product
// lines and the computed total.
type Sale struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Total     float64   `json:"total" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleLine is one product/quantity entry within a sale. UnitPrice is a
// snapshot of the product price at sale time; later product edits do not
// retroactively alter historical sales.
type SaleLine struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	SaleID    uint    `json:"sale_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"`
	Subtotal  float64 `json:"subtotal" gorm:"not null"`
}

// LineRequest is one requested product/quantity pair in a sale creation.
type LineRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

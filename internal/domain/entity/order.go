package entity

// OrderLine is one line of an order handed to the invoice page.
type OrderLine struct {
	Label        string  `json:"label"`
	ProductTitle string  `json:"productTitle" validate:"required"`
	Quantity     int     `json:"quantity" validate:"gte=1"`
	Price        float64 `json:"price" validate:"gte=0"` // Line total, already multiplied by quantity.
}

// Order is the record the legacy invoice page consumes.
type Order struct {
	OrderID string      `json:"orderId" validate:"required"`
	Data    []OrderLine `json:"data" validate:"required,min=1,dive"`
}

// InvoiceLine is a rendered invoice row.
type InvoiceLine struct {
	Description string  `json:"description"` // "(label) title".
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
}

// InvoiceSummary is the computed order summary.
type InvoiceSummary struct {
	OrderID   string        `json:"order_id"`
	Currency  string        `json:"currency"`
	Lines     []InvoiceLine `json:"lines"`
	Subtotal  float64       `json:"subtotal"`
	Total     float64       `json:"total"`
	ShareLink string        `json:"share_link"`
}

package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse carries order data read from the store.
// Status is the wire token; Price keeps exact monetary precision.
type OrderResponse struct {
	ID         int
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Status     string
	CreatedAt  time.Time
	CreatedBy  string
	ModifiedAt time.Time
	ModifiedBy string
}

// orderRow maps the orders table for read queries.
type orderRow struct {
	ID         int
	Name       string
	Quantity   int
	Price      decimal.Decimal
	Status     string
	CreatedAt  time.Time
	CreatedBy  string
	ModifiedAt time.Time
	ModifiedBy string
}

func (r orderRow) toResponse() OrderResponse {
	return OrderResponse{
		ID:         r.ID,
		Name:       r.Name,
		Quantity:   r.Quantity,
		Price:      r.Price,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		CreatedBy:  r.CreatedBy,
		ModifiedAt: r.ModifiedAt,
		ModifiedBy: r.ModifiedBy,
	}
}
